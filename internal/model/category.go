package model

import (
	"fmt"
	"strings"

	perrors "github.com/abgdnv/gocatalog/internal/errors"
)

// Category classifies a product. The set of valid values is closed;
// anything else is rejected by ParseCategory.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

// Categories returns all valid category values.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}

// ParseCategory converts a category name into a Category.
// Matching is case-insensitive; the empty string and unrecognized
// names return ErrDataValidation.
func ParseCategory(name string) (Category, error) {
	candidate := Category(strings.ToUpper(strings.TrimSpace(name)))
	for _, c := range Categories() {
		if c == candidate {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", perrors.ErrDataValidation, name)
}

func (c Category) String() string {
	return string(c)
}
