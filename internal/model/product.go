// Package model contains the product catalog domain entities.
package model

import (
	"fmt"
	"time"

	perrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/shopspring/decimal"
)

// Product represents a single catalog entry. A product with ID == 0 is
// transient: it has no backing row until the store creates one.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Available   bool
	Category    Category
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// Persisted reports whether the product has been assigned a database key.
func (p *Product) Persisted() bool {
	return p.ID != 0
}

// Validate checks the invariants that must hold before a product is
// written to the store.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", perrors.ErrDataValidation)
	}
	if _, err := ParseCategory(string(p.Category)); err != nil {
		return err
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", perrors.ErrDataValidation)
	}
	return nil
}
