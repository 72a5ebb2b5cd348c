package model

import (
	"testing"

	perrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseCategory(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    Category
		expectError bool
	}{
		{name: "exact name", input: "CLOTHS", expected: CategoryCloths},
		{name: "lower case", input: "food", expected: CategoryFood},
		{name: "mixed case with spaces", input: "  Tools ", expected: CategoryTools},
		{name: "unknown member", input: "UNKNOWN", expected: CategoryUnknown},
		{name: "unrecognized name", input: "Wrong data", expectError: true},
		{name: "empty string", input: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			category, err := ParseCategory(tc.input)
			// then
			if tc.expectError {
				assert.ErrorIs(t, err, perrors.ErrDataValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, category)
		})
	}
}

func Test_Categories_ContainsClosedSet(t *testing.T) {
	categories := Categories()
	assert.Len(t, categories, 6)
	assert.Contains(t, categories, CategoryUnknown)
	assert.Contains(t, categories, CategoryAutomotive)
}

func Test_Product_Validate(t *testing.T) {
	valid := Product{
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.RequireFromString("12.50"),
		Available:   true,
		Category:    CategoryCloths,
	}

	testCases := []struct {
		name        string
		mutate      func(p *Product)
		expectError bool
	}{
		{name: "valid product", mutate: func(*Product) {}},
		{name: "missing name", mutate: func(p *Product) { p.Name = "" }, expectError: true},
		{name: "invalid category", mutate: func(p *Product) { p.Category = "GADGETS" }, expectError: true},
		{name: "empty category", mutate: func(p *Product) { p.Category = "" }, expectError: true},
		{name: "negative price", mutate: func(p *Product) { p.Price = decimal.RequireFromString("-0.01") }, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			product := valid
			tc.mutate(&product)
			// when
			err := product.Validate()
			// then
			if tc.expectError {
				assert.ErrorIs(t, err, perrors.ErrDataValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_Product_Persisted(t *testing.T) {
	product := Product{Name: "Fedora", Category: CategoryCloths}
	assert.False(t, product.Persisted())

	product.ID = 42
	assert.True(t, product.Persisted())
}
