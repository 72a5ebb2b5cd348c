// Package testutil provides fixtures for product tests.
package testutil

import (
	"fmt"
	"math/rand/v2"

	"github.com/abgdnv/gocatalog/internal/model"
	"github.com/shopspring/decimal"
)

var productNames = []string{
	"Hat", "Pants", "Shirt", "Apple", "Banana",
	"Pots", "Towels", "Ford", "Chevy", "Hammer", "Screwdriver",
}

// NewProduct returns a transient product with randomized valid fields.
func NewProduct() *model.Product {
	categories := model.Categories()
	name := productNames[rand.IntN(len(productNames))]
	// two decimal places between 0.50 and 2000.00
	cents := 50 + rand.Int64N(199951)
	return &model.Product{
		Name:        name,
		Description: fmt.Sprintf("A very fine %s", name),
		Price:       decimal.New(cents, -2),
		Available:   rand.IntN(2) == 0,
		Category:    categories[rand.IntN(len(categories))],
	}
}

// NewProductBatch returns n transient products with randomized valid fields.
func NewProductBatch(n int) []*model.Product {
	batch := make([]*model.Product, n)
	for i := range batch {
		batch[i] = NewProduct()
	}
	return batch
}
