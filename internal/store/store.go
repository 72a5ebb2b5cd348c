// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/abgdnv/gocatalog/internal/model"
	"github.com/shopspring/decimal"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// Create inserts a new row for the product and assigns the generated
	// ID (and timestamps) to the given instance.
	Create(ctx context.Context, product *model.Product) error

	// Update persists the product's current field values to its existing row.
	// Returns ErrProductNotFound if no row exists with the product's ID.
	Update(ctx context.Context, product *model.Product) error

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*model.Product, error)

	// FindAll returns all products.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]model.Product, error)

	// FindByName returns all products whose name matches exactly.
	FindByName(ctx context.Context, name string) ([]model.Product, error)

	// FindByAvailability returns all products with the given availability.
	FindByAvailability(ctx context.Context, available bool) ([]model.Product, error)

	// FindByCategory returns all products in the given category.
	FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error)

	// FindByPrice returns all products whose price is numerically equal
	// to the given decimal value.
	FindByPrice(ctx context.Context, price decimal.Decimal) ([]model.Product, error)
}
