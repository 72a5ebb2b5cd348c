// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"

	perrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/model"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/shopspring/decimal"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// FindAll returns all products.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// FindByName returns all products whose name matches exactly.
	FindByName(ctx context.Context, name string) ([]ProductDto, error)

	// FindByAvailability returns all products with the given availability.
	FindByAvailability(ctx context.Context, available bool) ([]ProductDto, error)

	// FindByCategory returns all products in the category named by raw.
	// Returns ErrDataValidation if raw is not a recognized category.
	FindByCategory(ctx context.Context, raw string) ([]ProductDto, error)

	// FindByPrice returns all products whose price is numerically equal to
	// the given value. The value is accepted as a string and converted to a
	// decimal before comparison; a malformed value is ErrDataValidation.
	FindByPrice(ctx context.Context, raw string) ([]ProductDto, error)

	// Create adds a new product to the catalog.
	// Returns ErrDataValidation if the payload is invalid.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update modifies an existing product's details.
	// Returns ErrDataValidation if the product carries no ID and
	// ErrProductNotFound if no row exists for it.
	Update(ctx context.Context, product ProductDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Available is a pointer so that an absent or non-boolean value is rejected
// instead of silently defaulting to false.
type ProductCreateDto struct {
	Name        string          `json:"name"        validate:"required,max=100"`
	Description string          `json:"description" validate:"max=250"`
	Price       decimal.Decimal `json:"price"       validate:"required"`
	Available   *bool           `json:"available"   validate:"required"`
	Category    string          `json:"category"    validate:"required"`
}

// ProductDto represents the data transfer object for a product.
// Price is serialized as a decimal-preserving string and Category by its name.
type ProductDto struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"        validate:"required,max=100"`
	Description string          `json:"description" validate:"max=250"`
	Price       decimal.Decimal `json:"price"       validate:"required"`
	Available   *bool           `json:"available"   validate:"required"`
	Category    string          `json:"category"    validate:"required"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(product), nil
}

// FindAll retrieves all products and returns them as ProductDTOs.
// Returns an empty slice if no products exist or error if the retrieval fails.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return toDtos(products), nil
}

// FindByName retrieves all products matching the given name exactly.
func (s *Service) FindByName(ctx context.Context, name string) ([]ProductDto, error) {
	products, err := s.repository.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products by name %q: %w", name, err)
	}
	return toDtos(products), nil
}

// FindByAvailability retrieves all products with the given availability.
func (s *Service) FindByAvailability(ctx context.Context, available bool) ([]ProductDto, error) {
	products, err := s.repository.FindByAvailability(ctx, available)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products by availability %t: %w", available, err)
	}
	return toDtos(products), nil
}

// FindByCategory parses the raw category name and retrieves all products in it.
// Returns ErrDataValidation if the name is not a recognized category.
func (s *Service) FindByCategory(ctx context.Context, raw string) ([]ProductDto, error) {
	category, err := model.ParseCategory(raw)
	if err != nil {
		return nil, err
	}
	products, err := s.repository.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products by category %s: %w", category, err)
	}
	return toDtos(products), nil
}

// FindByPrice converts the raw price to a decimal and retrieves all products
// with a numerically equal price. A malformed value is ErrDataValidation.
func (s *Service) FindByPrice(ctx context.Context, raw string) ([]ProductDto, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid price %q", perrors.ErrDataValidation, raw)
	}
	products, err := s.repository.FindByPrice(ctx, price)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products by price %s: %w", price, err)
	}
	return toDtos(products), nil
}

// Create validates the payload, persists a new product and returns it as a
// ProductDto. The entity is fully validated before the store is touched.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	entity, err := toEntity(0, product.Name, product.Description, product.Price, product.Available, product.Category)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(entity), nil
}

// Update persists the product's field values to its existing row.
// Returns ErrDataValidation when the DTO carries no ID: a transient product
// cannot be updated, and the rule is enforced here rather than left to the
// database.
func (s *Service) Update(ctx context.Context, product ProductDto) (*ProductDto, error) {
	if product.ID == 0 {
		return nil, fmt.Errorf("%w: cannot update a product without an ID", perrors.ErrDataValidation)
	}

	entity, err := toEntity(product.ID, product.Name, product.Description, product.Price, product.Available, product.Category)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", product.ID, err)
	}

	return toDto(entity), nil
}

// DeleteByID deletes a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	return s.repository.DeleteByID(ctx, id)
}

// toEntity converts DTO fields into a validated model.Product. Validation
// happens before any state is produced, so a failed conversion never yields
// a partially populated entity.
func toEntity(id int64, name, description string, price decimal.Decimal, available *bool, category string) (*model.Product, error) {
	if available == nil {
		return nil, fmt.Errorf("%w: available must be a boolean", perrors.ErrDataValidation)
	}
	parsed, err := model.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	product := &model.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Available:   *available,
		Category:    parsed,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// toDto converts a model.Product to a ProductDto.
func toDto(product *model.Product) *ProductDto {
	available := product.Available
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Available:   &available,
		Category:    product.Category.String(),
	}
}

func toDtos(products []model.Product) []ProductDto {
	productDTOs := make([]ProductDto, len(products))
	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}
	return productDTOs
}
