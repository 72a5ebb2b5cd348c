package store

import (
	"context"
	"sync"
	"time"

	perrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/model"
	"github.com/shopspring/decimal"
)

// inMemory implements ProductStore using an in-memory map.
// It is intended for tests and local development.
type inMemory struct {
	mu       sync.RWMutex
	products map[int64]model.Product
	nextID   int64
}

// NewInMemoryStore creates a new instance of ProductStore backed by memory.
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make(map[int64]model.Product),
		nextID:   1,
	}
}

// Create assigns the next free ID to the product and stores a copy of it.
func (s *inMemory) Create(_ context.Context, product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	product.ID = s.nextID
	product.CreatedAt = &now
	product.UpdatedAt = &now
	s.nextID++
	s.products[product.ID] = *product
	return nil
}

// Update replaces the stored copy of the product.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *inMemory) Update(_ context.Context, product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return perrors.ErrProductNotFound
	}
	now := time.Now()
	product.UpdatedAt = &now
	s.products[product.ID] = *product
	return nil
}

// DeleteByID removes a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *inMemory) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return perrors.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id int64) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

// FindAll retrieves all products ordered by ID.
func (s *inMemory) FindAll(_ context.Context) ([]model.Product, error) {
	return s.filter(func(model.Product) bool { return true }), nil
}

// FindByName retrieves all products whose name matches exactly.
func (s *inMemory) FindByName(_ context.Context, name string) ([]model.Product, error) {
	return s.filter(func(p model.Product) bool { return p.Name == name }), nil
}

// FindByAvailability retrieves all products with the given availability.
func (s *inMemory) FindByAvailability(_ context.Context, available bool) ([]model.Product, error) {
	return s.filter(func(p model.Product) bool { return p.Available == available }), nil
}

// FindByCategory retrieves all products in the given category.
func (s *inMemory) FindByCategory(_ context.Context, category model.Category) ([]model.Product, error) {
	return s.filter(func(p model.Product) bool { return p.Category == category }), nil
}

// FindByPrice retrieves all products whose price is numerically equal
// to the given decimal, regardless of representation.
func (s *inMemory) FindByPrice(_ context.Context, price decimal.Decimal) ([]model.Product, error) {
	return s.filter(func(p model.Product) bool { return p.Price.Equal(price) }), nil
}

func (s *inMemory) filter(match func(model.Product) bool) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Product, 0, len(s.products))
	for id := int64(1); id < s.nextID; id++ {
		if p, ok := s.products[id]; ok && match(p) {
			list = append(list, p)
		}
	}
	return list
}
