package store

import (
	"context"
	"testing"

	perrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/model"
	"github.com/abgdnv/gocatalog/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducts(t *testing.T, s ProductStore, n int) []*model.Product {
	t.Helper()
	batch := testutil.NewProductBatch(n)
	for _, p := range batch {
		require.NoError(t, s.Create(context.Background(), p))
		require.NotZero(t, p.ID, "create must assign an ID")
	}
	return batch
}

func Test_InMemory_CreateAssignsUniqueIDs(t *testing.T) {
	s := NewInMemoryStore()
	batch := seedProducts(t, s, 5)

	seen := make(map[int64]bool)
	for _, p := range batch {
		assert.False(t, seen[p.ID], "IDs must be unique")
		seen[p.ID] = true
	}

	all, err := s.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func Test_InMemory_FindByID(t *testing.T) {
	s := NewInMemoryStore()
	created := seedProducts(t, s, 1)[0]

	found, err := s.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, created.Description, found.Description)
	assert.True(t, created.Price.Equal(found.Price), "price must round-trip with decimal equality")
	assert.Equal(t, created.Category, found.Category)

	_, err = s.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func Test_InMemory_Update(t *testing.T) {
	s := NewInMemoryStore()
	created := seedProducts(t, s, 1)[0]
	persistedID := created.ID

	created.Description = "Updated description"
	require.NoError(t, s.Update(context.Background(), created))

	all, err := s.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, persistedID, all[0].ID)
	assert.Equal(t, "Updated description", all[0].Description)
}

func Test_InMemory_Update_NotFound(t *testing.T) {
	s := NewInMemoryStore()
	product := testutil.NewProduct()
	product.ID = 123

	assert.ErrorIs(t, s.Update(context.Background(), product), perrors.ErrProductNotFound)
}

func Test_InMemory_Delete(t *testing.T) {
	s := NewInMemoryStore()
	batch := seedProducts(t, s, 2)

	require.NoError(t, s.DeleteByID(context.Background(), batch[0].ID))

	all, err := s.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1, "delete must remove exactly one product")

	assert.ErrorIs(t, s.DeleteByID(context.Background(), batch[0].ID), perrors.ErrProductNotFound)
}

func Test_InMemory_FindByName(t *testing.T) {
	s := NewInMemoryStore()
	batch := seedProducts(t, s, 5)

	name := batch[0].Name
	expected := 0
	for _, p := range batch {
		if p.Name == name {
			expected++
		}
	}

	found, err := s.FindByName(context.Background(), name)
	require.NoError(t, err)
	assert.Len(t, found, expected)
	for _, p := range found {
		assert.Equal(t, name, p.Name)
	}
}

func Test_InMemory_FindByAvailability(t *testing.T) {
	s := NewInMemoryStore()
	batch := seedProducts(t, s, 10)

	available := batch[0].Available
	expected := 0
	for _, p := range batch {
		if p.Available == available {
			expected++
		}
	}

	found, err := s.FindByAvailability(context.Background(), available)
	require.NoError(t, err)
	assert.Len(t, found, expected)
	for _, p := range found {
		assert.Equal(t, available, p.Available)
	}
}

func Test_InMemory_FindByCategory(t *testing.T) {
	s := NewInMemoryStore()
	batch := seedProducts(t, s, 10)

	category := batch[0].Category
	expected := 0
	for _, p := range batch {
		if p.Category == category {
			expected++
		}
	}

	found, err := s.FindByCategory(context.Background(), category)
	require.NoError(t, err)
	assert.Len(t, found, expected)
	for _, p := range found {
		assert.Equal(t, category, p.Category)
	}
}

func Test_InMemory_FindByPrice(t *testing.T) {
	s := NewInMemoryStore()
	batch := seedProducts(t, s, 10)

	price := batch[0].Price
	expected := 0
	for _, p := range batch {
		if p.Price.Equal(price) {
			expected++
		}
	}

	// comparison is numeric, not representational
	rescaled := decimal.RequireFromString(price.StringFixed(4))
	found, err := s.FindByPrice(context.Background(), rescaled)
	require.NoError(t, err)
	assert.Len(t, found, expected)
	for _, p := range found {
		assert.True(t, price.Equal(p.Price))
	}
}
