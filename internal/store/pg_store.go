package store

import (
	"context"
	"errors"
	"fmt"

	perrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

const productColumns = `id, name, description, price, available, category, created_at, updated_at`

// Create inserts a new row and assigns the generated ID to the product.
// Returns an error if the product cannot be created.
func (p *PgStore) Create(ctx context.Context, product *model.Product) error {
	query := `INSERT INTO products (name, description, price, available, category)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`
	err := p.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Available,
		product.Category,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists the product's field values to its existing row.
// Returns ErrProductNotFound if no row exists with the product's ID.
func (p *PgStore) Update(ctx context.Context, product *model.Product) error {
	query := `UPDATE products
	          SET name = $1, description = $2, price = $3, available = $4, category = $5, updated_at = now()
	          WHERE id = $6
	          RETURNING updated_at`
	err := p.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Available,
		product.Category,
		product.ID,
	).Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return perrors.ErrProductNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// DeleteByID removes a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) DeleteByID(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product, err := scanProduct(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return product, nil
}

// FindAll retrieves all products ordered by ID.
// It returns a slice of products, which may be empty if no products exist.
func (p *PgStore) FindAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	return p.queryProducts(ctx, query)
}

// FindByName retrieves all products whose name matches exactly.
func (p *PgStore) FindByName(ctx context.Context, name string) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 ORDER BY id`
	return p.queryProducts(ctx, query, name)
}

// FindByAvailability retrieves all products with the given availability.
func (p *PgStore) FindByAvailability(ctx context.Context, available bool) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE available = $1 ORDER BY id`
	return p.queryProducts(ctx, query, available)
}

// FindByCategory retrieves all products in the given category.
func (p *PgStore) FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id`
	return p.queryProducts(ctx, query, category)
}

// FindByPrice retrieves all products whose price equals the given decimal.
// The comparison happens on the NUMERIC column, so decimal semantics apply.
func (p *PgStore) FindByPrice(ctx context.Context, price decimal.Decimal) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE price = $1 ORDER BY id`
	return p.queryProducts(ctx, query, price)
}

func (p *PgStore) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}
	return products, nil
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var product model.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Available,
		&product.Category,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
