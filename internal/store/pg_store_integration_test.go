package store

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	perrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/model"
	"github.com/abgdnv/gocatalog/internal/testutil"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const skipIntegrationTests = "CATALOG_SKIP_INTEGRATION_TESTS"

// ProductStoreSuite is a test suite for the PgStore implementation.
type ProductStoreSuite struct {
	suite.Suite                             // Embedding testify's suite for structured testing
	pgContainer *postgres.PostgresContainer // PostgreSQL container for integration tests
	dbPool      *pgxpool.Pool               // PostgreSQL connection pool for integration tests
	store       ProductStore                //
	logger      *slog.Logger                // Logger for the test suite
	ctx         context.Context             // Context for the test suite, used for cancellation and timeouts
}

// SetupSuite initializes the test suite by setting up a PostgreSQL container,
func (s *ProductStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	dbName := "catalog"
	dbUser := "user"
	dbPassword := "password"

	// 1. Start a PostgreSQL container with the specified configuration. Wait for the container to be ready.
	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:17.5-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		// Wait for a specific log message indicating the database service is ready.
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
		// Ensure the container is ready to accept connections on the default PostgreSQL port.
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("5432/tcp"),
		),
	)
	require.NoError(s.T(), err, "Failed to run PostgreSQL container")

	// 2. Get the connection string from the container
	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get connection string from container")

	// 3. create a new pgxpool instance using the connection string
	s.dbPool, err = pgxpool.New(s.ctx, connStr)
	require.NoError(s.T(), err, "Failed to create pgxpool")

	// 3.1 Ping the database to ensure the connection is established
	for i := range 10 {
		s.logger.Info("Pinging PostgreSQL database", "attempt", i+1)
		err = s.dbPool.Ping(s.ctx)
		if err == nil {
			break
		}
		time.Sleep(time.Second * 2)
	}
	require.NoError(s.T(), err, "Failed to connect to PostgreSQL after retries")

	// 4. Database migration
	// Build path to migrations directory
	wd, _ := os.Getwd()
	migrationsPath := filepath.Join(wd, "..", "..", "migrations")
	sourceURL := "file://" + migrationsPath
	// Create a new migrate instance with the source URL and connection string
	m, err := migrate.New(sourceURL, connStr)
	require.NoError(s.T(), err, "Failed to create migrate instance")
	// Apply all available migrations
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		_, _ = m.Close()
		require.NoError(s.T(), err, "Failed to apply migrations")
	}
	s.logger.Info("Migrations applied for integration tests")

	s.store = NewPgStore(s.dbPool)
	s.logger.Info("Initialization complete for ProductStoreSuite")
}

// TearDownSuite cleans up resources after all tests in the suite have run.
func (s *ProductStoreSuite) TearDownSuite() {
	s.logger.Info("Tearing down suite...")
	if s.dbPool != nil {
		s.dbPool.Close()
		s.logger.Info("DB pool closed.")
	}
	if s.pgContainer != nil {
		s.logger.Info("Terminating PostgreSQL container...")
		err := s.pgContainer.Terminate(s.ctx)
		if err != nil {
			s.logger.Warn("failed to terminate PostgreSQL container", "error", err)
		} else {
			s.logger.Info("PostgreSQL container terminated.")
		}
	}
}

// SetupTest prepares the database for each test by truncating the products table.
func (s *ProductStoreSuite) SetupTest() {
	_, err := s.dbPool.Exec(s.ctx, "TRUNCATE TABLE products RESTART IDENTITY CASCADE")
	require.NoError(s.T(), err, "Failed to truncate products table")
}

// TestProductStoreIntegration runs the PgStore integration tests.
func TestProductStoreIntegration(t *testing.T) {
	// Skip integration tests if the environment variable is set
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	// Run the test suite
	suite.Run(t, new(ProductStoreSuite))
}

// createBatch is a helper that persists n randomized products.
func (s *ProductStoreSuite) createBatch(n int) []*model.Product {
	s.T().Helper()
	batch := testutil.NewProductBatch(n)
	for _, p := range batch {
		require.NoError(s.T(), s.store.Create(s.ctx, p), "createBatch helper failed to create product")
		require.NotZero(s.T(), p.ID, "created product ID should not be zero")
	}
	return batch
}

func (s *ProductStoreSuite) TestCreateAndFindByID() {
	// 1. Create a new product
	toCreate := &model.Product{
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.RequireFromString("12.50"),
		Available:   true,
		Category:    model.CategoryCloths,
	}
	require.NoError(s.T(), s.store.Create(s.ctx, toCreate))

	// 2. Check that the product was created successfully
	require.NotZero(s.T(), toCreate.ID, "Created product ID should not be zero")
	require.NotNil(s.T(), toCreate.CreatedAt, "CreatedAt should be set")

	// 3. Fetch the product by ID
	fetched, err := s.store.FindByID(s.ctx, toCreate.ID)

	// 4. Check that the fetched product matches the created product
	require.NoError(s.T(), err, "FindByID should not return an error")
	require.Equal(s.T(), toCreate.ID, fetched.ID)
	require.Equal(s.T(), toCreate.Name, fetched.Name)
	require.Equal(s.T(), toCreate.Description, fetched.Description)
	require.True(s.T(), toCreate.Price.Equal(fetched.Price), "price must round-trip with decimal equality")
	require.Equal(s.T(), toCreate.Available, fetched.Available)
	require.Equal(s.T(), toCreate.Category, fetched.Category)
	require.WithinDuration(s.T(), *toCreate.CreatedAt, *fetched.CreatedAt, time.Second)
}

func (s *ProductStoreSuite) TestFindByID_NotFound() {
	// Attempt to fetch a product that does not exist
	_, err := s.store.FindByID(s.ctx, 424242)
	// Check that the error is ErrProductNotFound
	require.ErrorIs(s.T(), err, perrors.ErrProductNotFound, "Expected ErrProductNotFound for non-existent product")
}

func (s *ProductStoreSuite) TestFindAll() {
	all, err := s.store.FindAll(s.ctx)
	require.NoError(s.T(), err)
	require.Empty(s.T(), all, "FindAll should return an empty slice on a fresh table")

	s.createBatch(5)

	all, err = s.store.FindAll(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 5, "Should retrieve 5 products")
}

func (s *ProductStoreSuite) TestUpdateProduct() {
	// Create a product to update
	created := s.createBatch(1)[0]
	persistedID := created.ID

	created.Description = "Updated description"
	created.Price = decimal.RequireFromString("99.99")
	require.NoError(s.T(), s.store.Update(s.ctx, created))

	// Re-read through FindAll and check the change took effect
	all, err := s.store.FindAll(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 1)
	assert.Equal(s.T(), persistedID, all[0].ID, "update must preserve the ID")
	assert.Equal(s.T(), "Updated description", all[0].Description)
	assert.True(s.T(), decimal.RequireFromString("99.99").Equal(all[0].Price))
}

func (s *ProductStoreSuite) TestUpdateProduct_NotFound() {
	product := testutil.NewProduct()
	product.ID = 424242

	err := s.store.Update(s.ctx, product)
	require.ErrorIs(s.T(), err, perrors.ErrProductNotFound)
}

func (s *ProductStoreSuite) TestDeleteProduct() {
	batch := s.createBatch(2)

	require.NoError(s.T(), s.store.DeleteByID(s.ctx, batch[0].ID))

	all, err := s.store.FindAll(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 1, "delete must remove exactly one product")
	assert.Equal(s.T(), batch[1].ID, all[0].ID)

	// Deleting the same product again reports not found
	require.ErrorIs(s.T(), s.store.DeleteByID(s.ctx, batch[0].ID), perrors.ErrProductNotFound)
}

func (s *ProductStoreSuite) TestFindByName() {
	batch := s.createBatch(5)

	name := batch[0].Name
	expected := 0
	for _, p := range batch {
		if p.Name == name {
			expected++
		}
	}

	found, err := s.store.FindByName(s.ctx, name)
	require.NoError(s.T(), err)
	require.Len(s.T(), found, expected)
	for _, p := range found {
		assert.Equal(s.T(), name, p.Name)
	}
}

func (s *ProductStoreSuite) TestFindByAvailability() {
	batch := s.createBatch(10)

	available := batch[0].Available
	expected := 0
	for _, p := range batch {
		if p.Available == available {
			expected++
		}
	}

	found, err := s.store.FindByAvailability(s.ctx, available)
	require.NoError(s.T(), err)
	require.Len(s.T(), found, expected)
	for _, p := range found {
		assert.Equal(s.T(), available, p.Available)
	}
}

func (s *ProductStoreSuite) TestFindByCategory() {
	batch := s.createBatch(10)

	category := batch[0].Category
	expected := 0
	for _, p := range batch {
		if p.Category == category {
			expected++
		}
	}

	found, err := s.store.FindByCategory(s.ctx, category)
	require.NoError(s.T(), err)
	require.Len(s.T(), found, expected)
	for _, p := range found {
		assert.Equal(s.T(), category, p.Category)
	}
}

func (s *ProductStoreSuite) TestFindByPrice() {
	batch := s.createBatch(10)

	price := batch[0].Price
	expected := 0
	for _, p := range batch {
		if p.Price.Equal(price) {
			expected++
		}
	}

	// NUMERIC comparison is by value, so a differently scaled decimal matches
	found, err := s.store.FindByPrice(s.ctx, decimal.RequireFromString(price.StringFixed(4)))
	require.NoError(s.T(), err)
	require.Len(s.T(), found, expected)
	for _, p := range found {
		assert.True(s.T(), price.Equal(p.Price))
	}
}
