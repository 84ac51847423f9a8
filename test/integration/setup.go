package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			category VARCHAR(100),
			available BOOLEAN NOT NULL DEFAULT TRUE,
			visible BOOLEAN NOT NULL DEFAULT TRUE,
			description TEXT,
			image_urls TEXT[],
			image_url TEXT,
			diet_type VARCHAR(20),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS categories (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS gallery_images (
			id VARCHAR(50) PRIMARY KEY,
			url TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS business_settings (
			id INTEGER PRIMARY KEY,
			whatsapp_number VARCHAR(20) NOT NULL,
			business_open BOOLEAN NOT NULL,
			accepting_orders BOOLEAN NOT NULL,
			currency_symbol VARCHAR(8) NOT NULL,
			location TEXT NOT NULL,
			opening_hours TEXT NOT NULL,
			business_name VARCHAR(255) NOT NULL,
			business_icon TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items(category);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedMenu inserts test menu data into the database.
func SeedMenu(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	items := []struct {
		id        string
		name      string
		price     float64
		category  string
		available bool
		visible   bool
		dietType  string
	}{
		{"M001", "Paneer Tikka", 220.00, "Starters", true, true, "veg"},
		{"M002", "Chicken 65", 260.00, "Starters", true, true, "non-veg"},
		{"M003", "Dal Makhani", 180.00, "Mains", true, true, "veg"},
		{"M004", "Butter Chicken", 320.00, "Mains", false, true, "non-veg"},
		{"M005", "Gulab Jamun", 90.00, "Desserts", true, false, "veg"},
	}

	for _, it := range items {
		_, err := pool.Exec(ctx,
			`INSERT INTO menu_items (id, name, price, category, available, visible, diet_type)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.id, it.name, it.price, it.category, it.available, it.visible, it.dietType,
		)
		if err != nil {
			t.Fatalf("failed to seed menu item %s: %v", it.id, err)
		}
	}

	categories := []struct {
		id        string
		name      string
		sortOrder int
	}{
		{"C001", "Starters", 0},
		{"C002", "Mains", 1},
		{"C003", "Desserts", 2},
	}

	for _, c := range categories {
		_, err := pool.Exec(ctx,
			"INSERT INTO categories (id, name, sort_order) VALUES ($1, $2, $3)",
			c.id, c.name, c.sortOrder,
		)
		if err != nil {
			t.Fatalf("failed to seed category %s: %v", c.id, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"menu_items", "categories", "gallery_images", "business_settings"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
