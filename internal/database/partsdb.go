package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/azubair/partscan/internal/model"
)

// Storage sentinel errors. Callers use errors.Is to map these to
// user-facing responses (the API turns them into 404s and 400s).
var (
	// ErrPartNotFound is returned when no spare part has the given ID.
	ErrPartNotFound = errors.New("spare part not found")

	// ErrCarModelNotFound is returned when a spare part references a
	// (manufacturer, model, year) triple that does not exist. Parts never
	// create car models implicitly.
	ErrCarModelNotFound = errors.New("car model not found")

	// ErrDuplicatePartNumber is returned when creating a part whose part
	// number is already taken.
	ErrDuplicatePartNumber = errors.New("part number already exists")

	// ErrDuplicateCarModel is returned when creating a car model that
	// already exists.
	ErrDuplicateCarModel = errors.New("car model already exists")
)

// PartsDB provides SQLite-backed storage for crawl products and the
// spare-parts inventory. It manages connection pooling and provides
// methods for CRUD operations.
type PartsDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures PartsDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. Recommended for the API server.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a PartsDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
func Open(dbDir string, opts Options) (*PartsDB, error) {
	dbPath := filepath.Join(dbDir, "partscan.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; multiple connections buy nothing here.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	pdb := &PartsDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := pdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pdb, nil
}

// Close closes the database connection.
func (pdb *PartsDB) Close() error {
	return pdb.db.Close()
}

// Path returns the path to the SQLite database file.
func (pdb *PartsDB) Path() string {
	return pdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (pdb *PartsDB) createTables() error {
	schema := `
	-- Raw records from crawl runs. Every field is nullable by contract:
	-- an all-NULL row is a valid extracted record.
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seed_url TEXT NOT NULL,
		crawled_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		title TEXT,
		product_url TEXT,
		categories TEXT,
		discount TEXT,
		current_price TEXT,
		original_price TEXT,
		rating TEXT,
		image_url TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_products_seed ON products(seed_url);
	CREATE INDEX IF NOT EXISTS idx_products_crawled ON products(crawled_at);

	-- Vehicles that spare parts are compatible with.
	CREATE TABLE IF NOT EXISTS car_models (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		manufacturer TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		UNIQUE(manufacturer, model, year)
	);

	-- The clean inventory managed by the HTTP API.
	CREATE TABLE IF NOT EXISTS spare_parts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		part_name TEXT NOT NULL,
		category TEXT NOT NULL,
		part_number TEXT NOT NULL UNIQUE,
		manufacturer TEXT NOT NULL,
		description TEXT,
		price REAL NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		min_stock INTEGER NOT NULL DEFAULT 1,
		car_model_id INTEGER NOT NULL REFERENCES car_models(id) ON DELETE CASCADE,
		supplier TEXT NOT NULL DEFAULT '',
		added_on DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_on DATETIME DEFAULT CURRENT_TIMESTAMP,
		is_available INTEGER NOT NULL DEFAULT 1
	);

	CREATE INDEX IF NOT EXISTS idx_parts_car_model ON spare_parts(car_model_id);
	CREATE INDEX IF NOT EXISTS idx_parts_price ON spare_parts(price);
	CREATE INDEX IF NOT EXISTS idx_parts_added ON spare_parts(added_on);
	`

	if _, err := pdb.db.ExecContext(context.Background(), schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// SaveProducts persists one crawl run's extracted records. Rows keep the
// accumulation order via the autoincrement key. Nil fields are stored as
// NULL, preserving the absent-vs-empty distinction the CSV sink loses.
func (pdb *PartsDB) SaveProducts(ctx context.Context, seedURL string, products []model.Product) error {
	tx, err := pdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin products transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (
			seed_url, title, product_url, categories, discount,
			current_price, original_price, rating, image_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare products insert: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // Statement close error is not actionable

	for i := range products {
		p := &products[i]
		_, err := stmt.ExecContext(ctx,
			seedURL,
			nullString(p.Title),
			nullString(p.ProductURL),
			nullString(p.Categories),
			nullString(p.Discount),
			nullString(p.CurrentPrice),
			nullString(p.OriginalPrice),
			nullString(p.Rating),
			nullString(p.ImageURL),
		)
		if err != nil {
			return fmt.Errorf("insert product %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit products: %w", err)
	}
	return nil
}

// ListProducts returns every stored crawl record for a seed URL, in
// insertion order.
func (pdb *PartsDB) ListProducts(ctx context.Context, seedURL string) ([]model.Product, error) {
	rows, err := pdb.db.QueryContext(ctx, `
		SELECT title, product_url, categories, discount,
		       current_price, original_price, rating, image_url
		FROM products WHERE seed_url = ? ORDER BY id`, seedURL)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Rows close error is not actionable

	products := make([]model.Product, 0)
	for rows.Next() {
		var cols [8]sql.NullString
		if err := rows.Scan(&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5], &cols[6], &cols[7]); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, model.Product{
			Title:         stringPtr(cols[0]),
			ProductURL:    stringPtr(cols[1]),
			Categories:    stringPtr(cols[2]),
			Discount:      stringPtr(cols[3]),
			CurrentPrice:  stringPtr(cols[4]),
			OriginalPrice: stringPtr(cols[5]),
			Rating:        stringPtr(cols[6]),
			ImageURL:      stringPtr(cols[7]),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// nullString converts a nullable model field to its SQL representation.
func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

// stringPtr converts a scanned SQL value back to a nullable model field.
func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
