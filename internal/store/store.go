// Package store provides product storage operations backed by PostgreSQL.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// Product is a row of the products table.
type Product struct {
	ID       int64           `db:"product_id"`
	Name     string          `db:"name"`
	Category *string         `db:"category"`
	Price    decimal.Decimal `db:"price"`
}

// DBTX is the query capability required by the store. It is satisfied by
// *pgxpool.Pool and by pgx.Tx, so a store can run against the pool or
// inside a caller-managed transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations.
type ProductStore interface {
	// Create adds a new product and returns the stored row.
	// Returns ErrProductExists if a product with the same name exists,
	// ErrProductNotCreated if the insert yields no row.
	Create(ctx context.Context, name string, category *string, price decimal.Decimal) (*Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll returns products whose name contains keyword
	// (case-insensitive), ordered by ID. A non-empty category narrows the
	// result to an exact match; a positive limit caps it.
	// Returns ErrProductsNotFound when nothing matches.
	FindAll(ctx context.Context, keyword, category string, limit int32) ([]Product, error)

	// Update replaces an existing product's name, category and price.
	// Returns ErrProductNotFound if no product exists with the given ID,
	// ErrProductExists if the new name collides with another product.
	Update(ctx context.Context, id int64, name string, category *string, price decimal.Decimal) (*Product, error)

	// DeleteByID removes a product by its ID and returns its last state.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) (*Product, error)
}
