package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	perrors "github.com/sound1ust/product-service/internal/errors"
)

const (
	createSQL   = `INSERT INTO products (name, category, price) VALUES ($1, $2, $3) RETURNING *`
	findByIDSQL = `SELECT * FROM products WHERE product_id = $1`
	updateSQL   = `UPDATE products SET name = $1, category = $2, price = $3 WHERE product_id = $4 RETURNING *`
	deleteSQL   = `DELETE FROM products WHERE product_id = $1 RETURNING *`
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

// rowToProduct maps a storage row to a Product by column name.
var rowToProduct = pgx.RowToStructByName[Product]

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db DBTX
}

// NewPgStore creates a new instance of ProductStore on top of a query
// capability, typically *pgxpool.Pool or a pgx.Tx.
func NewPgStore(db DBTX) *PgStore {
	return &PgStore{db: db}
}

// Create adds a new product to the system and returns the stored row.
// Returns ErrProductExists if a product with the same name already exists,
// ErrProductNotCreated if the insert yields no row.
func (p *PgStore) Create(ctx context.Context, name string, category *string, price decimal.Decimal) (*Product, error) {
	rows, err := p.db.Query(ctx, createSQL, name, category, price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product, err := pgx.CollectOneRow(rows, rowToProduct)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, perrors.ErrProductExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotCreated
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int64) (*Product, error) {
	rows, err := p.db.Query(ctx, findByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	product, err := pgx.CollectOneRow(rows, rowToProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindAll retrieves products whose name contains keyword, case-insensitively,
// ordered by ID. A non-empty category narrows the result to an exact match
// and a positive limit caps the row count.
// Returns ErrProductsNotFound when nothing matches.
func (p *PgStore) FindAll(ctx context.Context, keyword, category string, limit int32) ([]Product, error) {
	qb := newQueryBuilder(`SELECT * FROM products`).
		Where("name ILIKE", "%"+keyword+"%")
	if category != "" {
		qb.And("category =", category)
	}
	qb.OrderBy("product_id")
	if limit > 0 {
		qb.Limit(limit)
	}

	rows, err := p.db.Query(ctx, qb.SQL(), qb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	products, err := pgx.CollectRows(rows, rowToProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	if len(products) == 0 {
		return nil, perrors.ErrProductsNotFound
	}
	return products, nil
}

// Update replaces an existing product's name, category and price.
// Returns ErrProductNotFound if no product exists with the given ID,
// ErrProductExists if the new name collides with another product.
func (p *PgStore) Update(ctx context.Context, id int64, name string, category *string, price decimal.Decimal) (*Product, error) {
	rows, err := p.db.Query(ctx, updateSQL, name, category, price, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	product, err := pgx.CollectOneRow(rows, rowToProduct)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, perrors.ErrProductExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// DeleteByID removes a product by its unique identifier and returns its
// last state. Returns ErrProductNotFound if no product exists with the
// given ID.
func (p *PgStore) DeleteByID(ctx context.Context, id int64) (*Product, error) {
	rows, err := p.db.Query(ctx, deleteSQL, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product by ID: %w", err)
	}
	product, err := pgx.CollectOneRow(rows, rowToProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to delete product by ID: %w", err)
	}
	return &product, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
