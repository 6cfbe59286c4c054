// Package errors provides custom error types for product-related operations.
package errors

import "errors"

var (
	// ErrProductNotFound is returned when a product with the requested ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductsNotFound is returned when a product search matches no rows.
	ErrProductsNotFound = errors.New("products not found")

	// ErrProductExists is returned when a product with the same name already exists.
	ErrProductExists = errors.New("product already exists")

	// ErrProductNotCreated is returned when an insert yields no row.
	ErrProductNotCreated = errors.New("product not created")
)
