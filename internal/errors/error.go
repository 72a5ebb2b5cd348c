// Package errors provides custom error types for product-related operations.
package errors

import "errors"

var (
	// ErrProductNotFound is returned when no product exists for the given key.
	ErrProductNotFound = errors.New("product not found")

	// ErrDataValidation is returned when a payload cannot be converted into
	// a valid product: missing or unknown category, non-boolean availability,
	// malformed price, or an update attempted on a transient product.
	ErrDataValidation = errors.New("data validation failed")
)
