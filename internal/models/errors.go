package models

import "errors"

// Catalog error kinds. Handlers and callers branch on these with
// errors.Is; storage failures are wrapped separately and match none of
// them.
var (
	ErrProductIDMissing   = errors.New("product id is required")
	ErrInvalidProductID   = errors.New("product id must be a positive integer")
	ErrProductIDExists    = errors.New("product id already exists")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductName = errors.New("product name must be 3-24 characters of letters, digits, hyphens or spaces")
	ErrInvalidPrice       = errors.New("price must be between 0.01 and 9999")
	ErrInvalidStock       = errors.New("stock must be an integer between 0 and 9999")
)
