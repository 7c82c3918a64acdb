package order

import "errors"

// Validation failures raised while pricing a selection or assembling an
// order. Item lookups that miss reuse catalog.ErrItemNotFound.
var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidSize     = errors.New("size is not offered for this product")
	ErrMissingDetail   = errors.New("required order detail is missing")
	ErrEmptyOrder      = errors.New("order has no items or no user")
)
