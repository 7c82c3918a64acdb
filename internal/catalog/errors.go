package catalog

import "errors"

// Validation failures surfaced by catalog operations. All are detected
// before any mutation happens, so a failed call leaves the catalog as it was.
var (
	ErrDuplicateItem    = errors.New("item already exists in category")
	ErrDuplicateProduct = errors.New("special product already exists")
	ErrMissingPrice     = errors.New("a price is required to create a new category")
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("item not found")
)
