package store

import "errors"

// Sentinel errors returned by store operations. The service layer maps
// these onto the API error taxonomy.
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrBookExists     = errors.New("book with this ISBN already exists")
	ErrRatingNotFound = errors.New("rating not found")
)
