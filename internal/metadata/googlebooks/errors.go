package googlebooks

import "errors"

// Sentinel errors for Google Books API operations.
var (
	// ErrNoMatch means the API answered but found no volume for the ISBN.
	ErrNoMatch = errors.New("googlebooks: no volume matches the ISBN")
	// ErrUnavailable covers transport failures and server-side errors.
	ErrUnavailable = errors.New("googlebooks: service unavailable")
)
