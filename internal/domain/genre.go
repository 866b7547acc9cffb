package domain

// AcceptedGenres is the closed set of genres a book may carry.
var AcceptedGenres = []string{
	"Fiction",
	"Children",
	"Biography",
	"Science",
	"Science Fiction",
	"Fantasy",
	"Other",
}

// IsAcceptedGenre reports whether the genre belongs to the accepted set.
// Matching is exact; no case folding.
func IsAcceptedGenre(genre string) bool {
	for _, g := range AcceptedGenres {
		if g == genre {
			return true
		}
	}
	return false
}
