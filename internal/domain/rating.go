package domain

// Rating accumulates the rating values posted for a single book.
// It shares its ID with the book and carries a denormalized copy of the
// title so rankings can be served without joining against books.
type Rating struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Values  []int   `json:"values"`
	Average float64 `json:"average"`
}

// RankedBook is one entry of the top-books ranking.
type RankedBook struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Average float64 `json:"average"`
}

// Mean returns the arithmetic mean of the recorded values, 0 when none
// have been recorded yet.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
