// Package domain contains the core business entities for the book club catalog.
package domain

// FieldMissing is the sentinel value stored when an enrichment field
// could not be resolved from the external metadata source.
const FieldMissing = "missing"

// Book represents a catalog entry. The JSON field names are part of the
// public API contract, including the capitalized "ISBN".
type Book struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Authors       string `json:"authors"`
	ISBN          string `json:"ISBN"`
	Publisher     string `json:"publisher"`
	PublishedDate string `json:"publishedDate"`
	Genre         string `json:"genre"`
}

// Field returns the value of the named API field, for exact-match query
// filtering. The second return is false for unrecognized names, which
// callers treat as a non-match.
func (b *Book) Field(name string) (string, bool) {
	switch name {
	case "id":
		return b.ID, true
	case "title":
		return b.Title, true
	case "authors":
		return b.Authors, true
	case "ISBN":
		return b.ISBN, true
	case "publisher":
		return b.Publisher, true
	case "publishedDate":
		return b.PublishedDate, true
	case "genre":
		return b.Genre, true
	default:
		return "", false
	}
}

// Enrichment holds the metadata resolved for an ISBN, after fallback
// rules have been applied. Each field is either a real value or
// FieldMissing.
type Enrichment struct {
	Authors       string
	Publisher     string
	PublishedDate string
}
