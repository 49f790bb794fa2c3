package catalog

import "errors"

// Sentinel errors returned by the repository and service. Handlers translate
// these into status codes and response bodies.
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrCatalogEmpty   = errors.New("no books available")
	ErrNoFeatured     = errors.New("no featured books found")
	ErrNoReviews      = errors.New("no reviews found for this book")
)

// Book is a catalog entry. IDs are assigned by the store.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	ISBN          string   `json:"isbn"`
	Genre         []string `json:"genre"`
	Tags          []string `json:"tags"`
	DatePublished string   `json:"datePublished"`
	Pages         int      `json:"pages"`
	Language      string   `json:"language"`
	Publisher     string   `json:"publisher"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
}

// Review belongs to exactly one book via BookID. Immutable once created.
type Review struct {
	ID        string  `json:"id"`
	BookID    string  `json:"bookId"`
	Author    string  `json:"author"`
	Rating    float64 `json:"rating"`
	Title     string  `json:"title"`
	Comment   string  `json:"comment"`
	Timestamp string  `json:"timestamp"`
	Verified  bool    `json:"verified"`
}

// ScoredBook is a book augmented with its ranking score (rating x review count).
type ScoredBook struct {
	Book
	Score float64 `json:"score"`
}

// BookReviews pairs a book's title with all of its reviews.
type BookReviews struct {
	Book    string   `json:"book"`
	Reviews []Review `json:"reviews"`
}
