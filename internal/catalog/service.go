package catalog

import (
	"context"
	"sort"
	"time"
)

// dateLayout is the calendar-date format used by datePublished and the
// date-range query parameters.
const dateLayout = "2006-01-02"

// topRatedLimit caps the top-rated result size.
const topRatedLimit = 10

// Service implements the query and mutation logic over a Repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a catalog service backed by repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// ListBooks returns every book in store order.
func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	return s.repo.ListBooks(ctx)
}

// GetBook returns the book with the given id, or ErrBookNotFound.
func (s *Service) GetBook(ctx context.Context, id string) (Book, error) {
	return s.repo.GetBook(ctx, id)
}

// BooksByDateRange returns books whose datePublished falls within
// [start, end] inclusive. A book whose date does not parse is silently
// excluded, matching the long-standing behavior of this endpoint.
func (s *Service) BooksByDateRange(ctx context.Context, start, end time.Time) ([]Book, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Book, 0, len(books))
	for _, b := range books {
		published, err := time.Parse(dateLayout, b.DatePublished)
		if err != nil {
			continue
		}
		if published.Before(start) || published.After(end) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// TopRatedBooks returns at most ten books scored by rating x review count,
// highest first. Ties keep store order. Returns ErrCatalogEmpty if the store
// holds no books.
func (s *Service) TopRatedBooks(ctx context.Context) ([]ScoredBook, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrCatalogEmpty
	}

	scored := make([]ScoredBook, len(books))
	for i, b := range books {
		scored[i] = ScoredBook{Book: b, Score: b.Rating * float64(b.ReviewCount)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topRatedLimit {
		scored = scored[:topRatedLimit]
	}
	return scored, nil
}

// FeaturedBooks returns the books flagged as featured. ErrCatalogEmpty if the
// store holds no books at all, ErrNoFeatured if it holds books but none are
// featured; the two cases produce different 404 bodies.
func (s *Service) FeaturedBooks(ctx context.Context) ([]Book, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrCatalogEmpty
	}

	out := make([]Book, 0)
	for _, b := range books {
		if b.Featured {
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoFeatured
	}
	return out, nil
}

// ReviewsForBook returns the book's title together with all of its reviews.
// ErrBookNotFound if the book does not exist, ErrNoReviews if it exists but
// has no reviews yet.
func (s *Service) ReviewsForBook(ctx context.Context, bookID string) (BookReviews, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return BookReviews{}, err
	}

	reviews, err := s.repo.ReviewsByBook(ctx, bookID)
	if err != nil {
		return BookReviews{}, err
	}
	if len(reviews) == 0 {
		return BookReviews{}, ErrNoReviews
	}
	return BookReviews{Book: book.Title, Reviews: reviews}, nil
}

// ListReviews returns every review in store order.
func (s *Service) ListReviews(ctx context.Context) ([]Review, error) {
	return s.repo.ListReviews(ctx)
}

// GetReview returns the review with the given id, or ErrReviewNotFound.
func (s *Service) GetReview(ctx context.Context, id string) (Review, error) {
	return s.repo.GetReview(ctx, id)
}

// CreateBookInput carries the create-book request body. Title, author and
// price are required; a zero price is rejected like a missing one. Everything
// else is optional and defaulted by CreateBook.
type CreateBookInput struct {
	Title         string   `json:"title" validate:"required"`
	Author        string   `json:"author" validate:"required"`
	Price         float64  `json:"price" validate:"required"`
	Description   string   `json:"description"`
	ISBN          string   `json:"isbn"`
	Genre         []string `json:"genre"`
	Tags          []string `json:"tags"`
	DatePublished string   `json:"datePublished"`
	Pages         int      `json:"pages"`
	Language      string   `json:"language"`
	Publisher     string   `json:"publisher"`
	Rating        float64  `json:"rating"`
	InStock       *bool    `json:"inStock"`
	Featured      bool     `json:"featured"`
}

// CreateBook fills in defaults for omitted fields, assigns an id and appends
// the book to the store. New books always start with a zero review count.
func (s *Service) CreateBook(ctx context.Context, input CreateBookInput) (Book, error) {
	book := Book{
		Title:         input.Title,
		Author:        input.Author,
		Price:         input.Price,
		Description:   input.Description,
		ISBN:          input.ISBN,
		Genre:         input.Genre,
		Tags:          input.Tags,
		DatePublished: input.DatePublished,
		Pages:         input.Pages,
		Language:      input.Language,
		Publisher:     input.Publisher,
		Rating:        input.Rating,
		ReviewCount:   0,
		InStock:       true,
		Featured:      input.Featured,
	}
	if book.Genre == nil {
		book.Genre = []string{}
	}
	if book.Tags == nil {
		book.Tags = []string{}
	}
	if book.DatePublished == "" {
		book.DatePublished = s.now().UTC().Format(dateLayout)
	}
	if book.Language == "" {
		book.Language = "English"
	}
	if input.InStock != nil {
		book.InStock = *input.InStock
	}

	if err := s.repo.InsertBook(ctx, &book); err != nil {
		return Book{}, err
	}
	return book, nil
}

// CreateReviewInput carries the create-review request body. All listed fields
// are required; a zero rating is rejected like a missing one.
type CreateReviewInput struct {
	BookID   string  `json:"bookId" validate:"required"`
	Author   string  `json:"author" validate:"required"`
	Rating   float64 `json:"rating" validate:"required"`
	Title    string  `json:"title" validate:"required"`
	Comment  string  `json:"comment" validate:"required"`
	Verified bool    `json:"verified"`
}

// CreateReview stamps the review with the current time, appends it and bumps
// the referenced book's review count in one store operation. Returns
// ErrBookNotFound if the referenced book does not exist.
func (s *Service) CreateReview(ctx context.Context, input CreateReviewInput) (Review, error) {
	review := Review{
		BookID:    input.BookID,
		Author:    input.Author,
		Rating:    input.Rating,
		Title:     input.Title,
		Comment:   input.Comment,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Verified:  input.Verified,
	}

	if err := s.repo.InsertReview(ctx, &review); err != nil {
		return Review{}, err
	}
	return review, nil
}
