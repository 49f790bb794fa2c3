package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// MemoryRepository holds the book and review collections in memory. The
// process starts from seed data and loses all writes on restart.
//
// ID counters are owned by the repository and seeded from the initial
// collection sizes, so assigned ids stay unique regardless of how the
// collections evolve. All operations take the mutex: the HTTP server handles
// requests concurrently.
type MemoryRepository struct {
	mu           sync.RWMutex
	books        []Book
	reviews      []Review
	nextBookID   int
	nextReviewID int
}

// NewMemoryRepository copies the seed slices into a fresh repository.
func NewMemoryRepository(books []Book, reviews []Review) *MemoryRepository {
	r := &MemoryRepository{
		books:        make([]Book, len(books)),
		reviews:      make([]Review, len(reviews)),
		nextBookID:   len(books) + 1,
		nextReviewID: len(reviews) + 1,
	}
	copy(r.books, books)
	copy(r.reviews, reviews)
	return r
}

func (r *MemoryRepository) ListBooks(ctx context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *MemoryRepository) GetBook(ctx context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return Book{}, ErrBookNotFound
}

// InsertBook assigns the next book id and appends. The id is written back
// into book.
func (r *MemoryRepository) InsertBook(ctx context.Context, book *Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	book.ID = strconv.Itoa(r.nextBookID)
	r.nextBookID++
	r.books = append(r.books, *book)
	return nil
}

func (r *MemoryRepository) ListReviews(ctx context.Context) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

func (r *MemoryRepository) GetReview(ctx context.Context, id string) (Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rv := range r.reviews {
		if rv.ID == id {
			return rv, nil
		}
	}
	return Review{}, ErrReviewNotFound
}

func (r *MemoryRepository) ReviewsByBook(ctx context.Context, bookID string) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Review
	for _, rv := range r.reviews {
		if rv.BookID == bookID {
			out = append(out, rv)
		}
	}
	return out, nil
}

// InsertReview appends the review and increments the referenced book's
// reviewCount in the same critical section, keeping the denormalized counter
// in sync with the review collection. Returns ErrBookNotFound without
// mutating anything if the referenced book does not exist.
func (r *MemoryRepository) InsertReview(ctx context.Context, review *Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.books {
		if r.books[i].ID == review.BookID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrBookNotFound
	}

	review.ID = fmt.Sprintf("review-%d", r.nextReviewID)
	r.nextReviewID++
	r.reviews = append(r.reviews, *review)
	r.books[idx].ReviewCount++
	return nil
}
