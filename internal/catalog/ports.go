package catalog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=catalog

// Repository defines the contract for catalog storage. Reads return copies,
// never aliases of internal state.
type Repository interface {
	ListBooks(ctx context.Context) ([]Book, error)
	GetBook(ctx context.Context, id string) (Book, error)
	InsertBook(ctx context.Context, book *Book) error
	ListReviews(ctx context.Context) ([]Review, error)
	GetReview(ctx context.Context, id string) (Review, error)
	ReviewsByBook(ctx context.Context, bookID string) ([]Review, error)
	InsertReview(ctx context.Context, review *Review) error
}
