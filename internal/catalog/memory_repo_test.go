package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_InsertBook(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(seedBooks(), nil)

	book := Book{Title: "New", Author: "N", Price: 1}
	require.NoError(t, repo.InsertBook(ctx, &book))
	assert.Equal(t, "5", book.ID)

	books, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 5)

	// Assigned ids never repeat, even though the collection length is the
	// same as it was before a hypothetical removal.
	second := Book{Title: "Another", Author: "N", Price: 1}
	require.NoError(t, repo.InsertBook(ctx, &second))
	assert.Equal(t, "6", second.ID)
	assert.NotEqual(t, book.ID, second.ID)
}

func TestMemoryRepository_GetBook(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(seedBooks(), nil)

	book, err := repo.GetBook(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Gamma", book.Title)

	_, err = repo.GetBook(ctx, "42")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestMemoryRepository_InsertReview(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(seedBooks(), seedReviews())

	review := Review{BookID: "3", Author: "R", Rating: 3, Title: "t", Comment: "c"}
	require.NoError(t, repo.InsertReview(ctx, &review))
	assert.Equal(t, "review-3", review.ID)

	book, err := repo.GetBook(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, 21, book.ReviewCount)

	t.Run("unknown book mutates nothing", func(t *testing.T) {
		bad := Review{BookID: "nope", Author: "R", Rating: 1, Title: "t", Comment: "c"}
		err := repo.InsertReview(ctx, &bad)
		assert.ErrorIs(t, err, ErrBookNotFound)
		assert.Empty(t, bad.ID)

		reviews, _ := repo.ListReviews(ctx)
		assert.Len(t, reviews, 3)
	})
}

func TestMemoryRepository_ReviewsByBook(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(seedBooks(), seedReviews())

	reviews, err := repo.ReviewsByBook(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	reviews, err = repo.ReviewsByBook(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestMemoryRepository_ReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(seedBooks(), seedReviews())

	books, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	books[0].Title = "mutated"

	fresh, err := repo.GetBook(ctx, books[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", fresh.Title)
}

func TestMemoryRepository_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(seedBooks(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			book := Book{Title: "Concurrent", Author: "X", Price: 1}
			_ = repo.InsertBook(ctx, &book)
			_, _ = repo.ListBooks(ctx)
		}()
	}
	wg.Wait()

	books, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 54)

	seen := make(map[string]bool)
	for _, b := range books {
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
	}
}
