package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bookcatalog/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// ListBooks handles GET /api/books
func (h *HTTPHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListBooks(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, books)
}

// GetBook handles GET /api/books/{id}
func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	book, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, book)
}

// BooksByDateRange handles GET /books/datePublished
func (h *HTTPHandler) BooksByDateRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	startParam := query.Get("start_date")
	endParam := query.Get("end_date")

	if startParam == "" || endParam == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR",
			"Please provide both start_date and end_date query parameters in YYYY-MM-DD format.", nil)
		return
	}

	start, err := time.Parse(dateLayout, startParam)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "start_date must be a date in YYYY-MM-DD format", nil)
		return
	}
	end, err := time.Parse(dateLayout, endParam)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "end_date must be a date in YYYY-MM-DD format", nil)
		return
	}

	books, err := h.svc.BooksByDateRange(r.Context(), start, end)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, books)
}

// TopRatedBooks handles GET /books/top-rated
func (h *HTTPHandler) TopRatedBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.TopRatedBooks(r.Context())
	if err != nil {
		if errors.Is(err, ErrCatalogEmpty) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No books available", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, books)
}

// FeaturedBooks handles GET /books/featured
func (h *HTTPHandler) FeaturedBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.FeaturedBooks(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrCatalogEmpty):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No books available", nil)
		case errors.Is(err, ErrNoFeatured):
			httpx.JSONError(w, r, http.StatusNotFound, "NO_FEATURED_BOOKS", "No featured books found", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, r, books)
}

// ReviewsForBook handles GET /api/books/{id}/reviews
func (h *HTTPHandler) ReviewsForBook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	result, err := h.svc.ReviewsForBook(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrNoReviews):
			httpx.JSONError(w, r, http.StatusNotFound, "NO_REVIEWS", "No reviews found for this book", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, r, result)
}

// ListReviews handles GET /api/reviews
func (h *HTTPHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.ListReviews(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, reviews)
}

// GetReview handles GET /api/reviews/{id}
func (h *HTTPHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	review, err := h.svc.GetReview(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Review not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, review)
}

// CreateBook handles POST /api/books
func (h *HTTPHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var input CreateBookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(input); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Title, author and price are required", details)
		return
	}

	book, err := h.svc.CreateBook(r.Context(), input)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, book)
}

// CreateReview handles POST /api/reviews
func (h *HTTPHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var input CreateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(input); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "BookId, author, rating, title and comment are required", details)
		return
	}

	review, err := h.svc.CreateReview(r.Context(), input)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, review)
}
