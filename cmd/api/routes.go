package main

import (
	"log"
	"net/http"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/httpx"
)

const maxRequestBytes = 1 << 20 // 1 MB

// newRouter builds the route table and wraps it in the shared middleware
// chain. When allowlist is nil the POST routes are unauthenticated.
func newRouter(handler *catalog.HTTPHandler, allowlist *auth.Allowlist, accessLogger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /api/books", handler.ListBooks)
	mux.HandleFunc("GET /api/books/{id}", handler.GetBook)
	mux.HandleFunc("GET /api/books/{id}/reviews", handler.ReviewsForBook)
	mux.HandleFunc("GET /books/datePublished", handler.BooksByDateRange)
	mux.HandleFunc("GET /books/top-rated", handler.TopRatedBooks)
	mux.HandleFunc("GET /books/featured", handler.FeaturedBooks)
	mux.HandleFunc("GET /api/reviews", handler.ListReviews)
	mux.HandleFunc("GET /api/reviews/{id}", handler.GetReview)

	createBook := http.Handler(http.HandlerFunc(handler.CreateBook))
	createReview := http.Handler(http.HandlerFunc(handler.CreateReview))
	if allowlist != nil {
		requireToken := auth.RequireToken(allowlist)
		createBook = requireToken(createBook)
		createReview = requireToken(createReview)
	}
	mux.Handle("POST /api/books", createBook)
	mux.Handle("POST /api/reviews", createReview)

	var h http.Handler = mux
	h = httpx.RequestSizeLimitMiddleware(maxRequestBytes)(h)
	h = httpx.SecurityHeadersMiddleware(h)
	h = httpx.RecoveryMiddleware(h)
	h = httpx.AccessLogMiddleware(accessLogger)(h)
	h = httpx.RequestIDMiddleware(h)
	return h
}
