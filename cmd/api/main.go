package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/catalog"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := ":" + getEnv("PORT", "3000")
	booksSeedPath := getEnv("BOOKS_SEED", "data/books.json")
	reviewsSeedPath := getEnv("REVIEWS_SEED", "data/reviews.json")
	tokensFilePath := os.Getenv("TOKENS_FILE")
	accessLogPath := os.Getenv("ACCESS_LOG")

	books, reviews, err := catalog.LoadSeed(booksSeedPath, reviewsSeedPath)
	if err != nil {
		log.Fatalf("cannot load seed data: %v", err)
	}
	log.Printf("seed data loaded: books=%d reviews=%d", len(books), len(reviews))

	repo := catalog.NewMemoryRepository(books, reviews)
	service := catalog.NewService(repo)
	handler := catalog.NewHTTPHandler(service)

	// Writes stay open to everyone unless an allow-list file is configured.
	var allowlist *auth.Allowlist
	if tokensFilePath != "" {
		allowlist, err = auth.LoadAllowlist(tokensFilePath)
		if err != nil {
			log.Fatalf("cannot load token allow-list: %v", err)
		}
		log.Printf("token allow-list loaded from %s", tokensFilePath)
	}

	accessLogger := log.New(os.Stdout, "", log.LstdFlags)
	if accessLogPath != "" {
		f, err := os.OpenFile(accessLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("cannot open access log %s: %v", accessLogPath, err)
		}
		defer f.Close()
		accessLogger = log.New(f, "", log.LstdFlags)
	}

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      newRouter(handler, allowlist, accessLogger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
