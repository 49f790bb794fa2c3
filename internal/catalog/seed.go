package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

type booksSeed struct {
	Books []Book `json:"books"`
}

type reviewsSeed struct {
	Reviews []Review `json:"reviews"`
}

// LoadSeed reads the two seed files and returns their contents. The files
// wrap the collections under top-level "books" / "reviews" keys.
func LoadSeed(booksPath, reviewsPath string) ([]Book, []Review, error) {
	raw, err := os.ReadFile(booksPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read books seed: %w", err)
	}
	var bs booksSeed
	if err := json.Unmarshal(raw, &bs); err != nil {
		return nil, nil, fmt.Errorf("parse books seed %s: %w", booksPath, err)
	}

	raw, err = os.ReadFile(reviewsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read reviews seed: %w", err)
	}
	var rs reviewsSeed
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, nil, fmt.Errorf("parse reviews seed %s: %w", reviewsPath, err)
	}

	return bs.Books, rs.Reviews, nil
}
