package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Title  string  `json:"title" validate:"required"`
	Author string  `json:"author" validate:"required"`
	Price  float64 `json:"price" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		details := ValidateStruct(sampleInput{Title: "t", Author: "a", Price: 1})
		assert.Nil(t, details)
	})

	t.Run("missing fields are reported per field", func(t *testing.T) {
		details := ValidateStruct(sampleInput{Title: "t"})
		require.Len(t, details, 2)
		assert.Equal(t, "author", details[0].Field)
		assert.Equal(t, "author is required", details[0].Message)
		assert.Equal(t, "price", details[1].Field)
	})

	t.Run("zero numeric value counts as missing", func(t *testing.T) {
		details := ValidateStruct(sampleInput{Title: "t", Author: "a", Price: 0})
		require.Len(t, details, 1)
		assert.Equal(t, "price", details[0].Field)
	})
}
