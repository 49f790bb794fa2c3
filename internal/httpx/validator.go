package httpx

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validate tags on s and converts any failures into
// field-level error details for the response body. Returns nil when valid.
func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []ErrorDetail
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		fieldName := strings.ToLower(field[:1]) + field[1:]

		var message string
		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fieldName)
		case "min":
			message = fmt.Sprintf("%s must be at least %s", fieldName, fieldErr.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", fieldName, fieldErr.Param())
		default:
			message = fmt.Sprintf("%s is invalid", fieldName)
		}

		details = append(details, ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return details
}
