package utils

import (
	"strings"

	"experio/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateRequest runs struct validation and converts the first failure into
// a MissingField booking error with a caller-readable message.
func ValidateRequest(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return models.NewMissingFieldError("invalid request payload")
	}

	fe := validationErrors[0]
	field := toSnakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return models.NewMissingFieldError("missing required field: " + field)
	case "email":
		return models.NewMissingFieldError("invalid email address")
	case "gte", "gt":
		return models.NewMissingFieldError("field " + field + " must be at least " + fe.Param())
	default:
		return models.NewMissingFieldError("invalid value for field: " + field)
	}
}

// ValidationErrorDetails flattens validator errors into a field -> message map.
func ValidationErrorDetails(err error) map[string]string {
	details := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return details
	}
	for _, fe := range validationErrors {
		details[toSnakeCase(fe.Field())] = "failed on " + fe.Tag()
	}
	return details
}

func toSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
