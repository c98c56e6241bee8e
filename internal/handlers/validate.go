package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the DTO's validation tags and flattens failures into a
// single client-facing message. Returns "" when the struct is valid.
func validateStruct(s any) string {
	err := validate.Struct(s)
	if err == nil {
		return ""
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Validation failed"
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return "Validation failed: " + strings.Join(messages, ", ")
}

func fieldMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s should be valid", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
