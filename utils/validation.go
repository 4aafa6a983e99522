package utils

import (
    "fmt"
    "strings"

    "github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
    validate = validator.New()
}

func ValidateStruct(s interface{}) error {
    return validate.Struct(s)
}

func SanitizeString(input string) string {
    return strings.TrimSpace(input)
}

func FormatValidationError(err error) map[string]string {
    errors := make(map[string]string)

    if validationErrors, ok := err.(validator.ValidationErrors); ok {
        for _, fieldError := range validationErrors {
            field := strings.ToLower(fieldError.Field())
            switch fieldError.Tag() {
            case "required":
                errors[field] = fmt.Sprintf("%s is required", field)
            case "min":
                errors[field] = fmt.Sprintf("%s must be at least %s characters", field, fieldError.Param())
            case "max":
                errors[field] = fmt.Sprintf("%s must be at most %s characters", field, fieldError.Param())
            case "gte":
                errors[field] = fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
            case "lte":
                errors[field] = fmt.Sprintf("%s must be at most %s", field, fieldError.Param())
            case "oneof":
                errors[field] = fmt.Sprintf("%s must be one of: %s", field, fieldError.Param())
            default:
                errors[field] = fmt.Sprintf("%s is invalid", field)
            }
        }
    }

    return errors
}
