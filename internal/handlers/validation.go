package handlers

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// validationDetails flattens a binding error into field-level messages keyed
// by the JSON field name, so clients can attach errors to form fields
func validationDetails(err error) map[string]string {
	details := map[string]string{}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			details[jsonFieldName(fe.Field())] = validationMessage(fe)
		}
		return details
	}
	details["body"] = err.Error()
	return details
}

// jsonFieldName lower-cases the leading rune of a struct field name, which is
// how every request DTO here maps onto its JSON key
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must match format " + fe.Param()
	default:
		return "is invalid"
	}
}

func badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message, "details": validationDetails(err)})
}
