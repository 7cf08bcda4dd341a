// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("not_blank", validateNotBlank)
	}
}

// validateISODate accepts fixed-width ISO 8601 calendar dates (2006-01-02).
// Date strings in that form compare correctly as plain strings, which the
// range queries rely on.
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// validateNotBlank rejects strings that are empty after trimming whitespace.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
