// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"coinfolio/internal/valuation"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("positive_number", validatePositiveNumber)
	}
}

// validatePositiveNumber accepts a string holding a number strictly greater
// than zero, the same rule the add form applies.
func validatePositiveNumber(fl validator.FieldLevel) bool {
	_, err := valuation.ParsePositive(fl.Field().String())
	return err == nil
}
