// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("tx_type", validateTransactionType)
		_ = v.RegisterValidation("import_mode", validateImportMode)
		_ = v.RegisterValidation("capital_kind", validateCapitalKind)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateImportMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "add", "replace":
		return true
	}
	return false
}

func validateCapitalKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "asset", "liability":
		return true
	}
	return false
}
