package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherwidget.app/pkg/errors"
	"weatherwidget.app/pkg/validation"
)

// validatePlace accepts blank input and rejects over-long or control-character place names
func validatePlace(fl validator.FieldLevel) bool {
	return validation.IsValidPlace(fl.Field().String())
}

// RegisterValidators adds the widget's custom rules to gin's binding validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("binding validator is not go-playground/validator", nil)
	}
	if err := v.RegisterValidation("place", validatePlace); err != nil {
		return errors.NewConfigurationError("register place validator", err)
	}
	return nil
}
