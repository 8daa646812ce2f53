package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/adhdhub/internal/content"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
// Besides the built-in tags it understands `tab`, which accepts the names of the content sections.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	v := validator.New()
	if err := v.RegisterValidation("tab", validTab); err != nil {
		panic(err)
	}
	return &CustomValidator{validator: v}
}

func validTab(fl validator.FieldLevel) bool {
	_, err := content.ParseTab(fl.Field().String())
	return err == nil
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
