package handlers

import (
	"errors"
	"fmt"
	"sync"

	"github.com/SscSPs/unit_converter_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// RegisterValidators adds the converter's custom binding tags to gin's validator.
// It is safe to call repeatedly; the first outcome is returned every time.
func RegisterValidators() error {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerValidatorsErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		if err := v.RegisterValidation("converter_category", validateCategory); err != nil {
			registerValidatorsErr = fmt.Errorf("register converter_category validation: %w", err)
		}
	})
	return registerValidatorsErr
}

func validateCategory(fl validator.FieldLevel) bool {
	_, err := domain.ParseCategory(fl.Field().String())
	return err == nil
}
