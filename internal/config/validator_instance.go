package config

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used by
// this package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("safe_path", func(fl validator.FieldLevel) bool {
			return isSafePath(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// GetValidator returns the configured validator for use outside this
// package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isSafePath performs syntactic validation without touching the
// filesystem.
func isSafePath(path string) bool {
	if path == "" || strings.Contains(path, "\x00") {
		return false
	}
	return !strings.Contains(path, "/../") && !strings.HasSuffix(path, "/..")
}
