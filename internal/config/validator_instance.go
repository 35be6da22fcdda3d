package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/showreel/internal/deck"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	seenKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
			_, err := deck.Lookup(deck.Name(fl.Field().String()))
			return err == nil
		})

		_ = v.RegisterValidation("gate", func(fl validator.FieldLevel) bool {
			_, err := deck.ParseGate(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("seen_key", func(fl validator.FieldLevel) bool {
			return seenKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
