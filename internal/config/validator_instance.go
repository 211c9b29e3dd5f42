package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	bookIDPattern = regexp.MustCompile(`^[^\s]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their document names rather than Go names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			switch name {
			case "-":
				return ""
			case "":
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("book_id", func(fl validator.FieldLevel) bool {
			return bookIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("published_date", func(fl validator.FieldLevel) bool {
			_, err := parsePublished(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
