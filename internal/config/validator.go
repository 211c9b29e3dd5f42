package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	catalogerrors "github.com/alexisbeaulieu97/bookcatalog/pkg/errors"
)

// ValidateDataset performs schema and cross-record validation. Unknown
// author or genre references are not errors here; they surface at display
// time for the affected book.
func ValidateDataset(file *DatasetFile) error {
	if file == nil {
		return catalogerrors.NewValidationError("dataset", "dataset is nil", nil)
	}

	var problems catalogerrors.ValidationErrors

	if err := validatorInstance().Struct(file); err != nil {
		problems = append(problems, convertValidationErrors(err)...)
	}

	seen := make(map[string]int, len(file.Books))
	for i, book := range file.Books {
		if book.ID == "" {
			continue
		}
		if first, dup := seen[book.ID]; dup {
			problems = append(problems, &catalogerrors.ValidationError{
				Field:   fieldForBook(i, "id"),
				Message: fmt.Sprintf("duplicate book id %q (first defined at books[%d])", book.ID, first),
			})
			continue
		}
		seen[book.ID] = i
	}

	if len(problems) > 0 {
		return problems
	}
	return nil
}

// ValidateSettings checks a settings document.
func ValidateSettings(settings *Settings) error {
	if settings == nil {
		return nil
	}
	if err := validatorInstance().Struct(settings); err != nil {
		return catalogerrors.ValidationErrors(convertValidationErrors(err))
	}
	return nil
}

func convertValidationErrors(err error) []*catalogerrors.ValidationError {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []*catalogerrors.ValidationError{{Field: "dataset", Message: err.Error(), Err: err}}
	}

	out := make([]*catalogerrors.ValidationError, 0, len(ves))
	for _, fe := range ves {
		field := documentFieldName(fe)
		out = append(out, &catalogerrors.ValidationError{
			Field:   field,
			Message: describeTag(fe),
			Err:     fe,
		})
	}
	return out
}

// documentFieldName drops the root struct name from the namespace.
func documentFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "book_id":
		return "must be a non-empty id without whitespace"
	case "published_date":
		return fmt.Sprintf("%q is not a recognised date", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func fieldForBook(index int, field string) string {
	return fmt.Sprintf("books[%d].%s", index, field)
}
