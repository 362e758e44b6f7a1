package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// hourlyWage -> Hourly Wage, start_date -> Start Date
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	caser := cases.Title(language.English)
	return caser.String(b.String())
}

func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return Wrap(err, CodeInvalidInput, "Invalid input", ErrInvalidInput.HTTPStatus)
}
