package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	showreelerrors "github.com/alexisbeaulieu97/showreel/pkg/errors"
)

// convertValidationError normalizes validator errors into showreel validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return showreelerrors.NewValidationError(field, msg, err)
	}

	return showreelerrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName turns Document.Colors.Accent into colors.accent and
// Document.Slides[2].Title into slides[2].title.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, snake(part))
	}
	return strings.Join(lowered, ".")
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return strings.ReplaceAll(b.String(), "_m_s", "_ms")
}
