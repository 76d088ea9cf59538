package models

import (
	"strings"
	"time"

	"github.com/rpupo63/sleeklegal-backend/errs"
)

type field struct {
	name  string
	value string
}

type optField struct {
	name  string
	value *string
}

// requireFields returns a missing-field error for the first blank value
func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return errs.NewMissingRequiredFieldError(f.name)
		}
	}
	return nil
}

// rejectBlank returns an invalid-field error for the first set-but-blank value
func rejectBlank(fields ...optField) error {
	for _, f := range fields {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			return errs.NewInvalidFieldError(f.name, "cannot be empty")
		}
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func putString(cols map[string]any, column string, value *string) {
	if value != nil {
		cols[column] = *value
	}
}

func validateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return errs.NewInvalidFieldError("date", "expected YYYY-MM-DD")
	}
	return nil
}
