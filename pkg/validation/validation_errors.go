package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError is the structured detail attached to a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldLabels maps struct field names to user-facing labels.
var FieldLabels = map[string]string{
	"Username":     "Username",
	"Password":     "Password",
	"Role":         "Role",
	"Name":         "Name",
	"Email":        "Email",
	"Bio":          "Bio",
	"Location":     "Location",
	"Title":        "Title",
	"Description":  "Description",
	"Company":      "Company",
	"Type":         "Job type",
	"SalaryRange":  "Salary range",
	"CoverLetter":  "Cover letter",
	"ResumeURL":    "Resume URL",
	"Status":       "Status",
	"PersonalInfo": "Personal info",
	"JobTitle":     "Job title",
	"Content":      "Content",
}

// FormatFieldErrors converts validator.ValidationErrors into field-level
// details. Non-validation errors collapse into a single generic entry.
func FormatFieldErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, FieldError{
			Field:   e.Field(),
			Message: formatSingleError(e),
		})
	}
	return fields
}

func formatSingleError(e validator.FieldError) string {
	label := fieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func fieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
