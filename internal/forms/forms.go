// Package forms defines the client-side validation rule sets for the
// portal's input forms. Each field carries an independent rule set;
// cross-field rules (password confirmation) are expressed over the whole
// record via eqfield rather than on a single field.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LoginForm validates the sign-in screen.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterAdminForm validates the new-admin screen. Password is optional;
// when absent the backend generates one.
type RegisterAdminForm struct {
	FullName     string `validate:"required"`
	TEID         string `validate:"required"`
	Email        string `validate:"required,email"`
	Password     string `validate:"omitempty,min=8"`
	PlantID      string `validate:"required"`
	IsSuperAdmin bool
}

// ChangePasswordForm validates the password-change screen, including the
// confirmation match.
type ChangePasswordForm struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=8,nefield=CurrentPassword"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

// SubmissionForm validates the public document-submission form. The grey
// card value is optional.
type SubmissionForm struct {
	FullName    string `validate:"required"`
	TEID        string `validate:"required"`
	CIN         string `validate:"required"`
	DateOfBirth string `validate:"required,datetime=2006-01-02"`
	PlantID     string `validate:"required"`
	GreyCard    string
}

var validate = validator.New()

// Check evaluates a form's rule set and returns the per-field messages, or
// nil when the form is valid.
func Check(form any) []string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return msgs
}

// Validate is Check folded into a single error, suitable for call sites
// that only need pass/fail plus a message.
func Validate(form any) error {
	if msgs := Check(form); len(msgs) > 0 {
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "eqfield":
		return field + " does not match " + strings.ToLower(fe.Param())
	case "nefield":
		return field + " must differ from " + strings.ToLower(fe.Param())
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
