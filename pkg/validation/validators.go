package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailRegex is the storage-boundary email rule: word/dot/dash/plus
// local part, an @, and a dotted alphanumeric/dash domain.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("record_email", RecordEmail)
}

// RecordEmail validates an email against the record-store format rule.
func RecordEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// IsValidEmail reports whether s matches the email format rule.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}
