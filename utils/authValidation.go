package utils

import (
	"MediPoint/models"
	"errors"
	"log"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrInvalidResetCode   = errors.New("invalid reset code")
	ErrInvalidRole        = errors.New("role must be one of doctor, pharmacist, laboratory, admin")
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{6,19}$`)

// ValidatePatientRegistration validates the fields of a self-registering
// patient. The phone number is the login identifier, so it gets the strictest
// check.
func ValidatePatientRegistration(name, phone, password string) error {
	err := validation.Errors{
		"name":     validation.Validate(name, validation.Required, validation.Length(2, 100)),
		"phone":    validation.Validate(phone, validation.Required, validation.Match(phoneRegex).Error("must be a valid phone number")),
		"password": validation.Validate(password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateStaffUserData validates a staff account before it is created.
func ValidateStaffUserData(name, accessCode, password, role string) error {
	err := validation.Errors{
		"name":        validation.Validate(name, validation.Required, validation.Length(2, 100)),
		"access_code": validation.Validate(accessCode, validation.Required, validation.Length(4, 50), is.Alphanumeric),
		"password":    validation.Validate(password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
		"role":        validation.Validate(role, validation.Required, validation.By(validateRole)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	err := validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

func validateRole(value interface{}) error {
	role, _ := value.(string)
	if !models.IsStaffRole(role) {
		return ErrInvalidRole
	}
	return nil
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
