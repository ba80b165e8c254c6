package identity

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Sentinel errors matched by ProviderError.Is.
var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrWeakPassword       = errors.New("weak password")
)

// MinPasswordLength is the shortest password the registration form accepts.
const MinPasswordLength = 6

// ProviderError is an error reported by the identity provider. Error returns
// a message suitable for showing to the user.
type ProviderError struct {
	StatusCode int
	Code       string // e.g. EMAIL_EXISTS
	Detail     string // provider text after the code, if any
}

var providerMessages = map[string]string{
	"EMAIL_EXISTS":                "An account with this email already exists.",
	"EMAIL_NOT_FOUND":             "Invalid email or password.",
	"INVALID_PASSWORD":            "Invalid email or password.",
	"INVALID_LOGIN_CREDENTIALS":   "Invalid email or password.",
	"INVALID_EMAIL":               "The email address is badly formatted.",
	"USER_DISABLED":               "This account has been disabled.",
	"WEAK_PASSWORD":               "Password should be at least 6 characters.",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Too many attempts. Try again later.",
	"OPERATION_NOT_ALLOWED":       "This sign-in method is not enabled.",
	"INVALID_ID_TOKEN":            "Your session has expired. Please log in again.",
	"TOKEN_EXPIRED":               "Your session has expired. Please log in again.",
	"USER_NOT_FOUND":              "Your session has expired. Please log in again.",
	"INVALID_IDP_RESPONSE":        "The sign-in provider rejected the credential.",
}

func (e *ProviderError) Error() string {
	if msg, ok := providerMessages[e.Code]; ok {
		return msg
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Detail)
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("identity provider error (HTTP %d)", e.StatusCode)
}

// Is maps provider codes onto the package sentinels.
func (e *ProviderError) Is(target error) bool {
	switch target {
	case ErrEmailExists:
		return e.Code == "EMAIL_EXISTS"
	case ErrInvalidCredentials:
		return e.Code == "EMAIL_NOT_FOUND" || e.Code == "INVALID_PASSWORD" ||
			e.Code == "INVALID_LOGIN_CREDENTIALS"
	case ErrSessionExpired:
		return e.Code == "INVALID_ID_TOKEN" || e.Code == "TOKEN_EXPIRED" ||
			e.Code == "USER_NOT_FOUND"
	case ErrWeakPassword:
		return e.Code == "WEAK_PASSWORD"
	}
	return false
}

// parseProviderMessage splits "WEAK_PASSWORD : Password should be..." into
// code and detail.
func parseProviderMessage(status int, msg string) *ProviderError {
	code, detail, _ := strings.Cut(msg, ":")
	return &ProviderError{
		StatusCode: status,
		Code:       strings.TrimSpace(code),
		Detail:     strings.TrimSpace(detail),
	}
}

// ValidatePassword applies the registration form rules: at least
// MinPasswordLength characters with an upper-case and a lower-case letter.
// All violations are reported together and match ErrWeakPassword.
func ValidatePassword(password string) error {
	var errs []error
	if len([]rune(password)) < MinPasswordLength {
		errs = append(errs, fmt.Errorf("%w: must be at least %d characters", ErrWeakPassword, MinPasswordLength))
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		errs = append(errs, fmt.Errorf("%w: must contain an upper-case letter", ErrWeakPassword))
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		errs = append(errs, fmt.Errorf("%w: must contain a lower-case letter", ErrWeakPassword))
	}
	return errors.Join(errs...)
}
