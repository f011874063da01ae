package identity

import (
	"errors"
	"fmt"
	"strings"
)

// AuthError is a failure reported by the identity provider, carrying the
// provider's error code (e.g. "EMAIL_NOT_FOUND").
type AuthError struct {
	Code       string
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("identity provider error: %s", e.Code)
}

// Codes the provider is known to return. Transport failures are reported
// under CodeNetworkFailed; responses that cannot be parsed fall back to
// CodeInternal.
const (
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeEmailNotFound      = "EMAIL_NOT_FOUND"
	CodeInvalidPassword    = "INVALID_PASSWORD"
	CodeInvalidCredentials = "INVALID_LOGIN_CREDENTIALS"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeUserDisabled       = "USER_DISABLED"
	CodeNotAllowed         = "OPERATION_NOT_ALLOWED"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeTooManyAttempts    = "TOO_MANY_ATTEMPTS_TRY_LATER"
	CodeRecentLoginNeeded  = "CREDENTIAL_TOO_OLD_LOGIN_AGAIN"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeNetworkFailed      = "NETWORK_REQUEST_FAILED"
	CodeInternal           = "INTERNAL_ERROR"
)

// messages is the fixed code-to-message translation table. Codes not in
// the table get the generic fallback.
var messages = map[string]string{
	CodeInvalidEmail:       "Invalid email address. Check the format.",
	CodeEmailNotFound:      "Account not found. Check the email address.",
	CodeInvalidPassword:    "Incorrect password. Try again.",
	CodeInvalidCredentials: "Incorrect email or password.",
	CodeEmailExists:        "This email is already in use. Try signing in instead.",
	CodeUserDisabled:       "This account has been disabled.",
	CodeNotAllowed:         "Operation not allowed.",
	CodeWeakPassword:       "Password is too weak. Use at least 6 characters.",
	CodeTooManyAttempts:    "Too many attempts. Wait a few minutes and try again.",
	CodeRecentLoginNeeded:  "This operation requires a recent sign-in. Sign in again.",
	CodeTokenExpired:       "Session expired. Sign in again.",
	CodeNetworkFailed:      "Connection error. Check your internet connection.",
	CodeInternal:           "Internal error. Try again later.",
}

const genericMessage = "Unknown error. Please try again."

// Message translates a provider error code to its user-facing text.
func Message(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return genericMessage
}

// ErrorMessage translates any error from this package to user-facing
// text. Non-AuthError values get the generic fallback.
func ErrorMessage(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return Message(authErr.Code)
	}
	return genericMessage
}

// normalizeCode strips the detail suffix some codes carry, e.g.
// "WEAK_PASSWORD : Password should be at least 6 characters".
func normalizeCode(raw string) string {
	code := strings.TrimSpace(raw)
	if idx := strings.IndexAny(code, " :"); idx > 0 {
		code = code[:idx]
	}
	if code == "" {
		return CodeInternal
	}
	return code
}
