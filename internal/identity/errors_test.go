package identity

import (
	"errors"
	"fmt"
	"testing"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{CodeInvalidEmail, "Invalid email address. Check the format."},
		{CodeEmailNotFound, "Account not found. Check the email address."},
		{CodeInvalidPassword, "Incorrect password. Try again."},
		{CodeInvalidCredentials, "Incorrect email or password."},
		{CodeEmailExists, "This email is already in use. Try signing in instead."},
		{CodeUserDisabled, "This account has been disabled."},
		{CodeWeakPassword, "Password is too weak. Use at least 6 characters."},
		{CodeTooManyAttempts, "Too many attempts. Wait a few minutes and try again."},
		{CodeNetworkFailed, "Connection error. Check your internet connection."},
		{"SOMETHING_NEW", "Unknown error. Please try again."},
		{"", "Unknown error. Please try again."},
	}

	for _, tt := range tests {
		if got := Message(tt.code); got != tt.want {
			t.Errorf("Message(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	authErr := &AuthError{Code: CodeEmailNotFound, StatusCode: 400}
	wrapped := fmt.Errorf("sign in: %w", authErr)

	if got := ErrorMessage(wrapped); got != "Account not found. Check the email address." {
		t.Errorf("ErrorMessage(wrapped) = %q", got)
	}
	if got := ErrorMessage(errors.New("boom")); got != "Unknown error. Please try again." {
		t.Errorf("ErrorMessage(plain error) = %q", got)
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"EMAIL_NOT_FOUND", "EMAIL_NOT_FOUND"},
		{"WEAK_PASSWORD : Password should be at least 6 characters", "WEAK_PASSWORD"},
		{"  TOO_MANY_ATTEMPTS_TRY_LATER  ", "TOO_MANY_ATTEMPTS_TRY_LATER"},
		{"", CodeInternal},
	}

	for _, tt := range tests {
		if got := normalizeCode(tt.raw); got != tt.want {
			t.Errorf("normalizeCode(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
