package testutil

import (
	"context"
	"fmt"

	"nextstep-go/internal/nextstep"
)

// MockIdentity implements nextstep.IdentityProvider with function fields.
type MockIdentity struct {
	SignInFn            func(ctx context.Context, email, password string) (*nextstep.Credentials, error)
	SignUpFn            func(ctx context.Context, email, password string) (*nextstep.Credentials, error)
	SendPasswordResetFn func(ctx context.Context, email string) error
}

func (m *MockIdentity) SignIn(ctx context.Context, email, password string) (*nextstep.Credentials, error) {
	if m.SignInFn == nil {
		return nil, fmt.Errorf("unexpected call to SignIn")
	}
	return m.SignInFn(ctx, email, password)
}

func (m *MockIdentity) SignUp(ctx context.Context, email, password string) (*nextstep.Credentials, error) {
	if m.SignUpFn == nil {
		return nil, fmt.Errorf("unexpected call to SignUp")
	}
	return m.SignUpFn(ctx, email, password)
}

func (m *MockIdentity) SendPasswordReset(ctx context.Context, email string) error {
	if m.SendPasswordResetFn == nil {
		return fmt.Errorf("unexpected call to SendPasswordReset")
	}
	return m.SendPasswordResetFn(ctx, email)
}

// Compile-time check
var _ nextstep.IdentityProvider = (*MockIdentity)(nil)
