package ports

import (
	"context"

	"github.com/familyhub/dashboard/internal/core/domain"
)

// CredentialChecker decides whether an email/password pair may log in.
// It returns domain.ErrAuthentication on mismatch.
type CredentialChecker interface {
	Check(ctx context.Context, email, password string) error
}

// LoginInput is the DTO passed from the transport layer to SessionService.
type LoginInput struct {
	Email    string `json:"email"    validate:"notblank"`
	Password string `json:"password"`
	Role     string `json:"role"     validate:"required,oneof=admin parent cook driver child"`
}

// SessionService holds the single live household session.
type SessionService interface {
	Login(ctx context.Context, input LoginInput) (string, error)
	Logout()
	Current() (domain.Session, bool)
	Authenticated() bool
	Verify(token string) (domain.Session, error)
}

// SessionReader is the read side of SessionService.
type SessionReader interface {
	Current() (domain.Session, bool)
}
