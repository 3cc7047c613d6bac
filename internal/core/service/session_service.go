package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
	"github.com/familyhub/dashboard/internal/core/validation"
)

// SharedSecretChecker accepts any email together with one fixed password.
// Only the bcrypt hash of the password is kept in memory.
type SharedSecretChecker struct {
	hash []byte
}

// NewSharedSecretChecker hashes secret for later comparison.
func NewSharedSecretChecker(secret string) (*SharedSecretChecker, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash shared secret: %w", err)
	}
	return &SharedSecretChecker{hash: hash}, nil
}

// Check returns domain.ErrAuthentication for a blank email or a wrong password.
func (c *SharedSecretChecker) Check(_ context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" {
		return domain.ErrAuthentication
	}
	if bcrypt.CompareHashAndPassword(c.hash, []byte(password)) != nil {
		return domain.ErrAuthentication
	}
	return nil
}

// SessionService holds the single household session. It has no lock of its
// own: every caller runs on the action loop.
type SessionService struct {
	checker   ports.CredentialChecker
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
	log       zerolog.Logger

	current *domain.Session
}

// NewSessionService starts unauthenticated. A non-positive tokenTTL means 24h.
func NewSessionService(checker ports.CredentialChecker, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		checker:   checker,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log,
	}
}

// Login checks the credentials and, on success, replaces the live session
// with a new one. On any failure the current state is left as it was.
func (s *SessionService) Login(ctx context.Context, input ports.LoginInput) (string, error) {
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	if err := validation.Struct(input); err != nil {
		return "", err
	}
	role, _ := domain.ParseRole(input.Role)

	if err := s.checker.Check(ctx, input.Email, input.Password); err != nil {
		s.log.Info().Str("email", input.Email).Str("role", string(role)).Msg("login rejected")
		if errors.Is(err, domain.ErrAuthentication) {
			return "", err
		}
		return "", fmt.Errorf("check credentials: %w", err)
	}

	session := domain.Session{
		ID: uuid.NewString(),
		Identity: domain.Identity{
			ID:     uuid.NewString(),
			Name:   domain.DisplayNameFor(role),
			Email:  strings.TrimSpace(input.Email),
			Role:   role,
			Avatar: domain.AvatarFor(role),
		},
		StartedAt: s.now(),
	}

	token, err := s.generateToken(session)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	s.current = &session
	s.log.Info().Str("session_id", session.ID).Str("role", string(role)).Msg("session started")
	return token, nil
}

// Logout drops the live session, if any.
func (s *SessionService) Logout() {
	if s.current != nil {
		s.log.Info().Str("session_id", s.current.ID).Msg("session ended")
	}
	s.current = nil
}

// Current returns the live session, if any.
func (s *SessionService) Current() (domain.Session, bool) {
	if s.current == nil {
		return domain.Session{}, false
	}
	return *s.current, true
}

// Authenticated reports whether a session is live.
func (s *SessionService) Authenticated() bool {
	return s.current != nil
}

// Verify parses token and checks that it belongs to the live session. Tokens
// of a replaced or ended session are rejected.
func (s *SessionService) Verify(tokenStr string) (domain.Session, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return domain.Session{}, domain.ErrNotAuthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Session{}, domain.ErrNotAuthenticated
	}
	sid, _ := claims["sid"].(string)
	if s.current == nil || sid == "" || sid != s.current.ID {
		return domain.Session{}, domain.ErrNotAuthenticated
	}
	return *s.current, nil
}

func (s *SessionService) generateToken(session domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":  session.ID,
		"sub":  session.Identity.ID,
		"role": string(session.Identity.Role),
		"exp":  session.StartedAt.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
