package services

import (
	"context"
	"time"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven"
	"github.com/freezing-point/fp-core/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface. The admin area uses a
// single shared password; its bcrypt hash is configured at startup.
type authService struct {
	sessionStore driven.SessionStore
	authAdapter  driven.AuthAdapter
	passwordHash string
	tokenTTL     time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(
	sessionStore driven.SessionStore,
	authAdapter driven.AuthAdapter,
	passwordHash string,
) driving.AuthService {
	return &authService{
		sessionStore: sessionStore,
		authAdapter:  authAdapter,
		passwordHash: passwordHash,
		tokenTTL:     24 * time.Hour,
	}
}

// Authenticate validates the shared admin password and creates a session
func (s *authService) Authenticate(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	if req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	if !s.authAdapter.VerifyPassword(req.Password, s.passwordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	sessionID := domain.GenerateID()
	claims := &domain.TokenClaims{
		SessionID: sessionID,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(s.tokenTTL).Unix(),
	}

	token, err := s.authAdapter.GenerateToken(claims)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	session := &domain.Session{
		ID:        sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := s.sessionStore.Save(ctx, session); err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken validates a JWT token and returns the auth context
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if time.Now().Unix() > claims.ExpiresAt {
		return nil, domain.ErrTokenExpired
	}

	// The session must still exist; logout revokes it before the JWT expires
	session, err := s.sessionStore.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	if session.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	return &domain.AuthContext{SessionID: claims.SessionID}, nil
}

// Logout invalidates a session
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionStore.DeleteByToken(ctx, token)
}
