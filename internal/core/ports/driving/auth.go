package driving

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// AuthService handles admin authentication against the shared password
type AuthService interface {
	// Authenticate validates the shared admin password and creates a session
	Authenticate(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)

	// ValidateToken validates a JWT token and returns the auth context
	ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error)

	// Logout invalidates a session
	Logout(ctx context.Context, token string) error
}
