package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven/mocks"
)

// stubAuthAdapter fakes crypto with transparent encodings so tests can
// inspect tokens without a real signer
type stubAuthAdapter struct {
	parseErr error
}

func (a *stubAuthAdapter) HashPassword(password string) (string, error) {
	return "hash:" + password, nil
}

func (a *stubAuthAdapter) VerifyPassword(password, hash string) bool {
	return hash == "hash:"+password
}

func (a *stubAuthAdapter) GenerateToken(claims *domain.TokenClaims) (string, error) {
	b, err := json.Marshal(claims)
	return string(b), err
}

func (a *stubAuthAdapter) ParseToken(token string) (*domain.TokenClaims, error) {
	if a.parseErr != nil {
		return nil, a.parseErr
	}
	var claims domain.TokenClaims
	if err := json.Unmarshal([]byte(token), &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

func TestAuthService_Authenticate(t *testing.T) {
	sessions := mocks.NewMockSessionStore()
	svc := NewAuthService(sessions, &stubAuthAdapter{}, "hash:letmein")

	resp, err := svc.Authenticate(context.Background(), domain.LoginRequest{Password: "letmein"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected token issued")
	}
	if !resp.ExpiresAt.After(time.Now()) {
		t.Error("expected future expiry")
	}

	session, err := sessions.GetByToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("expected session persisted: %v", err)
	}
	if session.Token != resp.Token {
		t.Error("expected session token to match response")
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	svc := NewAuthService(mocks.NewMockSessionStore(), &stubAuthAdapter{}, "hash:letmein")

	if _, err := svc.Authenticate(context.Background(), domain.LoginRequest{Password: "wrong"}); err != domain.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), domain.LoginRequest{}); err != domain.ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput for empty password, got %v", err)
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	sessions := mocks.NewMockSessionStore()
	svc := NewAuthService(sessions, &stubAuthAdapter{}, "hash:letmein")

	resp, err := svc.Authenticate(context.Background(), domain.LoginRequest{Password: "letmein"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	authCtx, err := svc.ValidateToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if authCtx.SessionID == "" {
		t.Error("expected session id in auth context")
	}
}

func TestAuthService_ValidateToken_Rejections(t *testing.T) {
	sessions := mocks.NewMockSessionStore()
	adapter := &stubAuthAdapter{}
	svc := NewAuthService(sessions, adapter, "hash:letmein")

	if _, err := svc.ValidateToken(context.Background(), ""); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for empty token, got %v", err)
	}

	adapter.parseErr = errors.New("bad signature")
	if _, err := svc.ValidateToken(context.Background(), "garbage"); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for unparseable token, got %v", err)
	}
	adapter.parseErr = nil

	// Expired claims
	expired, _ := adapter.GenerateToken(&domain.TokenClaims{
		SessionID: "s1",
		IssuedAt:  time.Now().Add(-48 * time.Hour).Unix(),
		ExpiresAt: time.Now().Add(-24 * time.Hour).Unix(),
	})
	if _, err := svc.ValidateToken(context.Background(), expired); err != domain.ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}

	// Valid claims but no session behind them
	orphan, _ := adapter.GenerateToken(&domain.TokenClaims{
		SessionID: "revoked",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	if _, err := svc.ValidateToken(context.Background(), orphan); err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	sessions := mocks.NewMockSessionStore()
	svc := NewAuthService(sessions, &stubAuthAdapter{}, "hash:letmein")

	resp, err := svc.Authenticate(context.Background(), domain.LoginRequest{Password: "letmein"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Logout(context.Background(), resp.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ValidateToken(context.Background(), resp.Token); err != domain.ErrSessionNotFound {
		t.Errorf("expected revoked session rejected, got %v", err)
	}
}
