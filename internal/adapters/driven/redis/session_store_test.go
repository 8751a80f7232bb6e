package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// setupTestSessionStore creates a test Redis client and SessionStore
func setupTestSessionStore(t *testing.T) (*SessionStore, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewSessionStore(client)

	return store, mr, func() {
		client.Close()
		mr.Close()
	}
}

func createTestSession() *domain.Session {
	return &domain.Session{
		ID:        "session-123",
		Token:     "token-abc",
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, _, cleanup := setupTestSessionStore(t)
	defer cleanup()

	ctx := context.Background()
	session := createTestSession()

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error saving session: %v", err)
	}

	retrieved, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("failed to retrieve saved session: %v", err)
	}
	if retrieved.ID != session.ID {
		t.Errorf("expected ID %s, got %s", session.ID, retrieved.ID)
	}
	if retrieved.Token != session.Token {
		t.Errorf("expected Token %s, got %s", session.Token, retrieved.Token)
	}
}

func TestSessionStore_Save_ExpiredSession(t *testing.T) {
	store, _, cleanup := setupTestSessionStore(t)
	defer cleanup()

	ctx := context.Background()
	session := createTestSession()
	session.ExpiresAt = time.Now().Add(-1 * time.Hour) // Already expired

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Session should not be saved since it's already expired
	if _, err := store.Get(ctx, session.ID); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound for expired session, got %v", err)
	}
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	store, _, cleanup := setupTestSessionStore(t)
	defer cleanup()

	if _, err := store.Get(context.Background(), "nonexistent-session"); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionStore_GetByToken(t *testing.T) {
	store, _, cleanup := setupTestSessionStore(t)
	defer cleanup()

	ctx := context.Background()
	session := createTestSession()

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	retrieved, err := store.GetByToken(ctx, session.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retrieved.ID != session.ID {
		t.Errorf("expected ID %s, got %s", session.ID, retrieved.ID)
	}

	if _, err := store.GetByToken(ctx, "nonexistent-token"); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionStore_GetByToken_SessionExpiredButIndexExists(t *testing.T) {
	store, mr, cleanup := setupTestSessionStore(t)
	defer cleanup()

	ctx := context.Background()
	session := createTestSession()

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Delete session data but leave token index (simulating TTL race)
	mr.Del(sessionPrefix + session.ID)

	if _, err := store.GetByToken(ctx, session.Token); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionStore_Delete_RemovesIndexes(t *testing.T) {
	store, mr, cleanup := setupTestSessionStore(t)
	defer cleanup()

	ctx := context.Background()
	session := createTestSession()

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Delete(ctx, session.ID); err != nil {
		t.Fatalf("unexpected error deleting session: %v", err)
	}

	if _, err := store.Get(ctx, session.ID); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound after deletion, got %v", err)
	}
	if mr.Exists(sessionTokenPrefix + session.Token) {
		t.Error("expected token index to be removed")
	}
}

func TestSessionStore_Delete_NotFound(t *testing.T) {
	store, _, cleanup := setupTestSessionStore(t)
	defer cleanup()

	// Deleting non-existent session should not error
	if err := store.Delete(context.Background(), "nonexistent-session"); err != nil {
		t.Errorf("unexpected error deleting non-existent session: %v", err)
	}
}

func TestSessionStore_DeleteByToken(t *testing.T) {
	store, _, cleanup := setupTestSessionStore(t)
	defer cleanup()

	ctx := context.Background()
	session := createTestSession()

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.DeleteByToken(ctx, session.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.Get(ctx, session.ID); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Deleting non-existent token should not error
	if err := store.DeleteByToken(ctx, "nonexistent-token"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSessionStore_TTL_Expiration(t *testing.T) {
	store, mr, cleanup := setupTestSessionStore(t)
	defer cleanup()

	ctx := context.Background()
	session := createTestSession()
	session.ExpiresAt = time.Now().Add(2 * time.Second)

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.Get(ctx, session.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Fast-forward time in miniredis
	mr.FastForward(3 * time.Second)

	if _, err := store.Get(ctx, session.ID); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound for expired session, got %v", err)
	}
}

func TestSessionStore_Get_InvalidJSON(t *testing.T) {
	store, mr, cleanup := setupTestSessionStore(t)
	defer cleanup()

	_ = mr.Set(sessionPrefix+"bad-session", "invalid json data")

	if _, err := store.Get(context.Background(), "bad-session"); err == nil {
		t.Error("expected error unmarshaling invalid JSON")
	}
}
