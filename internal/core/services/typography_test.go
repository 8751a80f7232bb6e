package services

import (
	"context"
	"testing"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven/mocks"
	"github.com/freezing-point/fp-core/internal/core/ports/driving"
	"github.com/freezing-point/fp-core/internal/runtime"
)

func TestTypographyService_Get_DefaultsBeforeSave(t *testing.T) {
	store := mocks.NewMockSettingsStore()
	svc := NewTypographyService(store, runtime.NewServices())

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Heading1.FontWeight != "700" {
		t.Errorf("expected default heading1 weight 700, got %q", settings.Heading1.FontWeight)
	}
	if settings.Body.Color != "#e5e7eb" {
		t.Errorf("expected default body color, got %q", settings.Body.Color)
	}
}

func TestTypographyService_Get_CachesAcrossReads(t *testing.T) {
	store := mocks.NewMockSettingsStore()
	svc := NewTypographyService(store, runtime.NewServices())

	for i := 0; i < 3; i++ {
		if _, err := svc.Get(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if store.GetCalls != 1 {
		t.Errorf("expected 1 store read, got %d", store.GetCalls)
	}
}

func TestTypographyService_Update_InvalidatesCache(t *testing.T) {
	store := mocks.NewMockSettingsStore()
	svc := NewTypographyService(store, runtime.NewServices())

	// Prime the cache with the defaults
	if _, err := svc.Get(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	heading := domain.TextStyle{
		FontSize:   domain.FontSize{Desktop: "4rem", Mobile: "2.5rem"},
		FontWeight: "800",
		Color:      "#ffffff",
	}
	updated, err := svc.Update(context.Background(), driving.UpdateTypographyRequest{Heading1: &heading})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Heading1.FontWeight != "800" {
		t.Errorf("expected saved heading weight, got %q", updated.Heading1.FontWeight)
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("expected updatedAt set")
	}

	// The next read must hit the store, not serve the stale cache
	readsBefore := store.GetCalls
	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.GetCalls != readsBefore+1 {
		t.Error("expected cache invalidated after save")
	}
	if settings.Heading1.FontWeight != "800" {
		t.Errorf("expected new value served after save, got %q", settings.Heading1.FontWeight)
	}
	if settings.Body.Color != "#e5e7eb" {
		t.Errorf("expected untouched styles preserved, got %q", settings.Body.Color)
	}
}

func TestTypographyService_Update_SaveErrorKeepsCache(t *testing.T) {
	store := mocks.NewMockSettingsStore()
	store.SaveErr = domain.ErrServiceUnavailable
	svc := NewTypographyService(store, runtime.NewServices())

	before, _ := svc.Get(context.Background())

	heading := domain.TextStyle{FontWeight: "900"}
	if _, err := svc.Update(context.Background(), driving.UpdateTypographyRequest{Heading1: &heading}); err == nil {
		t.Fatal("expected save error surfaced")
	}

	after, _ := svc.Get(context.Background())
	if after.Heading1.FontWeight != before.Heading1.FontWeight {
		t.Error("expected settings unchanged after failed save")
	}
}
