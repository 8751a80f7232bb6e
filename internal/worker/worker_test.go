package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven/mocks"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestWorker_ProcessesAssetCleanup(t *testing.T) {
	queue := mocks.NewMockTaskQueue()
	assets := mocks.NewMockAssetStore()

	task := domain.NewAssetCleanupTask("https://cdn.test/posts/hero.png")
	if err := queue.Enqueue(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := NewWorker(Config{
		TaskQueue:  queue,
		AssetStore: assets,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	waitFor(t, 2*time.Second, func() bool {
		return len(queue.Acked()) == 1
	})

	assetsDeleted := assets.Deleted
	if len(assetsDeleted) != 1 || assetsDeleted[0] != "https://cdn.test/posts/hero.png" {
		t.Errorf("expected asset deleted, got %v", assetsDeleted)
	}
}

func TestWorker_NacksFailedCleanup(t *testing.T) {
	queue := mocks.NewMockTaskQueue()
	assets := mocks.NewMockAssetStore()
	assets.DeleteErr = errors.New("cdn unreachable")

	task := domain.NewAssetCleanupTask("https://cdn.test/posts/hero.png")
	if err := queue.Enqueue(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := NewWorker(Config{
		TaskQueue:  queue,
		AssetStore: assets,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	waitFor(t, 2*time.Second, func() bool {
		return len(queue.Nacked()) >= 1
	})

	if len(queue.Acked()) != 0 {
		t.Errorf("expected no acks, got %v", queue.Acked())
	}
}

func TestWorker_NacksUnknownTaskType(t *testing.T) {
	queue := mocks.NewMockTaskQueue()
	assets := mocks.NewMockAssetStore()

	task := domain.NewTask(domain.TaskType("mystery"), nil)
	if err := queue.Enqueue(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := NewWorker(Config{
		TaskQueue:  queue,
		AssetStore: assets,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	waitFor(t, 2*time.Second, func() bool {
		return len(queue.Nacked()) >= 1
	})
}

func TestWorker_StartStop(t *testing.T) {
	w := NewWorker(Config{
		TaskQueue:  mocks.NewMockTaskQueue(),
		AssetStore: mocks.NewMockAssetStore(),
	})

	ctx := context.Background()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Starting twice is a no-op
	if err := w.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w.Stop()

	// Stopping twice is a no-op
	w.Stop()
}

func TestWorker_Health(t *testing.T) {
	w := NewWorker(Config{
		TaskQueue:  mocks.NewMockTaskQueue(),
		AssetStore: mocks.NewMockAssetStore(),
	})

	health := w.Health(context.Background())
	if health.Running {
		t.Error("expected not running before start")
	}
	if !health.QueueHealth {
		t.Error("expected healthy queue")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	health = w.Health(context.Background())
	if !health.Running {
		t.Error("expected running after start")
	}
}
