package driven

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// TaskQueue queues best-effort background work, currently only asset
// cleanup after record deletion. Implementations can use Redis
// (preferred) or Postgres (fallback).
type TaskQueue interface {
	// Enqueue adds a task to the queue for processing
	Enqueue(ctx context.Context, task *domain.Task) error

	// DequeueWithTimeout retrieves the next available task, waiting up to
	// timeout seconds. Returns nil, nil if the timeout is reached with no
	// tasks available. The task is marked processing and will not be
	// returned to other workers.
	DequeueWithTimeout(ctx context.Context, timeout int) (*domain.Task, error)

	// Ack acknowledges successful completion of a task
	Ack(ctx context.Context, taskID string) error

	// Nack indicates task processing failed. The task is requeued with an
	// updated retry count, or marked failed once retries are exhausted.
	Nack(ctx context.Context, taskID string, reason string) error

	// Ping checks if the queue backend is healthy
	Ping(ctx context.Context) error

	// Close cleans up resources
	Close() error
}
