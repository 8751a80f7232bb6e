package domain

import "time"

// TaskType identifies the type of background task
type TaskType string

const (
	// TaskTypeAssetCleanup deletes an uploaded asset after its record is gone
	TaskTypeAssetCleanup TaskType = "asset_cleanup"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// Task represents a background job to be processed by workers
type Task struct {
	ID          string            `json:"id"`
	Type        TaskType          `json:"type"`
	Payload     map[string]string `json:"payload"`
	Status      TaskStatus        `json:"status"`
	Attempts    int               `json:"attempts"`
	MaxAttempts int               `json:"max_attempts"`
	Error       string            `json:"error,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewTask creates a new task with default values
func NewTask(taskType TaskType, payload map[string]string) *Task {
	now := time.Now()
	return &Task{
		ID:          GenerateID(),
		Type:        taskType,
		Payload:     payload,
		Status:      TaskStatusPending,
		MaxAttempts: 3,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewAssetCleanupTask creates a task to delete one uploaded asset
func NewAssetCleanupTask(url string) *Task {
	return NewTask(TaskTypeAssetCleanup, map[string]string{
		"url": url,
	})
}

// AssetURL extracts the asset URL from the payload (for asset_cleanup tasks)
func (t *Task) AssetURL() string {
	if t.Payload == nil {
		return ""
	}
	return t.Payload["url"]
}

// CanRetry returns true if the task can be retried
func (t *Task) CanRetry() bool {
	return t.Attempts < t.MaxAttempts
}

// MarkProcessing updates the task to processing state
func (t *Task) MarkProcessing() {
	t.Status = TaskStatusProcessing
	t.UpdatedAt = time.Now()
	t.Attempts++
}

// MarkCompleted updates the task to completed state
func (t *Task) MarkCompleted() {
	t.Status = TaskStatusCompleted
	t.UpdatedAt = time.Now()
}

// MarkFailed records an error; the task goes back to pending while it can
// still be retried, otherwise it is failed permanently.
func (t *Task) MarkFailed(reason string) {
	t.Error = reason
	if t.CanRetry() {
		t.Status = TaskStatusPending
	} else {
		t.Status = TaskStatusFailed
	}
	t.UpdatedAt = time.Now()
}
