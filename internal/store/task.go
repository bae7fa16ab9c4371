package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskify/taskify-api/internal/domain"
)

// TaskFilter narrows a task listing. All fields are optional and combine
// conjunctively; a nil field means "no constraint on this attribute".
type TaskFilter struct {
	Status     *domain.TaskStatus
	Priority   *domain.TaskPriority
	CategoryID *uuid.UUID
}

// TaskStore defines the interface for task data persistence.
// All operations are scoped to the owning user.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetForUser retrieves the task with the given ID if it is owned by
	// userID. Returns ErrTaskNotFound otherwise.
	GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error)

	// ListByUser returns the user's tasks matching the filter, sorted by
	// creation time descending. The result set is capped internally.
	ListByUser(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*domain.Task, error)

	// Update persists the full state of an existing task owned by userID.
	// Returns ErrTaskNotFound if no such task exists.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID if it is owned by userID.
	// Returns ErrTaskNotFound otherwise.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
