package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, task *domain.Task) error
	GetForUserFn func(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error)
	UpdateFn     func(ctx context.Context, task *domain.Task) error
	DeleteFn     func(ctx context.Context, userID, id uuid.UUID) error

	// Data for default implementation
	Tasks       []*domain.Task
	CreateError error
	ListError   error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Tasks = append(m.Tasks, task)
	return nil
}

// GetForUser implements the TaskStore interface
func (m *MockTaskStore) GetForUser(
	ctx context.Context,
	userID, id uuid.UUID,
) (*domain.Task, error) {
	if m.GetForUserFn != nil {
		return m.GetForUserFn(ctx, userID, id)
	}

	for _, task := range m.Tasks {
		if task.ID == id && task.UserID == userID {
			return task, nil
		}
	}

	return nil, store.ErrTaskNotFound
}

// ListByUser implements the TaskStore interface. The default implementation
// applies the filter conjunctively and sorts newest first, mirroring the
// real store.
func (m *MockTaskStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID, filter)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	result := make([]*domain.Task, 0, len(m.Tasks))
	for _, task := range m.Tasks {
		if task.UserID != userID {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		if filter.CategoryID != nil {
			if task.CategoryID == nil || *task.CategoryID != *filter.CategoryID {
				continue
			}
		}
		result = append(result, task)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	for i, existing := range m.Tasks {
		if existing.ID == task.ID && existing.UserID == task.UserID {
			m.Tasks[i] = task
			return nil
		}
	}

	return store.ErrTaskNotFound
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, id)
	}

	for i, task := range m.Tasks {
		if task.ID == id && task.UserID == userID {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			return nil
		}
	}

	return store.ErrTaskNotFound
}
