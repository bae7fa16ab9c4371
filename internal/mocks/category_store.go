package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing
type MockCategoryStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, category *domain.Category) error
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
	DeleteFn     func(ctx context.Context, userID, id uuid.UUID) error

	// Data for default implementation
	Categories []*domain.Category
	ListError  error
}

// NewMockCategoryStore creates a new mock store with initialized defaults
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{}
}

// Create implements the CategoryStore interface
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}

	m.Categories = append(m.Categories, category)
	return nil
}

// ListByUser implements the CategoryStore interface
func (m *MockCategoryStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Category, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	result := make([]*domain.Category, 0, len(m.Categories))
	for _, category := range m.Categories {
		if category.UserID == userID {
			result = append(result, category)
		}
	}

	return result, nil
}

// Delete implements the CategoryStore interface
func (m *MockCategoryStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, id)
	}

	for i, category := range m.Categories {
		if category.ID == id && category.UserID == userID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}

	return store.ErrCategoryNotFound
}
