package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/store"
)

// MockNotificationStore implements store.NotificationStore for testing
type MockNotificationStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, notification *domain.Notification) error
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)
	MarkReadFn   func(ctx context.Context, userID, id uuid.UUID) error
	DeleteFn     func(ctx context.Context, userID, id uuid.UUID) error

	// Data for default implementation
	Notifications []*domain.Notification
	CreateError   error
}

// NewMockNotificationStore creates a new mock store with initialized defaults
func NewMockNotificationStore() *MockNotificationStore {
	return &MockNotificationStore{}
}

// Create implements the NotificationStore interface
func (m *MockNotificationStore) Create(
	ctx context.Context,
	notification *domain.Notification,
) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, notification)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Notifications = append(m.Notifications, notification)
	return nil
}

// ListByUser implements the NotificationStore interface
func (m *MockNotificationStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Notification, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	result := make([]*domain.Notification, 0, len(m.Notifications))
	for _, notification := range m.Notifications {
		if notification.UserID == userID {
			result = append(result, notification)
		}
	}

	return result, nil
}

// MarkRead implements the NotificationStore interface. Like the real store,
// a missing or foreign ID is a silent no-op.
func (m *MockNotificationStore) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, userID, id)
	}

	for _, notification := range m.Notifications {
		if notification.ID == id && notification.UserID == userID {
			notification.Read = true
			return nil
		}
	}

	return nil
}

// Delete implements the NotificationStore interface
func (m *MockNotificationStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, id)
	}

	for i, notification := range m.Notifications {
		if notification.ID == id && notification.UserID == userID {
			m.Notifications = append(m.Notifications[:i], m.Notifications[i+1:]...)
			return nil
		}
	}

	return store.ErrNotificationNotFound
}
