package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskify/taskify-api/internal/domain"
)

// NotificationStore defines the interface for notification data persistence.
// All operations are scoped to the owning user.
type NotificationStore interface {
	// Create saves a new notification to the store.
	// Returns validation errors from the domain Notification if data is invalid.
	Create(ctx context.Context, notification *domain.Notification) error

	// ListByUser returns the user's most recent notifications, newest first.
	// The result set is capped internally (50 in the current implementation).
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)

	// MarkRead flips the read flag on the notification with the given ID if
	// it is owned by userID. A missing or foreign ID is a silent no-op, not
	// an error.
	MarkRead(ctx context.Context, userID, id uuid.UUID) error

	// Delete removes the notification with the given ID if it is owned by
	// userID. Returns ErrNotificationNotFound otherwise.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
