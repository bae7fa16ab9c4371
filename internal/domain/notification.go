package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes the task lifecycle event that produced
// a notification.
type NotificationType string

// Possible notification type values
const (
	NotificationTypeDueReminder    NotificationType = "due_reminder"
	NotificationTypeTaskCompleted  NotificationType = "task_completed"
	NotificationTypeCategoryUpdate NotificationType = "category_update"
)

// Common validation errors for Notification
var (
	ErrEmptyNotificationID      = errors.New("notification ID cannot be empty")
	ErrEmptyNotificationUserID  = errors.New("notification user ID cannot be empty")
	ErrEmptyNotificationTitle   = errors.New("notification title cannot be empty")
	ErrEmptyNotificationMessage = errors.New("notification message cannot be empty")
)

// Notification is an informational record emitted synchronously by task
// lifecycle events. There is no delivery mechanism; clients poll the list
// endpoint. TaskID is a weak reference to the triggering task.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	TaskID    *uuid.UUID       `json:"task_id"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewNotification creates a new unread Notification for the given user.
// Returns an error if validation fails.
func NewNotification(
	userID uuid.UUID,
	notifType NotificationType,
	title, message string,
	taskID *uuid.UUID,
) (*Notification, error) {
	notification := &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		TaskID:    taskID,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := notification.Validate(); err != nil {
		return nil, err
	}

	return notification, nil
}

// Validate checks if the Notification has valid data.
func (n *Notification) Validate() error {
	if n.ID == uuid.Nil {
		return ErrEmptyNotificationID
	}

	if n.UserID == uuid.Nil {
		return ErrEmptyNotificationUserID
	}

	if !isValidNotificationType(n.Type) {
		return ErrInvalidNotificationType
	}

	if n.Title == "" {
		return ErrEmptyNotificationTitle
	}

	if n.Message == "" {
		return ErrEmptyNotificationMessage
	}

	return nil
}

func isValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationTypeDueReminder, NotificationTypeTaskCompleted, NotificationTypeCategoryUpdate:
		return true
	default:
		return false
	}
}
