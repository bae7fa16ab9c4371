package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewNotification(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	notification, err := NewNotification(
		userID,
		NotificationTypeDueReminder,
		"Task Due Soon",
		"Task 'Write report' is due on 2025-06-01",
		&taskID,
	)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if notification.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if notification.Read {
		t.Error("Expected new notification to be unread")
	}

	if notification.TaskID == nil || *notification.TaskID != taskID {
		t.Errorf("Expected task ID %v, got %v", taskID, notification.TaskID)
	}

	if notification.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}
}

func TestNewNotificationValidation(t *testing.T) {
	userID := uuid.New()

	if _, err := NewNotification(uuid.Nil, NotificationTypeTaskCompleted, "t", "m", nil); err != ErrEmptyNotificationUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyNotificationUserID, err)
	}

	if _, err := NewNotification(userID, "broadcast", "t", "m", nil); err != ErrInvalidNotificationType {
		t.Errorf("Expected error %v, got %v", ErrInvalidNotificationType, err)
	}

	if _, err := NewNotification(userID, NotificationTypeTaskCompleted, "", "m", nil); err != ErrEmptyNotificationTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyNotificationTitle, err)
	}

	if _, err := NewNotification(userID, NotificationTypeTaskCompleted, "t", "", nil); err != ErrEmptyNotificationMessage {
		t.Errorf("Expected error %v, got %v", ErrEmptyNotificationMessage, err)
	}
}
