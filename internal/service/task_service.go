package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/platform/logger"
	"github.com/taskify/taskify-api/internal/redact"
	"github.com/taskify/taskify-api/internal/store"
)

// TaskUpdate carries a partial task update. Nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	CategoryID  *uuid.UUID
	DueDate     *time.Time
}

// TaskService coordinates the task lifecycle and its notification side
// effects: a due_reminder when a task is created with a due date, and a
// task_completed on the first transition into completed status.
type TaskService struct {
	taskStore         store.TaskStore
	notificationStore store.NotificationStore
	timeFunc          func() time.Time // Injectable for testing
	logger            *slog.Logger
}

// NewTaskService creates a new TaskService with the given dependencies.
// If logger is nil, a default logger will be used.
func NewTaskService(
	taskStore store.TaskStore,
	notificationStore store.NotificationStore,
	logger *slog.Logger,
) *TaskService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskService{
		taskStore:         taskStore,
		notificationStore: notificationStore,
		timeFunc:          time.Now,
		logger:            logger.With(slog.String("component", "task_service")),
	}
}

// Create builds and persists a new task for the given user. When the task
// carries a due date, a due_reminder notification is written immediately as
// a creation-time side effect, not a deferred timer.
func (s *TaskService) Create(
	ctx context.Context,
	userID uuid.UUID,
	title, description string,
	priority domain.TaskPriority,
	categoryID *uuid.UUID,
	dueDate *time.Time,
) (*domain.Task, error) {
	task, err := domain.NewTask(userID, title, description, priority, categoryID, dueDate)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, err
	}

	if task.DueDate != nil {
		s.notify(ctx, userID, domain.NotificationTypeDueReminder,
			"Task Due Soon",
			fmt.Sprintf("Task '%s' is due on %s", task.Title, task.DueDate.Format("2006-01-02")),
			task.ID)
	}

	return task, nil
}

// Get returns the user's task with the given ID.
func (s *TaskService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	return s.taskStore.GetForUser(ctx, userID, id)
}

// List returns the user's tasks matching the filter, newest first.
func (s *TaskService) List(
	ctx context.Context,
	userID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	return s.taskStore.ListByUser(ctx, userID, filter)
}

// Update applies a partial update to the user's task with the given ID.
// Only the supplied fields change; updated_at always refreshes. The first
// transition into completed status stamps completed_at and emits a
// task_completed notification. Re-entering completed status after leaving it
// does not re-stamp.
func (s *TaskService) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update TaskUpdate,
) (*domain.Task, error) {
	task, err := s.taskStore.GetForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	completing := update.Status != nil &&
		*update.Status == domain.TaskStatusCompleted &&
		task.Status != domain.TaskStatusCompleted

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.CategoryID != nil {
		task.CategoryID = update.CategoryID
	}
	if update.DueDate != nil {
		task.DueDate = update.DueDate
	}

	now := s.timeFunc().UTC()
	task.UpdatedAt = now
	if completing && task.CompletedAt == nil {
		task.CompletedAt = &now
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, err
	}

	if completing {
		s.notify(ctx, userID, domain.NotificationTypeTaskCompleted,
			"Task Completed! 🎉",
			fmt.Sprintf("Great job completing '%s'!", task.Title),
			task.ID)
	}

	return task, nil
}

// Delete removes the user's task with the given ID.
func (s *TaskService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.taskStore.Delete(ctx, userID, id)
}

// notify writes a notification as a fire-and-forget side effect. A failed
// notification write must never fail the task operation that triggered it,
// so errors are logged and swallowed.
func (s *TaskService) notify(
	ctx context.Context,
	userID uuid.UUID,
	notifType domain.NotificationType,
	title, message string,
	taskID uuid.UUID,
) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	notification, err := domain.NewNotification(userID, notifType, title, message, &taskID)
	if err != nil {
		log.Error("failed to build notification",
			slog.String("error", err.Error()),
			slog.String("type", string(notifType)),
			slog.String("task_id", taskID.String()))
		return
	}

	if err := s.notificationStore.Create(ctx, notification); err != nil {
		log.Error("failed to write notification",
			slog.String("error", redact.Error(err)),
			slog.String("type", string(notifType)),
			slog.String("task_id", taskID.String()))
	}
}
