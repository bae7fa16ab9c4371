package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/platform/logger"
	"github.com/taskify/taskify-api/internal/store"
)

// notificationListCap bounds the notification listing to the 50 most
// recent records.
const notificationListCap = 50

// PostgresNotificationStore implements the store.NotificationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresNotificationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresNotificationStore creates a new PostgreSQL implementation of the
// NotificationStore interface. If logger is nil, a default logger will be used.
func NewPostgresNotificationStore(db store.DBTX, logger *slog.Logger) *PostgresNotificationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresNotificationStore{
		db:     db,
		logger: logger.With(slog.String("component", "notification_store")),
	}
}

// Ensure PostgresNotificationStore implements store.NotificationStore interface
var _ store.NotificationStore = (*PostgresNotificationStore)(nil)

// Create implements store.NotificationStore.Create
// Returns validation errors from the domain Notification if data is invalid.
func (s *PostgresNotificationStore) Create(
	ctx context.Context,
	notification *domain.Notification,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := notification.Validate(); err != nil {
		log.Warn("notification validation failed during create",
			slog.String("error", err.Error()),
			slog.String("notification_id", notification.ID.String()))
		return err
	}

	query := `
		INSERT INTO notifications (id, user_id, type, title, message, task_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		notification.ID,
		notification.UserID,
		notification.Type,
		notification.Title,
		notification.Message,
		notification.TaskID,
		notification.Read,
		notification.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create notification",
			slog.String("error", err.Error()),
			slog.String("notification_id", notification.ID.String()),
			slog.String("user_id", notification.UserID.String()))
		return mapError(err)
	}

	log.Debug("notification created",
		slog.String("notification_id", notification.ID.String()),
		slog.String("type", string(notification.Type)))
	return nil
}

// ListByUser implements store.NotificationStore.ListByUser
// Returns the user's 50 most recent notifications, newest first.
func (s *PostgresNotificationStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Notification, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, type, title, message, task_id, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, notificationListCap)
	if err != nil {
		log.Error("failed to query notifications",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	notifications := []*domain.Notification{}
	for rows.Next() {
		var notification domain.Notification
		var notifType string

		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notifType,
			&notification.Title,
			&notification.Message,
			&notification.TaskID,
			&notification.Read,
			&notification.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan notification row",
				slog.String("error", err.Error()))
			return nil, err
		}

		notification.Type = domain.NotificationType(notifType)
		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return notifications, nil
}

// MarkRead implements store.NotificationStore.MarkRead
// A missing or foreign ID is a silent no-op. This mirrors the delete
// asymmetry the API documents: mark-read never 404s, delete does.
func (s *PostgresNotificationStore) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND user_id = $2
	`

	if _, err := s.db.ExecContext(ctx, query, id, userID); err != nil {
		log.Error("failed to mark notification read",
			slog.String("error", err.Error()),
			slog.String("notification_id", id.String()))
		return mapError(err)
	}

	return nil
}

// Delete implements store.NotificationStore.Delete
// Returns store.ErrNotificationNotFound if the notification does not exist
// or is owned by a different user.
func (s *PostgresNotificationStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM notifications
		WHERE id = $1 AND user_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		log.Error("failed to delete notification",
			slog.String("error", err.Error()),
			slog.String("notification_id", id.String()))
		return mapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("notification_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("notification not found for delete",
			slog.String("notification_id", id.String()))
		return store.ErrNotificationNotFound
	}

	return nil
}
