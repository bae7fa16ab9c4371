package api

import (
	"net/http"

	"github.com/taskify/taskify-api/internal/api/shared"
	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/store"
)

// NotificationHandler handles notification-related API requests.
type NotificationHandler struct {
	notificationStore store.NotificationStore
}

// NewNotificationHandler creates a new NotificationHandler with the given
// dependencies.
func NewNotificationHandler(notificationStore store.NotificationStore) *NotificationHandler {
	return &NotificationHandler{notificationStore: notificationStore}
}

// List handles GET /api/notifications, returning the user's notifications
// newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	notifications, err := h.notificationStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list notifications")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, notifications)
}

// MarkRead handles PUT /api/notifications/{id}/read. Marking a notification
// that does not exist or belongs to another user succeeds silently.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, notificationID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.notificationStore.MarkRead(r.Context(), userID, notificationID); err != nil {
		HandleAPIError(w, r, err, "Failed to mark notification as read")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Notification marked as read"})
}

// Delete handles DELETE /api/notifications/{id}. Unlike MarkRead, deleting a
// missing notification reports not found.
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, notificationID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.notificationStore.Delete(r.Context(), userID, notificationID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Notification deleted"})
}
