package api

import (
	"net/http"

	"github.com/taskify/taskify-api/internal/api/shared"
	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/service"
)

// AnalyticsHandler serves the aggregated productivity report.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler with the given
// dependencies.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Get handles GET /api/analytics.
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	analytics, err := h.analyticsService.ForUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute analytics")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, analytics)
}
