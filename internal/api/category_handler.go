package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskify/taskify-api/internal/api/shared"
	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/store"
)

// CategoryHandler handles category-related API requests.
type CategoryHandler struct {
	categoryStore store.CategoryStore
	validator     *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(categoryStore store.CategoryStore) *CategoryHandler {
	return &CategoryHandler{
		categoryStore: categoryStore,
		validator:     validator.New(),
	}
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	category, err := domain.NewCategory(userID, req.Name, req.Color)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid category data: "+err.Error())
		return
	}

	if err := h.categoryStore.Create(r.Context(), category); err != nil {
		HandleAPIError(w, r, err, "Failed to create category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	categories, err := h.categoryStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// Delete handles DELETE /api/categories/{id}.
// Tasks referencing the category keep their dangling reference.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, categoryID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.categoryStore.Delete(r.Context(), userID, categoryID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Category deleted"})
}
