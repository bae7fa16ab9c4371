package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskify/taskify-api/internal/api/shared"
	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/mocks"
)

func TestCategoryCreate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantColor  string
	}{
		{
			name:       "with explicit color",
			payload:    map[string]interface{}{"name": "Work", "color": "#FF0000"},
			wantStatus: http.StatusOK,
			wantColor:  "#FF0000",
		},
		{
			name:       "color defaults when omitted",
			payload:    map[string]interface{}{"name": "Personal"},
			wantStatus: http.StatusOK,
			wantColor:  domain.DefaultCategoryColor,
		},
		{
			name:       "missing name",
			payload:    map[string]interface{}{"color": "#FF0000"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed color",
			payload:    map[string]interface{}{"name": "Work", "color": "red"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := NewCategoryHandler(mocks.NewMockCategoryStore())

			recorder := httptest.NewRecorder()
			handler.Create(recorder, newAuthedRequest("POST", "/api/categories", jsonBody(t, tt.payload), userID))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var category domain.Category
				decodeResponse(t, recorder, &category)
				assert.Equal(t, userID, category.UserID)
				assert.Equal(t, tt.payload["name"], category.Name)
				assert.Equal(t, tt.wantColor, category.Color)
			}
		})
	}
}

func TestCategoryCreateUnauthenticated(t *testing.T) {
	t.Parallel()

	handler := NewCategoryHandler(mocks.NewMockCategoryStore())

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/categories", jsonBody(t, map[string]interface{}{"name": "Work"}))
	handler.Create(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCategoryList(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	otherID := uuid.New()

	categoryStore := mocks.NewMockCategoryStore()
	mine, err := domain.NewCategory(userID, "Mine", "")
	require.NoError(t, err)
	theirs, err := domain.NewCategory(otherID, "Theirs", "")
	require.NoError(t, err)
	categoryStore.Categories = []*domain.Category{mine, theirs}

	handler := NewCategoryHandler(categoryStore)

	recorder := httptest.NewRecorder()
	handler.List(recorder, newAuthedRequest("GET", "/api/categories", nil, userID))

	require.Equal(t, http.StatusOK, recorder.Code)
	var categories []*domain.Category
	decodeResponse(t, recorder, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, "Mine", categories[0].Name)
}

func TestCategoryDelete(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	newHandlerWithCategory := func(t *testing.T) (*CategoryHandler, *domain.Category) {
		t.Helper()
		categoryStore := mocks.NewMockCategoryStore()
		category, err := domain.NewCategory(userID, "Disposable", "")
		require.NoError(t, err)
		categoryStore.Categories = []*domain.Category{category}
		return NewCategoryHandler(categoryStore), category
	}

	t.Run("deletes owned category", func(t *testing.T) {
		t.Parallel()
		handler, category := newHandlerWithCategory(t)

		req := newAuthedRequest("DELETE", "/api/categories/"+category.ID.String(), nil, userID)
		recorder := httptest.NewRecorder()
		handler.Delete(recorder, withPathParam(req, "id", category.ID.String()))

		require.Equal(t, http.StatusOK, recorder.Code)
		var msg shared.MessageResponse
		decodeResponse(t, recorder, &msg)
		assert.Equal(t, "Category deleted", msg.Message)
	})

	t.Run("unknown category yields 404", func(t *testing.T) {
		t.Parallel()
		handler, _ := newHandlerWithCategory(t)

		unknown := uuid.New().String()
		req := newAuthedRequest("DELETE", "/api/categories/"+unknown, nil, userID)
		recorder := httptest.NewRecorder()
		handler.Delete(recorder, withPathParam(req, "id", unknown))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("foreign category yields 404", func(t *testing.T) {
		t.Parallel()
		handler, category := newHandlerWithCategory(t)

		req := newAuthedRequest("DELETE", "/api/categories/"+category.ID.String(), nil, uuid.New())
		recorder := httptest.NewRecorder()
		handler.Delete(recorder, withPathParam(req, "id", category.ID.String()))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("malformed ID yields 400", func(t *testing.T) {
		t.Parallel()
		handler, _ := newHandlerWithCategory(t)

		req := newAuthedRequest("DELETE", "/api/categories/not-a-uuid", nil, userID)
		recorder := httptest.NewRecorder()
		handler.Delete(recorder, withPathParam(req, "id", "not-a-uuid"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
