package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskify/taskify-api/internal/api/shared"
	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/mocks"
	"github.com/taskify/taskify-api/internal/service"
)

type taskHandlerFixture struct {
	handler           *TaskHandler
	taskStore         *mocks.MockTaskStore
	notificationStore *mocks.MockNotificationStore
}

func newTaskHandlerFixture() *taskHandlerFixture {
	taskStore := mocks.NewMockTaskStore()
	notificationStore := mocks.NewMockNotificationStore()
	return &taskHandlerFixture{
		handler:           NewTaskHandler(service.NewTaskService(taskStore, notificationStore, nil)),
		taskStore:         taskStore,
		notificationStore: notificationStore,
	}
}

func TestTaskCreate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("minimal task", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture()

		recorder := httptest.NewRecorder()
		f.handler.Create(recorder, newAuthedRequest("POST", "/api/tasks", jsonBody(t, map[string]interface{}{
			"title": "Write report",
		}), userID))

		require.Equal(t, http.StatusOK, recorder.Code)
		var task domain.Task
		decodeResponse(t, recorder, &task)
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, domain.TaskStatusTodo, task.Status)
		assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
		assert.Nil(t, task.CompletedAt)
		assert.Empty(t, f.notificationStore.Notifications)
	})

	t.Run("due date produces reminder", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture()

		due := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
		recorder := httptest.NewRecorder()
		f.handler.Create(recorder, newAuthedRequest("POST", "/api/tasks", jsonBody(t, map[string]interface{}{
			"title":    "Write report",
			"priority": "urgent",
			"due_date": due,
		}), userID))

		require.Equal(t, http.StatusOK, recorder.Code)
		require.Len(t, f.notificationStore.Notifications, 1)
		assert.Equal(t, domain.NotificationTypeDueReminder, f.notificationStore.Notifications[0].Type)
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture()

		recorder := httptest.NewRecorder()
		f.handler.Create(recorder, newAuthedRequest("POST", "/api/tasks", jsonBody(t, map[string]interface{}{
			"description": "no title",
		}), userID))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("invalid priority", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture()

		recorder := httptest.NewRecorder()
		f.handler.Create(recorder, newAuthedRequest("POST", "/api/tasks", jsonBody(t, map[string]interface{}{
			"title":    "Write report",
			"priority": "critical",
		}), userID))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestTaskList(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	categoryID := uuid.New()

	seed := func(t *testing.T, f *taskHandlerFixture) {
		t.Helper()
		add := func(title string, status domain.TaskStatus, priority domain.TaskPriority, catID *uuid.UUID) {
			task, err := domain.NewTask(userID, title, "", priority, catID, nil)
			require.NoError(t, err)
			task.Status = status
			f.taskStore.Tasks = append(f.taskStore.Tasks, task)
		}
		add("todo-high", domain.TaskStatusTodo, domain.TaskPriorityHigh, nil)
		add("done-high", domain.TaskStatusCompleted, domain.TaskPriorityHigh, &categoryID)
		add("done-low", domain.TaskStatusCompleted, domain.TaskPriorityLow, nil)

		other, err := domain.NewTask(uuid.New(), "foreign", "", domain.TaskPriorityHigh, nil, nil)
		require.NoError(t, err)
		f.taskStore.Tasks = append(f.taskStore.Tasks, other)
	}

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantTitles []string
	}{
		{
			name:       "no filter returns all owned tasks",
			query:      "",
			wantStatus: http.StatusOK,
			wantTitles: []string{"todo-high", "done-high", "done-low"},
		},
		{
			name:       "status filter",
			query:      "?status=completed",
			wantStatus: http.StatusOK,
			wantTitles: []string{"done-high", "done-low"},
		},
		{
			name:       "status and priority combine conjunctively",
			query:      "?status=completed&priority=high",
			wantStatus: http.StatusOK,
			wantTitles: []string{"done-high"},
		},
		{
			name:       "category filter",
			query:      "?category_id=" + categoryID.String(),
			wantStatus: http.StatusOK,
			wantTitles: []string{"done-high"},
		},
		{
			name:       "invalid status value",
			query:      "?status=done",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid priority value",
			query:      "?priority=critical",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed category ID",
			query:      "?category_id=not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newTaskHandlerFixture()
			seed(t, f)

			recorder := httptest.NewRecorder()
			f.handler.List(recorder, newAuthedRequest("GET", "/api/tasks"+tt.query, nil, userID))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var tasks []*domain.Task
				decodeResponse(t, recorder, &tasks)
				titles := make([]string, 0, len(tasks))
				for _, task := range tasks {
					titles = append(titles, task.Title)
				}
				assert.ElementsMatch(t, tt.wantTitles, titles)
			}
		})
	}
}

func TestTaskUpdate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	newFixtureWithTask := func(t *testing.T) (*taskHandlerFixture, *domain.Task) {
		t.Helper()
		f := newTaskHandlerFixture()
		task, err := domain.NewTask(userID, "Write report", "", domain.TaskPriorityMedium, nil, nil)
		require.NoError(t, err)
		f.taskStore.Tasks = append(f.taskStore.Tasks, task)
		return f, task
	}

	t.Run("partial update", func(t *testing.T) {
		t.Parallel()
		f, task := newFixtureWithTask(t)

		req := newAuthedRequest("PUT", "/api/tasks/"+task.ID.String(), jsonBody(t, map[string]interface{}{
			"title": "Write the report",
		}), userID)
		recorder := httptest.NewRecorder()
		f.handler.Update(recorder, withPathParam(req, "id", task.ID.String()))

		require.Equal(t, http.StatusOK, recorder.Code)
		var updated domain.Task
		decodeResponse(t, recorder, &updated)
		assert.Equal(t, "Write the report", updated.Title)
		assert.Equal(t, domain.TaskStatusTodo, updated.Status)
	})

	t.Run("completing emits notification", func(t *testing.T) {
		t.Parallel()
		f, task := newFixtureWithTask(t)

		req := newAuthedRequest("PUT", "/api/tasks/"+task.ID.String(), jsonBody(t, map[string]interface{}{
			"status": "completed",
		}), userID)
		recorder := httptest.NewRecorder()
		f.handler.Update(recorder, withPathParam(req, "id", task.ID.String()))

		require.Equal(t, http.StatusOK, recorder.Code)
		var updated domain.Task
		decodeResponse(t, recorder, &updated)
		require.NotNil(t, updated.CompletedAt)
		require.Len(t, f.notificationStore.Notifications, 1)
		assert.Equal(t, domain.NotificationTypeTaskCompleted, f.notificationStore.Notifications[0].Type)
	})

	t.Run("invalid status value", func(t *testing.T) {
		t.Parallel()
		f, task := newFixtureWithTask(t)

		req := newAuthedRequest("PUT", "/api/tasks/"+task.ID.String(), jsonBody(t, map[string]interface{}{
			"status": "paused",
		}), userID)
		recorder := httptest.NewRecorder()
		f.handler.Update(recorder, withPathParam(req, "id", task.ID.String()))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown task yields 404", func(t *testing.T) {
		t.Parallel()
		f, _ := newFixtureWithTask(t)

		unknown := uuid.New().String()
		req := newAuthedRequest("PUT", "/api/tasks/"+unknown, jsonBody(t, map[string]interface{}{
			"title": "whatever",
		}), userID)
		recorder := httptest.NewRecorder()
		f.handler.Update(recorder, withPathParam(req, "id", unknown))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("foreign task yields 404", func(t *testing.T) {
		t.Parallel()
		f, task := newFixtureWithTask(t)

		req := newAuthedRequest("PUT", "/api/tasks/"+task.ID.String(), jsonBody(t, map[string]interface{}{
			"title": "hijacked",
		}), uuid.New())
		recorder := httptest.NewRecorder()
		f.handler.Update(recorder, withPathParam(req, "id", task.ID.String()))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestTaskDelete(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	f := newTaskHandlerFixture()
	task, err := domain.NewTask(userID, "Disposable", "", domain.TaskPriorityLow, nil, nil)
	require.NoError(t, err)
	f.taskStore.Tasks = append(f.taskStore.Tasks, task)

	req := newAuthedRequest("DELETE", "/api/tasks/"+task.ID.String(), nil, userID)
	recorder := httptest.NewRecorder()
	f.handler.Delete(recorder, withPathParam(req, "id", task.ID.String()))

	require.Equal(t, http.StatusOK, recorder.Code)
	var msg shared.MessageResponse
	decodeResponse(t, recorder, &msg)
	assert.Equal(t, "Task deleted", msg.Message)

	// Second delete reports not found
	recorder = httptest.NewRecorder()
	req = newAuthedRequest("DELETE", "/api/tasks/"+task.ID.String(), nil, userID)
	f.handler.Delete(recorder, withPathParam(req, "id", task.ID.String()))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
