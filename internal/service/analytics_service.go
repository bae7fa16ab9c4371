package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/store"
)

// DailyCompletion pairs a calendar day with the number of tasks completed
// during it.
type DailyCompletion struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

// CategoryStat summarizes task counts for one category.
type CategoryStat struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// Analytics is the aggregate computed over a user's full task and category
// sets. Everything is derived synchronously per request; nothing is cached.
type Analytics struct {
	TotalTasks           int                         `json:"total_tasks"`
	CompletedTasks       int                         `json:"completed_tasks"`
	InProgressTasks      int                         `json:"in_progress_tasks"`
	TodoTasks            int                         `json:"todo_tasks"`
	CompletionRate       float64                     `json:"completion_rate"`
	ProductivityScore    int                         `json:"productivity_score"`
	DailyCompletions     []DailyCompletion           `json:"daily_completions"`
	CategoryStats        []CategoryStat              `json:"category_stats"`
	PriorityDistribution map[domain.TaskPriority]int `json:"priority_distribution"`
}

// dailyWindow is the number of calendar days covered by DailyCompletions.
const dailyWindow = 7

// AnalyticsService computes on-demand summary statistics over a user's
// tasks and categories.
type AnalyticsService struct {
	taskStore     store.TaskStore
	categoryStore store.CategoryStore
	timeFunc      func() time.Time // Injectable for testing
	logger        *slog.Logger
}

// NewAnalyticsService creates a new AnalyticsService with the given
// dependencies. If logger is nil, a default logger will be used.
func NewAnalyticsService(
	taskStore store.TaskStore,
	categoryStore store.CategoryStore,
	logger *slog.Logger,
) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AnalyticsService{
		taskStore:     taskStore,
		categoryStore: categoryStore,
		timeFunc:      time.Now,
		logger:        logger.With(slog.String("component", "analytics_service")),
	}
}

// ForUser loads the user's full task and category sets and aggregates them.
// The input is bounded by the store's result caps, so a single pass over
// in-memory slices is sufficient.
func (s *AnalyticsService) ForUser(ctx context.Context, userID uuid.UUID) (*Analytics, error) {
	tasks, err := s.taskStore.ListByUser(ctx, userID, store.TaskFilter{})
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return Aggregate(tasks, categories, s.timeFunc().UTC()), nil
}

// Aggregate computes the analytics object from the given task and category
// sets, using now as the reference point for the daily completion window.
// It is a pure function so the formulas can be tested without a database.
func Aggregate(tasks []*domain.Task, categories []*domain.Category, now time.Time) *Analytics {
	analytics := &Analytics{
		TotalTasks:           len(tasks),
		DailyCompletions:     make([]DailyCompletion, 0, dailyWindow),
		CategoryStats:        make([]CategoryStat, 0, len(categories)),
		PriorityDistribution: make(map[domain.TaskPriority]int, len(domain.TaskPriorities)),
	}

	// All four priority levels are always present, zero-filled.
	for _, priority := range domain.TaskPriorities {
		analytics.PriorityDistribution[priority] = 0
	}

	for _, task := range tasks {
		switch task.Status {
		case domain.TaskStatusCompleted:
			analytics.CompletedTasks++
		case domain.TaskStatusInProgress:
			analytics.InProgressTasks++
		case domain.TaskStatusTodo:
			analytics.TodoTasks++
		}
		analytics.PriorityDistribution[task.Priority]++
	}

	if analytics.TotalTasks > 0 {
		analytics.CompletionRate = float64(analytics.CompletedTasks) / float64(analytics.TotalTasks) * 100
	}

	// The score is an ad hoc user-visible composite; the formula is part of
	// the API contract and must not be "improved".
	score := int(analytics.CompletionRate + float64(analytics.CompletedTasks*2))
	if score > 100 {
		score = 100
	}
	analytics.ProductivityScore = score

	// Seven calendar days ending today, most recent first. Day boundaries
	// are midnight-to-midnight in UTC.
	for i := 0; i < dailyWindow; i++ {
		day := now.AddDate(0, 0, -i)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		dayEnd := dayStart.AddDate(0, 0, 1)

		completed := 0
		for _, task := range tasks {
			if task.CompletedAt == nil {
				continue
			}
			if !task.CompletedAt.Before(dayStart) && task.CompletedAt.Before(dayEnd) {
				completed++
			}
		}

		analytics.DailyCompletions = append(analytics.DailyCompletions, DailyCompletion{
			Date:      dayStart.Format("2006-01-02"),
			Completed: completed,
		})
	}

	for _, category := range categories {
		stat := CategoryStat{
			Name:  category.Name,
			Color: category.Color,
		}
		for _, task := range tasks {
			if task.CategoryID == nil || *task.CategoryID != category.ID {
				continue
			}
			stat.Total++
			if task.Status == domain.TaskStatusCompleted {
				stat.Completed++
			}
		}
		analytics.CategoryStats = append(analytics.CategoryStats, stat)
	}

	return analytics
}
