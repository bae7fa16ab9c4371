package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#8B5CF6"

// Common validation errors for Category
var (
	ErrEmptyCategoryID     = errors.New("category ID cannot be empty")
	ErrEmptyCategoryUserID = errors.New("category user ID cannot be empty")
	ErrEmptyCategoryName   = errors.New("category name cannot be empty")
)

// Category is a named, colored tag a user attaches to tasks.
// Categories are owned by exactly one user and are deleted independently
// of the tasks that reference them.
type Category struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategory creates a new Category owned by the given user.
// An empty color falls back to DefaultCategoryColor.
// Returns an error if validation fails.
func NewCategory(userID uuid.UUID, name, color string) (*Category, error) {
	if color == "" {
		color = DefaultCategoryColor
	}

	category := &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCategoryID
	}

	if c.UserID == uuid.Nil {
		return ErrEmptyCategoryUserID
	}

	if c.Name == "" {
		return ErrEmptyCategoryName
	}

	return nil
}
