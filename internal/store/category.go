package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskify/taskify-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
// All operations are scoped to the owning user.
type CategoryStore interface {
	// Create saves a new category to the store.
	// Returns validation errors from the domain Category if data is invalid.
	Create(ctx context.Context, category *domain.Category) error

	// ListByUser returns all categories owned by the given user.
	// Ordering is unspecified; the result set is capped internally.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)

	// Delete removes the category with the given ID if it is owned by userID.
	// Returns ErrCategoryNotFound otherwise. Tasks referencing the category
	// keep their now-dangling reference.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
