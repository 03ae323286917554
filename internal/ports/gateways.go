package ports

import (
	"context"

	"github.com/jsamuelsen11/catalog-admin/internal/domain/category"
)

// CategoryGateway defines the outbound port for category storage.
// Implemented by a persistence adapter; called by the application layer.
type CategoryGateway interface {
	// Create stores a new category and returns the stored entity.
	// Returns domain.ErrConflict if the ID is already taken.
	Create(ctx context.Context, c *category.Category) (*category.Category, error)

	// FindByID returns a single category by ID.
	// Returns domain.ErrNotFound if the category does not exist.
	FindByID(ctx context.Context, id category.ID) (*category.Category, error)

	// Update stores the current state of an existing category.
	// Returns domain.ErrNotFound if the category does not exist.
	Update(ctx context.Context, c *category.Category) (*category.Category, error)
}
