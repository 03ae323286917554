package ports

import (
	"context"

	"github.com/jsamuelsen11/catalog-admin/internal/domain/category"
)

// CategoryService defines the service port for category use cases.
// Implemented by the application layer; called by inbound adapters.
type CategoryService interface {
	// Create builds, validates and stores a new category.
	// Returns a *validation.DomainError (domain.ErrValidation) if the
	// category fails validation; the gateway is not called in that case.
	Create(ctx context.Context, cmd CreateCategoryCommand) (*category.Category, error)

	// Get returns a single category by ID.
	// Returns domain.ErrNotFound if the category does not exist.
	Get(ctx context.Context, id category.ID) (*category.Category, error)

	// Update replaces name, description and active flag of an existing
	// category, validates the result and stores it.
	// Returns domain.ErrNotFound or domain.ErrValidation.
	Update(ctx context.Context, id category.ID, cmd UpdateCategoryCommand) (*category.Category, error)

	// Activate reactivates a soft-deleted category.
	// Returns domain.ErrNotFound if the category does not exist.
	Activate(ctx context.Context, id category.ID) (*category.Category, error)

	// Deactivate soft-deletes a category.
	// Returns domain.ErrNotFound if the category does not exist.
	Deactivate(ctx context.Context, id category.ID) (*category.Category, error)
}

// CreateCategoryCommand carries the input of CategoryService.Create.
// A nil Name is reported as a validation failure, not a panic.
type CreateCategoryCommand struct {
	Name        *string
	Description string
	IsActive    bool
}

// UpdateCategoryCommand carries the input of CategoryService.Update.
type UpdateCategoryCommand struct {
	Name        *string
	Description string
	IsActive    bool
}
