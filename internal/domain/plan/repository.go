package plan

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for plan persistence operations
type Repository interface {
	// Insert creates a new plan
	Insert(ctx context.Context, p *Plan) error

	// Update updates an existing plan
	Update(ctx context.Context, p *Plan) error

	// Delete deletes a plan by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a plan by ID, returning nil when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Plan, error)

	// List retrieves all plans ordered by plan date descending
	List(ctx context.Context) ([]*Plan, error)
}
