package agreement

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for agreement persistence operations
type Repository interface {
	// Insert creates a new agreement row
	Insert(ctx context.Context, a *Agreement) error

	// Update updates an existing agreement row
	Update(ctx context.Context, a *Agreement) error

	// Delete deletes an agreement by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves an agreement by ID, returning nil when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Agreement, error)

	// CountRevisions counts the rows sharing a year+code lineage
	CountRevisions(ctx context.Context, year int, code string) (int64, error)

	// ListRevisions retrieves a lineage ordered by revision ascending
	ListRevisions(ctx context.Context, year int, code string) ([]*Agreement, error)

	// CountByPlanID counts agreements referencing a plan as provider or local
	CountByPlanID(ctx context.Context, planID uuid.UUID) (int64, error)

	// List retrieves all agreements ordered by year, code, revision
	List(ctx context.Context) ([]*Agreement, error)
}
