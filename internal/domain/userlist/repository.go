package userlist

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for user list persistence operations.
// A roster is saved and replaced wholesale; items are never patched in place.
type Repository interface {
	// Save persists the roster, replacing any existing one for the service
	Save(ctx context.Context, ul *UserList) error

	// DeleteByServiceID deletes the roster attached to a service. It returns
	// the deleted list's ID, or uuid.Nil when no roster existed.
	DeleteByServiceID(ctx context.Context, serviceID uuid.UUID) (uuid.UUID, error)

	// FindByServiceID retrieves the roster for a service, returning nil when absent
	FindByServiceID(ctx context.Context, serviceID uuid.UUID) (*UserList, error)
}
