package service

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for service persistence operations.
// Implementations persist the service row together with its system slices.
type Repository interface {
	// Insert creates a new service with its system slices
	Insert(ctx context.Context, s *Service) error

	// Update updates a service and replaces its system slices
	Update(ctx context.Context, s *Service) error

	// Delete deletes a service and its system slices by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a service with its system slices, returning nil when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)

	// FindManyByAgreementID retrieves all services under an agreement
	FindManyByAgreementID(ctx context.Context, agreementID uuid.UUID) ([]*Service, error)

	// CountNotValidatedByAgreementID counts services whose status is neither
	// approved nor rejected
	CountNotValidatedByAgreementID(ctx context.Context, agreementID uuid.UUID) (int64, error)
}
