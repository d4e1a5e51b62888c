package employer

import (
	"context"

	"github.com/shaheed425/jobsy/pkg/kernel"
)

type Repository interface {
	// Create persists a new employer, assigning the next sequential ID
	Create(ctx context.Context, employer *Employer) error

	// Update persists an existing employer
	Update(ctx context.Context, id kernel.EmployerID, employer *Employer) error

	// GetByID retrieves an employer by ID
	GetByID(ctx context.Context, id kernel.EmployerID) (*Employer, error)

	// List retrieves all employers
	List(ctx context.Context) ([]*Employer, error)

	// Exists checks if an employer exists by ID
	Exists(ctx context.Context, id kernel.EmployerID) (bool, error)
}
