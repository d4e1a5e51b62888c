package job

import (
	"context"

	"github.com/shaheed425/jobsy/pkg/kernel"
)

type Repository interface {
	// Create persists a new job, assigning the next sequential ID
	Create(ctx context.Context, job *Job) error

	// Update persists an existing job
	Update(ctx context.Context, id kernel.JobID, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// List retrieves all jobs
	List(ctx context.Context) ([]*Job, error)

	// ListByEmployer retrieves jobs posted by a specific employer
	ListByEmployer(ctx context.Context, employerID kernel.EmployerID) ([]*Job, error)

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)
}
