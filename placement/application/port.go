package application

import (
	"context"

	"github.com/shaheed425/jobsy/pkg/kernel"
)

type Repository interface {
	// Create persists a new application, assigning the next sequential ID
	Create(ctx context.Context, application *Application) error

	// Update persists an existing application
	Update(ctx context.Context, id kernel.ApplicationID, application *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// List retrieves all applications
	List(ctx context.Context) ([]*Application, error)

	// ListByStudent retrieves applications for a specific student
	ListByStudent(ctx context.Context, studentID kernel.StudentID) ([]*Application, error)

	// ListByJob retrieves applications for a specific job
	ListByJob(ctx context.Context, jobID kernel.JobID) ([]*Application, error)

	// ExistsByStudentAndJob checks for a prior application for the pair
	ExistsByStudentAndJob(ctx context.Context, studentID kernel.StudentID, jobID kernel.JobID) (bool, error)

	// CountByJob counts applications for a specific job
	CountByJob(ctx context.Context, jobID kernel.JobID) (int, error)
}
