package student

import (
	"context"

	"github.com/shaheed425/jobsy/pkg/kernel"
)

type Repository interface {
	// Create persists a new student, assigning the next sequential ID
	// and stamping CreatedAt/UpdatedAt on the entity.
	Create(ctx context.Context, student *Student) error

	// Update persists an existing student, stamping UpdatedAt
	Update(ctx context.Context, id kernel.StudentID, student *Student) error

	// GetByID retrieves a student by ID
	GetByID(ctx context.Context, id kernel.StudentID) (*Student, error)

	// List retrieves all students
	List(ctx context.Context) ([]*Student, error)

	// Exists checks if a student exists by ID
	Exists(ctx context.Context, id kernel.StudentID) (bool, error)
}
