package studentinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/student"
)

// PostgresStudentRepository implements student.Repository using PostgreSQL
type PostgresStudentRepository struct {
	db *sqlx.DB
}

// NewPostgresStudentRepository creates a new PostgreSQL student repository
func NewPostgresStudentRepository(db *sqlx.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type studentModel struct {
	ID             int64           `db:"id"`
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	Phone          string          `db:"phone"`
	StudentNumber  string          `db:"student_number"`
	Department     string          `db:"department"`
	Year           int             `db:"year"`
	CGPA           float64         `db:"cgpa"`
	IsEligible     bool            `db:"is_eligible"`
	Skills         json.RawMessage `db:"skills"`
	Certifications json.RawMessage `db:"certifications"`
	AppliedJobs    json.RawMessage `db:"applied_jobs"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *studentModel) toEntity() (*student.Student, error) {
	var skills []string
	if len(m.Skills) > 0 {
		if err := json.Unmarshal(m.Skills, &skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
		}
	}

	var certifications []string
	if len(m.Certifications) > 0 {
		if err := json.Unmarshal(m.Certifications, &certifications); err != nil {
			return nil, fmt.Errorf("failed to unmarshal certifications: %w", err)
		}
	}

	var appliedJobs []kernel.JobID
	if len(m.AppliedJobs) > 0 {
		if err := json.Unmarshal(m.AppliedJobs, &appliedJobs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal applied jobs: %w", err)
		}
	}

	return &student.Student{
		ID:             kernel.NewStudentID(m.ID),
		Name:           m.Name,
		Email:          kernel.Email(m.Email),
		Phone:          kernel.Phone(m.Phone),
		StudentNumber:  m.StudentNumber,
		Department:     kernel.Department(m.Department),
		Year:           m.Year,
		CGPA:           m.CGPA,
		IsEligible:     m.IsEligible,
		Skills:         skills,
		Certifications: certifications,
		AppliedJobs:    appliedJobs,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(s *student.Student) (*studentModel, error) {
	skills, err := json.Marshal(s.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	certifications, err := json.Marshal(s.Certifications)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal certifications: %w", err)
	}

	appliedJobs, err := json.Marshal(s.AppliedJobs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal applied jobs: %w", err)
	}

	return &studentModel{
		ID:             s.ID.Int64(),
		Name:           s.Name,
		Email:          string(s.Email),
		Phone:          string(s.Phone),
		StudentNumber:  s.StudentNumber,
		Department:     string(s.Department),
		Year:           s.Year,
		CGPA:           s.CGPA,
		IsEligible:     s.IsEligible,
		Skills:         skills,
		Certifications: certifications,
		AppliedJobs:    appliedJobs,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new student, assigning the next sequential ID
func (r *PostgresStudentRepository) Create(ctx context.Context, studentEntity *student.Student) error {
	now := time.Now()
	studentEntity.CreatedAt = now
	studentEntity.UpdatedAt = now

	model, err := fromEntity(studentEntity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO students (
			name, email, phone, student_number, department,
			year, cgpa, is_eligible, skills, certifications,
			applied_jobs, created_at, updated_at
		) VALUES (
			:name, :email, :phone, :student_number, :department,
			:year, :cgpa, :is_eligible, :skills, :certifications,
			:applied_jobs, :created_at, :updated_at
		)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return student.ErrInvalidStudent().WithMessage("Student already exists")
		}
		return fmt.Errorf("failed to create student: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan student id: %w", err)
		}
		studentEntity.ID = kernel.NewStudentID(id)
	}

	return nil
}

// Update updates an existing student
func (r *PostgresStudentRepository) Update(ctx context.Context, id kernel.StudentID, studentEntity *student.Student) error {
	model, err := fromEntity(studentEntity)
	if err != nil {
		return err
	}
	model.ID = id.Int64()

	query := `
		UPDATE students SET
			name = :name,
			email = :email,
			phone = :phone,
			student_number = :student_number,
			department = :department,
			year = :year,
			cgpa = :cgpa,
			is_eligible = :is_eligible,
			skills = :skills,
			certifications = :certifications,
			applied_jobs = :applied_jobs,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return student.ErrStudentNotFound()
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *PostgresStudentRepository) GetByID(ctx context.Context, id kernel.StudentID) (*student.Student, error) {
	query := `
		SELECT
			id, name, email, phone, student_number, department,
			year, cgpa, is_eligible, skills, certifications,
			applied_jobs, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var model studentModel
	err := r.db.GetContext(ctx, &model, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, student.ErrStudentNotFound()
		}
		return nil, fmt.Errorf("failed to get student by id: %w", err)
	}

	return model.toEntity()
}

// List retrieves all students
func (r *PostgresStudentRepository) List(ctx context.Context) ([]*student.Student, error) {
	query := `
		SELECT
			id, name, email, phone, student_number, department,
			year, cgpa, is_eligible, skills, certifications,
			applied_jobs, created_at, updated_at
		FROM students
		ORDER BY id
	`

	var models []studentModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	entities := make([]*student.Student, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

// Exists checks if a student exists by ID
func (r *PostgresStudentRepository) Exists(ctx context.Context, id kernel.StudentID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id.Int64()); err != nil {
		return false, fmt.Errorf("failed to check student existence: %w", err)
	}

	return exists, nil
}
