package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/application"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type applicationModel struct {
	ID              int64      `db:"id"`
	StudentID       int64      `db:"student_id"`
	JobID           int64      `db:"job_id"`
	StudentName     string     `db:"student_name"`
	JobTitle        string     `db:"job_title"`
	Company         string     `db:"company"`
	CoverLetter     string     `db:"cover_letter"`
	ApplicationDate time.Time  `db:"application_date"`
	Status          string     `db:"status"`
	Feedback        string     `db:"feedback"`
	InterviewDate   *time.Time `db:"interview_date"`
}

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() *application.Application {
	return &application.Application{
		ID:              kernel.NewApplicationID(m.ID),
		StudentID:       kernel.NewStudentID(m.StudentID),
		JobID:           kernel.NewJobID(m.JobID),
		StudentName:     m.StudentName,
		JobTitle:        m.JobTitle,
		Company:         m.Company,
		CoverLetter:     m.CoverLetter,
		ApplicationDate: m.ApplicationDate,
		Status:          application.ApplicationStatus(m.Status),
		Feedback:        m.Feedback,
		InterviewDate:   m.InterviewDate,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(a *application.Application) *applicationModel {
	return &applicationModel{
		ID:              a.ID.Int64(),
		StudentID:       a.StudentID.Int64(),
		JobID:           a.JobID.Int64(),
		StudentName:     a.StudentName,
		JobTitle:        a.JobTitle,
		Company:         a.Company,
		CoverLetter:     a.CoverLetter,
		ApplicationDate: a.ApplicationDate,
		Status:          string(a.Status),
		Feedback:        a.Feedback,
		InterviewDate:   a.InterviewDate,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new application, assigning the next sequential ID.
// The (student_id, job_id) pair is unique; a violation maps to the
// duplicate application error.
func (r *PostgresApplicationRepository) Create(ctx context.Context, applicationEntity *application.Application) error {
	model := fromEntity(applicationEntity)

	query := `
		INSERT INTO applications (
			student_id, job_id, student_name, job_title, company,
			cover_letter, application_date, status, feedback, interview_date
		) VALUES (
			:student_id, :job_id, :student_name, :job_title, :company,
			:cover_letter, :application_date, :status, :feedback, :interview_date
		)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return application.ErrDuplicateApplication()
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan application id: %w", err)
		}
		applicationEntity.ID = kernel.NewApplicationID(id)
	}

	return nil
}

// Update updates an existing application
func (r *PostgresApplicationRepository) Update(ctx context.Context, id kernel.ApplicationID, applicationEntity *application.Application) error {
	model := fromEntity(applicationEntity)
	model.ID = id.Int64()

	query := `
		UPDATE applications SET
			status = :status,
			feedback = :feedback,
			interview_date = :interview_date
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `
		SELECT
			id, student_id, job_id, student_name, job_title, company,
			cover_letter, application_date, status, feedback, interview_date
		FROM applications
		WHERE id = $1
	`

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves all applications
func (r *PostgresApplicationRepository) List(ctx context.Context) ([]*application.Application, error) {
	query := `
		SELECT
			id, student_id, job_id, student_name, job_title, company,
			cover_letter, application_date, status, feedback, interview_date
		FROM applications
		ORDER BY id
	`

	return r.selectApplications(ctx, query)
}

// ListByStudent retrieves all applications submitted by a student
func (r *PostgresApplicationRepository) ListByStudent(ctx context.Context, studentID kernel.StudentID) ([]*application.Application, error) {
	query := `
		SELECT
			id, student_id, job_id, student_name, job_title, company,
			cover_letter, application_date, status, feedback, interview_date
		FROM applications
		WHERE student_id = $1
		ORDER BY id
	`

	return r.selectApplications(ctx, query, studentID.Int64())
}

// ListByJob retrieves all applications received for a job
func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID kernel.JobID) ([]*application.Application, error) {
	query := `
		SELECT
			id, student_id, job_id, student_name, job_title, company,
			cover_letter, application_date, status, feedback, interview_date
		FROM applications
		WHERE job_id = $1
		ORDER BY id
	`

	return r.selectApplications(ctx, query, jobID.Int64())
}

// ExistsByStudentAndJob checks whether a student already applied to a job
func (r *PostgresApplicationRepository) ExistsByStudentAndJob(ctx context.Context, studentID kernel.StudentID, jobID kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE student_id = $1 AND job_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, studentID.Int64(), jobID.Int64()); err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}

	return exists, nil
}

// CountByJob counts the applications received for a job
func (r *PostgresApplicationRepository) CountByJob(ctx context.Context, jobID kernel.JobID) (int, error) {
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, jobID.Int64()); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}

	return count, nil
}

func (r *PostgresApplicationRepository) selectApplications(ctx context.Context, query string, args ...interface{}) ([]*application.Application, error) {
	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	entities := make([]*application.Application, 0, len(models))
	for _, model := range models {
		entities = append(entities, model.toEntity())
	}

	return entities, nil
}
