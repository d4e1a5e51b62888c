package jobinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/job"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID                   int64           `db:"id"`
	CompanyID            int64           `db:"company_id"`
	Company              string          `db:"company"`
	Title                string          `db:"title"`
	Location             string          `db:"location"`
	JobType              string          `db:"job_type"`
	Experience           string          `db:"experience"`
	Salary               string          `db:"salary"`
	Description          string          `db:"description"`
	Requirements         json.RawMessage `db:"requirements"`
	Skills               json.RawMessage `db:"skills"`
	EligibilityCriteria  json.RawMessage `db:"eligibility_criteria"`
	ApplicationDeadline  time.Time       `db:"application_deadline"`
	Status               string          `db:"status"`
	PostedDate           time.Time       `db:"posted_date"`
	ApplicationsReceived int             `db:"applications_received"`
}

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() (*job.Job, error) {
	var requirements []string
	if len(m.Requirements) > 0 {
		if err := json.Unmarshal(m.Requirements, &requirements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
		}
	}

	var skills []string
	if len(m.Skills) > 0 {
		if err := json.Unmarshal(m.Skills, &skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
		}
	}

	var criteria *job.EligibilityCriteria
	if len(m.EligibilityCriteria) > 0 && string(m.EligibilityCriteria) != "null" {
		criteria = &job.EligibilityCriteria{}
		if err := json.Unmarshal(m.EligibilityCriteria, criteria); err != nil {
			return nil, fmt.Errorf("failed to unmarshal eligibility criteria: %w", err)
		}
	}

	return &job.Job{
		ID:                   kernel.NewJobID(m.ID),
		CompanyID:            kernel.NewEmployerID(m.CompanyID),
		Company:              m.Company,
		Title:                m.Title,
		Location:             m.Location,
		JobType:              job.JobType(m.JobType),
		Experience:           m.Experience,
		Salary:               m.Salary,
		Description:          m.Description,
		Requirements:         requirements,
		Skills:               skills,
		EligibilityCriteria:  criteria,
		ApplicationDeadline:  m.ApplicationDeadline,
		Status:               job.JobStatus(m.Status),
		PostedDate:           m.PostedDate,
		ApplicationsReceived: m.ApplicationsReceived,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) (*jobModel, error) {
	requirements, err := json.Marshal(j.Requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}

	skills, err := json.Marshal(j.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	criteria, err := json.Marshal(j.EligibilityCriteria)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal eligibility criteria: %w", err)
	}

	return &jobModel{
		ID:                   j.ID.Int64(),
		CompanyID:            j.CompanyID.Int64(),
		Company:              j.Company,
		Title:                j.Title,
		Location:             j.Location,
		JobType:              string(j.JobType),
		Experience:           j.Experience,
		Salary:               j.Salary,
		Description:          j.Description,
		Requirements:         requirements,
		Skills:               skills,
		EligibilityCriteria:  criteria,
		ApplicationDeadline:  j.ApplicationDeadline,
		Status:               string(j.Status),
		PostedDate:           j.PostedDate,
		ApplicationsReceived: j.ApplicationsReceived,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new job, assigning the next sequential ID
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobs (
			company_id, company, title, location, job_type,
			experience, salary, description, requirements, skills,
			eligibility_criteria, application_deadline, status,
			posted_date, applications_received
		) VALUES (
			:company_id, :company, :title, :location, :job_type,
			:experience, :salary, :description, :requirements, :skills,
			:eligibility_criteria, :application_deadline, :status,
			:posted_date, :applications_received
		)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan job id: %w", err)
		}
		jobEntity.ID = kernel.NewJobID(id)
	}

	return nil
}

// Update updates an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}
	model.ID = id.Int64()

	query := `
		UPDATE jobs SET
			company = :company,
			title = :title,
			location = :location,
			job_type = :job_type,
			experience = :experience,
			salary = :salary,
			description = :description,
			requirements = :requirements,
			skills = :skills,
			eligibility_criteria = :eligibility_criteria,
			application_deadline = :application_deadline,
			status = :status,
			applications_received = :applications_received
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `
		SELECT
			id, company_id, company, title, location, job_type,
			experience, salary, description, requirements, skills,
			eligibility_criteria, application_deadline, status,
			posted_date, applications_received
		FROM jobs
		WHERE id = $1
	`

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity()
}

// List retrieves all jobs
func (r *PostgresJobRepository) List(ctx context.Context) ([]*job.Job, error) {
	query := `
		SELECT
			id, company_id, company, title, location, job_type,
			experience, salary, description, requirements, skills,
			eligibility_criteria, application_deadline, status,
			posted_date, applications_received
		FROM jobs
		ORDER BY id
	`

	return r.selectJobs(ctx, query)
}

// ListByEmployer retrieves all jobs posted by an employer
func (r *PostgresJobRepository) ListByEmployer(ctx context.Context, employerID kernel.EmployerID) ([]*job.Job, error) {
	query := `
		SELECT
			id, company_id, company, title, location, job_type,
			experience, salary, description, requirements, skills,
			eligibility_criteria, application_deadline, status,
			posted_date, applications_received
		FROM jobs
		WHERE company_id = $1
		ORDER BY id
	`

	return r.selectJobs(ctx, query, employerID.Int64())
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id.Int64()); err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}

	return exists, nil
}

func (r *PostgresJobRepository) selectJobs(ctx context.Context, query string, args ...interface{}) ([]*job.Job, error) {
	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	entities := make([]*job.Job, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}
