package employerinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/employer"
)

// PostgresEmployerRepository implements employer.Repository using PostgreSQL
type PostgresEmployerRepository struct {
	db *sqlx.DB
}

// NewPostgresEmployerRepository creates a new PostgreSQL employer repository
func NewPostgresEmployerRepository(db *sqlx.DB) *PostgresEmployerRepository {
	return &PostgresEmployerRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type employerModel struct {
	ID            int64           `db:"id"`
	CompanyName   string          `db:"company_name"`
	Email         string          `db:"email"`
	Phone         string          `db:"phone"`
	Website       string          `db:"website"`
	Address       string          `db:"address"`
	Industry      string          `db:"industry"`
	ContactPerson string          `db:"contact_person"`
	CompanySize   string          `db:"company_size"`
	Description   string          `db:"description"`
	IsVerified    bool            `db:"is_verified"`
	JobsPosted    json.RawMessage `db:"jobs_posted"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *employerModel) toEntity() (*employer.Employer, error) {
	var jobsPosted []kernel.JobID
	if len(m.JobsPosted) > 0 {
		if err := json.Unmarshal(m.JobsPosted, &jobsPosted); err != nil {
			return nil, fmt.Errorf("failed to unmarshal posted jobs: %w", err)
		}
	}

	return &employer.Employer{
		ID:            kernel.NewEmployerID(m.ID),
		CompanyName:   m.CompanyName,
		Email:         kernel.Email(m.Email),
		Phone:         kernel.Phone(m.Phone),
		Website:       m.Website,
		Address:       m.Address,
		Industry:      m.Industry,
		ContactPerson: m.ContactPerson,
		CompanySize:   m.CompanySize,
		Description:   m.Description,
		IsVerified:    m.IsVerified,
		JobsPosted:    jobsPosted,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(e *employer.Employer) (*employerModel, error) {
	jobsPosted, err := json.Marshal(e.JobsPosted)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal posted jobs: %w", err)
	}

	return &employerModel{
		ID:            e.ID.Int64(),
		CompanyName:   e.CompanyName,
		Email:         string(e.Email),
		Phone:         string(e.Phone),
		Website:       e.Website,
		Address:       e.Address,
		Industry:      e.Industry,
		ContactPerson: e.ContactPerson,
		CompanySize:   e.CompanySize,
		Description:   e.Description,
		IsVerified:    e.IsVerified,
		JobsPosted:    jobsPosted,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new employer, assigning the next sequential ID
func (r *PostgresEmployerRepository) Create(ctx context.Context, employerEntity *employer.Employer) error {
	now := time.Now()
	employerEntity.CreatedAt = now
	employerEntity.UpdatedAt = now

	model, err := fromEntity(employerEntity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO employers (
			company_name, email, phone, website, address,
			industry, contact_person, company_size, description,
			is_verified, jobs_posted, created_at, updated_at
		) VALUES (
			:company_name, :email, :phone, :website, :address,
			:industry, :contact_person, :company_size, :description,
			:is_verified, :jobs_posted, :created_at, :updated_at
		)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return employer.ErrInvalidEmployer().WithMessage("Employer already exists")
		}
		return fmt.Errorf("failed to create employer: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan employer id: %w", err)
		}
		employerEntity.ID = kernel.NewEmployerID(id)
	}

	return nil
}

// Update updates an existing employer
func (r *PostgresEmployerRepository) Update(ctx context.Context, id kernel.EmployerID, employerEntity *employer.Employer) error {
	model, err := fromEntity(employerEntity)
	if err != nil {
		return err
	}
	model.ID = id.Int64()

	query := `
		UPDATE employers SET
			company_name = :company_name,
			email = :email,
			phone = :phone,
			website = :website,
			address = :address,
			industry = :industry,
			contact_person = :contact_person,
			company_size = :company_size,
			description = :description,
			is_verified = :is_verified,
			jobs_posted = :jobs_posted,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update employer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return employer.ErrEmployerNotFound()
	}

	return nil
}

// GetByID retrieves an employer by ID
func (r *PostgresEmployerRepository) GetByID(ctx context.Context, id kernel.EmployerID) (*employer.Employer, error) {
	query := `
		SELECT
			id, company_name, email, phone, website, address,
			industry, contact_person, company_size, description,
			is_verified, jobs_posted, created_at, updated_at
		FROM employers
		WHERE id = $1
	`

	var model employerModel
	err := r.db.GetContext(ctx, &model, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, employer.ErrEmployerNotFound()
		}
		return nil, fmt.Errorf("failed to get employer by id: %w", err)
	}

	return model.toEntity()
}

// List retrieves all employers
func (r *PostgresEmployerRepository) List(ctx context.Context) ([]*employer.Employer, error) {
	query := `
		SELECT
			id, company_name, email, phone, website, address,
			industry, contact_person, company_size, description,
			is_verified, jobs_posted, created_at, updated_at
		FROM employers
		ORDER BY id
	`

	var models []employerModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list employers: %w", err)
	}

	entities := make([]*employer.Employer, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

// Exists checks if an employer exists by ID
func (r *PostgresEmployerRepository) Exists(ctx context.Context, id kernel.EmployerID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM employers WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id.Int64()); err != nil {
		return false, fmt.Errorf("failed to check employer existence: %w", err)
	}

	return exists, nil
}
