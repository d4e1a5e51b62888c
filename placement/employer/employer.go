package employer

import (
	"time"

	"github.com/shaheed425/jobsy/pkg/kernel"
)

type Employer struct {
	ID            kernel.EmployerID `db:"id" json:"id"`
	CompanyName   string            `db:"company_name" json:"companyName"`
	Email         kernel.Email      `db:"email" json:"email"`
	Phone         kernel.Phone      `db:"phone" json:"phone"`
	Website       string            `db:"website" json:"website"`
	Address       string            `db:"address" json:"address"`
	Industry      string            `db:"industry" json:"industry"`
	ContactPerson string            `db:"contact_person" json:"contactPerson"`
	CompanySize   string            `db:"company_size" json:"companySize,omitempty"`
	Description   string            `db:"description" json:"description,omitempty"`
	IsVerified    bool              `db:"is_verified" json:"isVerified"`
	JobsPosted    []kernel.JobID    `db:"jobs_posted" json:"jobsPosted"`
	CreatedAt     time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// CanPostJobs gates job posting on admin verification
func (e *Employer) CanPostJobs() bool {
	return e.IsVerified
}

// Verify marks the employer as verified. One-way: there is no un-verify.
func (e *Employer) Verify() error {
	if e.IsVerified {
		return ErrEmployerAlreadyVerified()
	}
	e.IsVerified = true
	e.UpdatedAt = time.Now()
	return nil
}

// RecordJobPosted appends the job to the employer's posted list
func (e *Employer) RecordJobPosted(jobID kernel.JobID) {
	e.JobsPosted = append(e.JobsPosted, jobID)
	e.UpdatedAt = time.Now()
}
