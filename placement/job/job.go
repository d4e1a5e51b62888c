package job

import (
	"math"
	"time"

	"github.com/shaheed425/jobsy/pkg/kernel"
)

// JobStatus represents the stored status of a job posting
type JobStatus string

const (
	JobStatusActive   JobStatus = "active"   // Accepting applications
	JobStatusInactive JobStatus = "inactive" // Paused by employer/admin
	// "expired" is derived from the deadline, never stored
	JobStatusExpired JobStatus = "expired"
)

// JobType is one of the fixed employment types
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeInternship JobType = "Internship"
	JobTypeContract   JobType = "Contract"
)

func (t JobType) IsValid() bool {
	return t == JobTypeFullTime || t == JobTypePartTime || t == JobTypeInternship || t == JobTypeContract
}

// EligibilityCriteria are the optional per-job constraints further
// restricting applicants. Zero values mean "no restriction".
type EligibilityCriteria struct {
	MinCGPA     float64             `json:"minCGPA,omitempty"`
	Departments []kernel.Department `json:"departments,omitempty"`
	Year        int                 `json:"year,omitempty"`
}

// AllowsDepartment checks department membership; an empty list allows all
func (c *EligibilityCriteria) AllowsDepartment(d kernel.Department) bool {
	if len(c.Departments) == 0 {
		return true
	}
	for _, dept := range c.Departments {
		if dept == d {
			return true
		}
	}
	return false
}

type Job struct {
	ID                  kernel.JobID         `db:"id" json:"id"`
	CompanyID           kernel.EmployerID    `db:"company_id" json:"companyId"`
	Company             string               `db:"company" json:"company"`
	Title               string               `db:"title" json:"title"`
	Location            string               `db:"location" json:"location"`
	JobType             JobType              `db:"job_type" json:"jobType"`
	Experience          string               `db:"experience" json:"experience"`
	Salary              string               `db:"salary" json:"salary"`
	Description         string               `db:"description" json:"description"`
	Requirements        []string             `db:"requirements" json:"requirements"`
	Skills              []string             `db:"skills" json:"skills"`
	EligibilityCriteria *EligibilityCriteria `db:"eligibility_criteria" json:"eligibilityCriteria,omitempty"`
	ApplicationDeadline time.Time            `db:"application_deadline" json:"applicationDeadline"`
	Status              JobStatus            `db:"status" json:"status"`
	PostedDate          time.Time            `db:"posted_date" json:"postedDate"`
	// Materialized count of applications; written only by the
	// application submission workflow, never recomputed by readers.
	ApplicationsReceived int `db:"applications_received" json:"applicationsReceived"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsOpen checks whether the job accepts applications at the given time
func (j *Job) IsOpen(now time.Time) bool {
	return j.Status == JobStatusActive && now.Before(j.ApplicationDeadline)
}

// IsExpired checks whether the application deadline has passed
func (j *Job) IsExpired(now time.Time) bool {
	return now.After(j.ApplicationDeadline)
}

// EffectiveStatus derives the user-visible status at the given time
func (j *Job) EffectiveStatus(now time.Time) JobStatus {
	if j.Status == JobStatusActive && j.IsExpired(now) {
		return JobStatusExpired
	}
	return j.Status
}

// DaysUntilDeadline counts whole days (rounded up) until the deadline
func (j *Job) DaysUntilDeadline(now time.Time) int {
	return int(math.Ceil(j.ApplicationDeadline.Sub(now).Hours() / 24))
}

// IsDeadlineApproaching checks whether the deadline is within the
// threshold and still in the future
func (j *Job) IsDeadlineApproaching(now time.Time, thresholdDays int) bool {
	days := j.DaysUntilDeadline(now)
	return days <= thresholdDays && days > 0
}

// RecordApplication bumps the materialized application counter.
// Exactly once per successful submission; there is no withdrawal path,
// so the counter never decrements.
func (j *Job) RecordApplication() {
	j.ApplicationsReceived++
}
