package job

import (
	"time"

	"github.com/shaheed425/jobsy/pkg/errx"
)

// PostJobRequest - DTO for posting a new job opening
type PostJobRequest struct {
	Title               string               `json:"title" validate:"required"`
	Location            string               `json:"location" validate:"required"`
	JobType             JobType              `json:"jobType" validate:"required"`
	Experience          string               `json:"experience" validate:"required"`
	Salary              string               `json:"salary" validate:"required"`
	Description         string               `json:"description" validate:"required"`
	Requirements        []string             `json:"requirements" validate:"required"`
	Skills              []string             `json:"skills,omitempty"`
	EligibilityCriteria *EligibilityCriteria `json:"eligibilityCriteria,omitempty"`
	ApplicationDeadline time.Time            `json:"applicationDeadline"`
}

// UpdateJobRequest - DTO for editing a posted job
type UpdateJobRequest struct {
	Title               *string    `json:"title,omitempty"`
	Location            *string    `json:"location,omitempty"`
	Experience          *string    `json:"experience,omitempty"`
	Salary              *string    `json:"salary,omitempty"`
	Description         *string    `json:"description,omitempty"`
	Status              *JobStatus `json:"status,omitempty"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
}

// JobDetailsResponse - a job with its derived read-side context
type JobDetailsResponse struct {
	Job                   *Job      `json:"job"`
	ApplicationCount      int       `json:"applicationCount"`
	EligibleStudentCount  int       `json:"eligibleStudentCount"`
	IsDeadlineApproaching bool      `json:"isDeadlineApproaching"`
	DaysUntilDeadline     int       `json:"daysUntilDeadline"`
	EffectiveStatus       JobStatus `json:"effectiveStatus"`
}

// Validate applies the job posting rules fail-fast
func (r PostJobRequest) Validate() *errx.Error {
	if r.Title == "" {
		return ErrInvalidJob().WithMessage("title is required").WithDetail("field", "title")
	}
	if r.Location == "" {
		return ErrInvalidJob().WithMessage("location is required").WithDetail("field", "location")
	}
	if r.JobType == "" {
		return ErrInvalidJob().WithMessage("jobType is required").WithDetail("field", "jobType")
	}
	if r.Experience == "" {
		return ErrInvalidJob().WithMessage("experience is required").WithDetail("field", "experience")
	}
	if r.Salary == "" {
		return ErrInvalidJob().WithMessage("salary is required").WithDetail("field", "salary")
	}
	if r.Description == "" {
		return ErrInvalidJob().WithMessage("description is required").WithDetail("field", "description")
	}
	if len(r.Requirements) == 0 {
		return ErrInvalidJob().WithMessage("requirements is required").WithDetail("field", "requirements")
	}
	if !r.JobType.IsValid() {
		return ErrInvalidJob().WithMessage("Invalid job type").WithDetail("field", "jobType")
	}
	if c := r.EligibilityCriteria; c != nil {
		if c.MinCGPA <= 0 || c.MinCGPA > 10 {
			return ErrInvalidJob().WithMessage("Valid minimum CGPA is required (0-10)").WithDetail("field", "eligibilityCriteria.minCGPA")
		}
		if len(c.Departments) == 0 {
			return ErrInvalidJob().WithMessage("At least one department must be specified").WithDetail("field", "eligibilityCriteria.departments")
		}
	}
	return nil
}
