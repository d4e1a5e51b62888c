package application

import (
	"time"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/student"
)

// SubmitApplicationRequest - DTO for submitting a job application
type SubmitApplicationRequest struct {
	StudentID   kernel.StudentID `json:"studentId" validate:"required"`
	JobID       kernel.JobID     `json:"jobId" validate:"required"`
	CoverLetter string           `json:"coverLetter" validate:"required"`
}

// UpdateStatusRequest - DTO for an employer/admin review decision
type UpdateStatusRequest struct {
	Status        ApplicationStatus `json:"status" validate:"required"`
	Feedback      string            `json:"feedback,omitempty"`
	InterviewDate *time.Time        `json:"interviewDate,omitempty"`
}

// ApplicationDetailsResponse - an application with its related records
type ApplicationDetailsResponse struct {
	Application *Application     `json:"application"`
	Student     *student.Student `json:"student"`
	Job         *job.Job         `json:"job"`
}

// Validate applies the submission field rules fail-fast.
// Cover letter bounds are inclusive: lengths 50 and 1000 both pass.
func (r SubmitApplicationRequest) Validate() *errx.Error {
	if r.StudentID.IsZero() {
		return ErrInvalidApplication().WithMessage("studentId is required").WithDetail("field", "studentId")
	}
	if r.JobID.IsZero() {
		return ErrInvalidApplication().WithMessage("jobId is required").WithDetail("field", "jobId")
	}
	if r.CoverLetter == "" {
		return ErrInvalidApplication().WithMessage("coverLetter is required").WithDetail("field", "coverLetter")
	}
	if len(r.CoverLetter) < MinCoverLetterLen {
		return ErrInvalidApplication().
			WithMessage("Cover letter must be at least 50 characters long").
			WithDetail("field", "coverLetter")
	}
	if len(r.CoverLetter) > MaxCoverLetterLen {
		return ErrInvalidApplication().
			WithMessage("Cover letter must not exceed 1000 characters").
			WithDetail("field", "coverLetter")
	}
	return nil
}

// Validate checks the review decision payload
func (r UpdateStatusRequest) Validate() *errx.Error {
	if !r.Status.IsValid() {
		return ErrInvalidStatus().WithDetail("status", string(r.Status))
	}
	return nil
}
