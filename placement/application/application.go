package application

import (
	"time"

	"github.com/shaheed425/jobsy/pkg/kernel"
)

// ApplicationStatus represents where an application sits in review
type ApplicationStatus string

const (
	ApplicationStatusUnderReview ApplicationStatus = "under_review" // Initial state at submission
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusUnderReview, ApplicationStatusShortlisted,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// AllStatuses lists every application status, in review order
func AllStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		ApplicationStatusUnderReview,
		ApplicationStatusShortlisted,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
	}
}

// StatusLine is the canned student-facing line for a status change.
// The wording is contractual; tests and the UI render it verbatim.
func (s ApplicationStatus) StatusLine() string {
	switch s {
	case ApplicationStatusUnderReview:
		return "Your application is under review."
	case ApplicationStatusShortlisted:
		return "Congratulations! You have been shortlisted for the next round."
	case ApplicationStatusAccepted:
		return "Congratulations! Your application has been accepted."
	case ApplicationStatusRejected:
		return "Thank you for your interest. Unfortunately, your application was not selected this time."
	}
	return ""
}

// Cover letter length bounds, shared by the submission path
const (
	MinCoverLetterLen = 50
	MaxCoverLetterLen = 1000
)

type Application struct {
	ID        kernel.ApplicationID `db:"id" json:"id"`
	StudentID kernel.StudentID     `db:"student_id" json:"studentId"`
	JobID     kernel.JobID         `db:"job_id" json:"jobId"`
	// Snapshots captured at submission time, not live references
	StudentName     string            `db:"student_name" json:"studentName"`
	JobTitle        string            `db:"job_title" json:"jobTitle"`
	Company         string            `db:"company" json:"company"`
	CoverLetter     string            `db:"cover_letter" json:"coverLetter"`
	ApplicationDate time.Time         `db:"application_date" json:"applicationDate"`
	Status          ApplicationStatus `db:"status" json:"status"`
	Feedback        string            `db:"feedback" json:"feedback,omitempty"`
	InterviewDate   *time.Time        `db:"interview_date" json:"interviewDate,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// SetStatus applies a reviewer's decision. Transitions are deliberately
// unguarded: any status may be set from any current status, matching the
// portal's review workflow where decisions can be revised.
// Non-empty feedback overwrites; empty feedback leaves the prior value.
func (a *Application) SetStatus(status ApplicationStatus, feedback string) {
	a.Status = status
	if feedback != "" {
		a.Feedback = feedback
	}
}

// ScheduleInterview records the interview date on the application
func (a *Application) ScheduleInterview(at time.Time) {
	a.InterviewDate = &at
}
