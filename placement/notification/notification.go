package notification

import (
	"fmt"
	"time"

	"github.com/shaheed425/jobsy/pkg/kernel"
)

// NotificationType classifies the domain event behind a notification
type NotificationType string

const (
	TypeProfileCreated      NotificationType = "profile_created"
	TypeCompanyRegistration NotificationType = "company_registration"
	TypeCompanyVerification NotificationType = "company_verification"
	TypeJobPosting          NotificationType = "job_posting"
	TypeApplicationSubmit   NotificationType = "application_submitted"
	TypeApplicationStatus   NotificationType = "application_status"
	TypeInterviewSchedule   NotificationType = "interview_schedule"
	// deadline_reminder is a recognized type but nothing dispatches it:
	// the reminder feature has no trigger model yet.
	TypeDeadlineReminder NotificationType = "deadline_reminder"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case TypeProfileCreated, TypeCompanyRegistration, TypeCompanyVerification,
		TypeJobPosting, TypeApplicationSubmit, TypeApplicationStatus,
		TypeInterviewSchedule, TypeDeadlineReminder:
		return true
	}
	return false
}

// Recipient selects who receives a notification
type Recipient string

const (
	RecipientStudent      Recipient = "student"
	RecipientEmployer     Recipient = "employer"
	RecipientAllStudents  Recipient = "all_students"
	RecipientAllEmployers Recipient = "all_employers"
)

func (r Recipient) IsValid() bool {
	switch r {
	case RecipientStudent, RecipientEmployer, RecipientAllStudents, RecipientAllEmployers:
		return true
	}
	return false
}

// Priority of a notification
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// MaxMessageLen bounds the notification body
const MaxMessageLen = 500

type Notification struct {
	ID        kernel.NotificationID `db:"id" json:"id"`
	Type      NotificationType      `db:"type" json:"type"`
	Title     string                `db:"title" json:"title"`
	Message   string                `db:"message" json:"message"`
	Recipient Recipient             `db:"recipient" json:"recipient"`
	// RecipientID targets one student or employer; zero for broadcasts
	RecipientID          int64                 `db:"recipient_id" json:"recipientId,omitempty"`
	Priority             Priority              `db:"priority" json:"priority"`
	CreatedAt            time.Time             `db:"created_at" json:"createdAt"`
	IsRead               bool                  `db:"is_read" json:"isRead"`
	RelatedJobID         *kernel.JobID         `db:"related_job_id" json:"relatedJobId,omitempty"`
	RelatedApplicationID *kernel.ApplicationID `db:"related_application_id" json:"relatedApplicationId,omitempty"`
}

// Validate applies the notification field rules fail-fast
func (n *Notification) Validate() error {
	if n.Type == "" {
		return ErrInvalidNotification().WithMessage("type is required").WithDetail("field", "type")
	}
	if n.Title == "" {
		return ErrInvalidNotification().WithMessage("title is required").WithDetail("field", "title")
	}
	if n.Message == "" {
		return ErrInvalidNotification().WithMessage("message is required").WithDetail("field", "message")
	}
	if n.Recipient == "" {
		return ErrInvalidNotification().WithMessage("recipient is required").WithDetail("field", "recipient")
	}
	if n.Priority == "" {
		return ErrInvalidNotification().WithMessage("priority is required").WithDetail("field", "priority")
	}
	if !n.Type.IsValid() {
		return ErrInvalidNotification().WithMessage("Invalid notification type").WithDetail("type", string(n.Type))
	}
	if !n.Recipient.IsValid() {
		return ErrInvalidNotification().WithMessage("Invalid recipient type").WithDetail("recipient", string(n.Recipient))
	}
	if !n.Priority.IsValid() {
		return ErrInvalidNotification().WithMessage("Invalid priority level").WithDetail("priority", string(n.Priority))
	}
	if len(n.Message) > MaxMessageLen {
		return ErrInvalidNotification().WithMessage("Message must not exceed 500 characters").WithDetail("field", "message")
	}
	return nil
}

// MarkRead flips the read flag; the only mutation notifications allow
func (n *Notification) MarkRead() {
	n.IsRead = true
}

// ============================================================================
// Domain Event Constructors
// ============================================================================

// NewProfileCreated welcomes a freshly registered student
func NewProfileCreated(studentID kernel.StudentID) *Notification {
	return &Notification{
		Type:        TypeProfileCreated,
		Title:       "Welcome to Placement Portal",
		Message:     "Your student profile has been created successfully. Complete your profile to apply for jobs.",
		Recipient:   RecipientStudent,
		RecipientID: studentID.Int64(),
		Priority:    PriorityMedium,
	}
}

// NewCompanyRegistration acknowledges a new employer registration
func NewCompanyRegistration(employerID kernel.EmployerID) *Notification {
	return &Notification{
		Type:        TypeCompanyRegistration,
		Title:       "Company Registration Received",
		Message:     "Your company registration is under review. You will be notified once verified.",
		Recipient:   RecipientEmployer,
		RecipientID: employerID.Int64(),
		Priority:    PriorityMedium,
	}
}

// NewCompanyVerified informs an employer they can now post jobs
func NewCompanyVerified(employerID kernel.EmployerID) *Notification {
	return &Notification{
		Type:        TypeCompanyVerification,
		Title:       "Company Profile Verified",
		Message:     "Your company profile has been successfully verified. You can now post job openings.",
		Recipient:   RecipientEmployer,
		RecipientID: employerID.Int64(),
		Priority:    PriorityHigh,
	}
}

// NewJobPosting broadcasts a fresh opening to all students
func NewJobPosting(jobID kernel.JobID, jobTitle, company string) *Notification {
	return &Notification{
		Type:         TypeJobPosting,
		Title:        fmt.Sprintf("New Job Posted: %s", jobTitle),
		Message:      fmt.Sprintf("%s has posted a new %s position. Apply now!", company, jobTitle),
		Recipient:    RecipientAllStudents,
		Priority:     PriorityMedium,
		RelatedJobID: &jobID,
	}
}

// NewApplicationSubmitted confirms a submission to the applicant
func NewApplicationSubmitted(studentID kernel.StudentID, applicationID kernel.ApplicationID, jobTitle, company string) *Notification {
	return &Notification{
		Type:                 TypeApplicationSubmit,
		Title:                "Application Submitted Successfully",
		Message:              fmt.Sprintf("Your application for %s at %s has been submitted successfully.", jobTitle, company),
		Recipient:            RecipientStudent,
		RecipientID:          studentID.Int64(),
		Priority:             PriorityMedium,
		RelatedApplicationID: &applicationID,
	}
}

// NewApplicationStatus carries a review decision to the applicant.
// statusLine is the canned per-status wording owned by the application
// package; priority is high for acceptances and medium otherwise.
func NewApplicationStatus(studentID kernel.StudentID, applicationID kernel.ApplicationID, jobTitle, company, statusLine string, priority Priority) *Notification {
	return &Notification{
		Type:                 TypeApplicationStatus,
		Title:                "Application Status Update",
		Message:              fmt.Sprintf("%s at %s - %s", jobTitle, company, statusLine),
		Recipient:            RecipientStudent,
		RecipientID:          studentID.Int64(),
		Priority:             priority,
		RelatedApplicationID: &applicationID,
	}
}

// NewInterviewScheduled announces an interview slot to the applicant
func NewInterviewScheduled(studentID kernel.StudentID, applicationID kernel.ApplicationID, jobTitle, company string, at time.Time) *Notification {
	return &Notification{
		Type:  TypeInterviewSchedule,
		Title: "Interview Scheduled",
		Message: fmt.Sprintf("Your interview for %s at %s is scheduled for %s at %s.",
			jobTitle, company, at.Format("Jan 2, 2006"), at.Format("3:04 PM")),
		Recipient:            RecipientStudent,
		RecipientID:          studentID.Int64(),
		Priority:             PriorityHigh,
		RelatedApplicationID: &applicationID,
	}
}
