package student

import (
	"time"

	"github.com/shaheed425/jobsy/pkg/kernel"
)

// Placement-wide eligibility thresholds
const (
	MinEligibleCGPA = 7.0
	MinEligibleYear = 4
)

type Student struct {
	ID             kernel.StudentID  `db:"id" json:"id"`
	Name           string            `db:"name" json:"name"`
	Email          kernel.Email      `db:"email" json:"email"`
	Phone          kernel.Phone      `db:"phone" json:"phone"`
	StudentNumber  string            `db:"student_number" json:"studentNumber"`
	Department     kernel.Department `db:"department" json:"department"`
	Year           int               `db:"year" json:"year"`
	CGPA           float64           `db:"cgpa" json:"cgpa"`
	IsEligible     bool              `db:"is_eligible" json:"isEligible"`
	Skills         []string          `db:"skills" json:"skills"`
	Certifications []string          `db:"certifications" json:"certifications"`
	AppliedJobs    []kernel.JobID    `db:"applied_jobs" json:"appliedJobs"`
	CreatedAt      time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time         `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// ComputeEligibility derives the global placement eligibility flag.
// Invariant: IsEligible == (cgpa >= 7.0 && year >= 4) after every write.
func ComputeEligibility(cgpa float64, year int) bool {
	return cgpa >= MinEligibleCGPA && year >= MinEligibleYear
}

// RecomputeEligibility refreshes the derived flag from current attributes
func (s *Student) RecomputeEligibility() {
	s.IsEligible = ComputeEligibility(s.CGPA, s.Year)
}

// HasApplied checks whether the student already applied to the job
func (s *Student) HasApplied(jobID kernel.JobID) bool {
	for _, id := range s.AppliedJobs {
		if id == jobID {
			return true
		}
	}
	return false
}

// RecordApplication appends the job to the applied-jobs cache
func (s *Student) RecordApplication(jobID kernel.JobID) {
	s.AppliedJobs = append(s.AppliedJobs, jobID)
	s.UpdatedAt = time.Now()
}

// EligibilityLabel renders the flag for reports
func (s *Student) EligibilityLabel() string {
	if s.IsEligible {
		return "Eligible"
	}
	return "Not Eligible"
}
