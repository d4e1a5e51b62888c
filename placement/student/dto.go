package student

import (
	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
)

// RegisterStudentRequest - DTO for registering a new student
type RegisterStudentRequest struct {
	Name           string            `json:"name" validate:"required"`
	Email          kernel.Email      `json:"email" validate:"required"`
	Phone          kernel.Phone      `json:"phone" validate:"required"`
	StudentNumber  string            `json:"studentNumber,omitempty"`
	Department     kernel.Department `json:"department" validate:"required"`
	Year           int               `json:"year" validate:"required"`
	CGPA           float64           `json:"cgpa" validate:"required"`
	Skills         []string          `json:"skills,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
}

// UpdateStudentRequest - DTO for updating a student profile.
// Nil fields are left untouched; eligibility is recomputed either way.
type UpdateStudentRequest struct {
	Name           *string            `json:"name,omitempty"`
	Email          *kernel.Email      `json:"email,omitempty"`
	Phone          *kernel.Phone      `json:"phone,omitempty"`
	StudentNumber  *string            `json:"studentNumber,omitempty"`
	Department     *kernel.Department `json:"department,omitempty"`
	Year           *int               `json:"year,omitempty"`
	CGPA           *float64           `json:"cgpa,omitempty"`
	Skills         *[]string          `json:"skills,omitempty"`
	Certifications *[]string          `json:"certifications,omitempty"`
}

// StudentReportResponse - per-student placement summary
type StudentReportResponse struct {
	Student              *Student       `json:"student"`
	TotalApplications    int            `json:"totalApplications"`
	ApplicationsByStatus map[string]int `json:"applicationsByStatus"`
	EligibilityStatus    string         `json:"eligibilityStatus"`
}

// Validate applies the registration rules fail-fast: the returned error
// names the first failing field or rule.
func (r RegisterStudentRequest) Validate() *errx.Error {
	if r.Name == "" {
		return ErrInvalidStudent().WithMessage("name is required").WithDetail("field", "name")
	}
	if r.Email == "" {
		return ErrInvalidStudent().WithMessage("email is required").WithDetail("field", "email")
	}
	if r.Phone == "" {
		return ErrInvalidStudent().WithMessage("phone is required").WithDetail("field", "phone")
	}
	if r.Department == "" {
		return ErrInvalidStudent().WithMessage("department is required").WithDetail("field", "department")
	}
	if r.Year == 0 {
		return ErrInvalidStudent().WithMessage("year is required").WithDetail("field", "year")
	}
	if r.CGPA == 0 {
		return ErrInvalidStudent().WithMessage("cgpa is required").WithDetail("field", "cgpa")
	}
	if !r.Email.IsValid() {
		return ErrInvalidStudent().WithMessage("Invalid email format").WithDetail("field", "email")
	}
	if r.CGPA < 0 || r.CGPA > 10 {
		return ErrInvalidStudent().WithMessage("CGPA must be between 0 and 10").WithDetail("field", "cgpa")
	}
	if r.Year < 1 || r.Year > 4 {
		return ErrInvalidStudent().WithMessage("Year must be between 1 and 4").WithDetail("field", "year")
	}
	if !r.Department.IsValid() {
		return ErrInvalidStudent().WithMessage("Invalid department").WithDetail("field", "department")
	}
	return nil
}
