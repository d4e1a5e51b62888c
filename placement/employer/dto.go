package employer

import (
	"net/url"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
)

// RegisterEmployerRequest - DTO for registering a new company
type RegisterEmployerRequest struct {
	CompanyName   string       `json:"companyName" validate:"required"`
	Email         kernel.Email `json:"email" validate:"required"`
	Phone         kernel.Phone `json:"phone" validate:"required"`
	Website       string       `json:"website" validate:"required"`
	Address       string       `json:"address" validate:"required"`
	Industry      string       `json:"industry" validate:"required"`
	ContactPerson string       `json:"contactPerson" validate:"required"`
	CompanySize   string       `json:"companySize,omitempty"`
	Description   string       `json:"description,omitempty"`
}

// UpdateEmployerRequest - DTO for updating an employer profile
type UpdateEmployerRequest struct {
	CompanyName   *string       `json:"companyName,omitempty"`
	Email         *kernel.Email `json:"email,omitempty"`
	Phone         *kernel.Phone `json:"phone,omitempty"`
	Website       *string       `json:"website,omitempty"`
	Address       *string       `json:"address,omitempty"`
	Industry      *string       `json:"industry,omitempty"`
	ContactPerson *string       `json:"contactPerson,omitempty"`
	CompanySize   *string       `json:"companySize,omitempty"`
	Description   *string       `json:"description,omitempty"`
}

// EmployerDashboardResponse - rollup of an employer's jobs and applications
type EmployerDashboardResponse struct {
	Employer             *Employer      `json:"employer"`
	TotalJobs            int            `json:"totalJobs"`
	ActiveJobs           int            `json:"activeJobs"`
	TotalApplications    int            `json:"totalApplications"`
	ApplicationsByStatus map[string]int `json:"applicationsByStatus"`
}

// Validate applies the employer registration rules fail-fast
func (r RegisterEmployerRequest) Validate() *errx.Error {
	if r.CompanyName == "" {
		return ErrInvalidEmployer().WithMessage("companyName is required").WithDetail("field", "companyName")
	}
	if r.Email == "" {
		return ErrInvalidEmployer().WithMessage("email is required").WithDetail("field", "email")
	}
	if r.Phone == "" {
		return ErrInvalidEmployer().WithMessage("phone is required").WithDetail("field", "phone")
	}
	if r.Website == "" {
		return ErrInvalidEmployer().WithMessage("website is required").WithDetail("field", "website")
	}
	if r.Address == "" {
		return ErrInvalidEmployer().WithMessage("address is required").WithDetail("field", "address")
	}
	if r.Industry == "" {
		return ErrInvalidEmployer().WithMessage("industry is required").WithDetail("field", "industry")
	}
	if r.ContactPerson == "" {
		return ErrInvalidEmployer().WithMessage("contactPerson is required").WithDetail("field", "contactPerson")
	}
	if !r.Email.IsValid() {
		return ErrInvalidEmployer().WithMessage("Invalid email format").WithDetail("field", "email")
	}
	if u, err := url.Parse(r.Website); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidEmployer().WithMessage("Invalid website URL").WithDetail("field", "website")
	}
	return nil
}
