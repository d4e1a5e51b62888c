package employersrv

import (
	"context"
	"net/url"
	"time"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/pkg/logx"
	"github.com/shaheed425/jobsy/placement/application"
	"github.com/shaheed425/jobsy/placement/employer"
	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/notification"
)

// EmployerService handles company registration, verification, job
// posting, and the employer-side read views.
type EmployerService struct {
	employerRepo     employer.Repository
	jobRepo          job.Repository
	applicationRepo  application.Repository
	notificationRepo notification.Repository
}

// NewEmployerService creates a new instance of the employer service
func NewEmployerService(
	employerRepo employer.Repository,
	jobRepo job.Repository,
	applicationRepo application.Repository,
	notificationRepo notification.Repository,
) *EmployerService {
	return &EmployerService{
		employerRepo:     employerRepo,
		jobRepo:          jobRepo,
		applicationRepo:  applicationRepo,
		notificationRepo: notificationRepo,
	}
}

// RegisterEmployer validates and stores a new company. Companies start
// unverified and cannot post jobs until an admin verifies them.
func (s *EmployerService) RegisterEmployer(ctx context.Context, req employer.RegisterEmployerRequest) (*employer.Employer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newEmployer := &employer.Employer{
		CompanyName:   req.CompanyName,
		Email:         req.Email,
		Phone:         req.Phone,
		Website:       req.Website,
		Address:       req.Address,
		Industry:      req.Industry,
		ContactPerson: req.ContactPerson,
		CompanySize:   req.CompanySize,
		Description:   req.Description,
		IsVerified:    false,
		JobsPosted:    []kernel.JobID{},
	}

	if err := s.employerRepo.Create(ctx, newEmployer); err != nil {
		return nil, errx.Wrap(err, "failed to register employer", errx.TypeInternal)
	}

	if err := s.notificationRepo.Create(ctx, notification.NewCompanyRegistration(newEmployer.ID)); err != nil {
		logx.Warnf("registration notification for employer %s not created: %v", newEmployer.ID, err)
	}

	return newEmployer, nil
}

// GetEmployer retrieves an employer by ID
func (s *EmployerService) GetEmployer(ctx context.Context, id kernel.EmployerID) (*employer.Employer, error) {
	emp, err := s.employerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, employer.ErrEmployerNotFound().WithDetail("employer_id", id.String())
	}
	return emp, nil
}

// ListEmployers retrieves all employers
func (s *EmployerService) ListEmployers(ctx context.Context) ([]*employer.Employer, error) {
	employers, err := s.employerRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list employers", errx.TypeInternal)
	}
	return employers, nil
}

// UpdateProfile applies a partial update to an employer profile.
// Verification status is not touchable through this path.
func (s *EmployerService) UpdateProfile(ctx context.Context, id kernel.EmployerID, req employer.UpdateEmployerRequest) (*employer.Employer, error) {
	emp, err := s.employerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, employer.ErrEmployerNotFound().WithDetail("employer_id", id.String())
	}

	if req.CompanyName != nil {
		emp.CompanyName = *req.CompanyName
	}
	if req.Email != nil {
		if !req.Email.IsValid() {
			return nil, employer.ErrInvalidEmployer().WithMessage("Invalid email format").WithDetail("field", "email")
		}
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Website != nil {
		if u, err := url.Parse(*req.Website); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, employer.ErrInvalidEmployer().WithMessage("Invalid website URL").WithDetail("field", "website")
		}
		emp.Website = *req.Website
	}
	if req.Address != nil {
		emp.Address = *req.Address
	}
	if req.Industry != nil {
		emp.Industry = *req.Industry
	}
	if req.ContactPerson != nil {
		emp.ContactPerson = *req.ContactPerson
	}
	if req.CompanySize != nil {
		emp.CompanySize = *req.CompanySize
	}
	if req.Description != nil {
		emp.Description = *req.Description
	}

	emp.UpdatedAt = time.Now()

	if err := s.employerRepo.Update(ctx, id, emp); err != nil {
		return nil, errx.Wrap(err, "failed to update employer profile", errx.TypeInternal)
	}

	return emp, nil
}

// VerifyEmployer marks a company as verified and notifies it. The flag
// is one-way; verifying an already verified company is a conflict.
func (s *EmployerService) VerifyEmployer(ctx context.Context, id kernel.EmployerID) (*employer.Employer, error) {
	emp, err := s.employerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, employer.ErrEmployerNotFound().WithDetail("employer_id", id.String())
	}

	if err := emp.Verify(); err != nil {
		return nil, err
	}

	if err := s.employerRepo.Update(ctx, id, emp); err != nil {
		return nil, errx.Wrap(err, "failed to verify employer", errx.TypeInternal)
	}

	if err := s.notificationRepo.Create(ctx, notification.NewCompanyVerified(emp.ID)); err != nil {
		logx.Warnf("verification notification for employer %s not created: %v", emp.ID, err)
	}

	return emp, nil
}

// PostJob creates a job opening for a verified employer and broadcasts
// it to all students. New jobs start active with a zero counter.
func (s *EmployerService) PostJob(ctx context.Context, employerID kernel.EmployerID, req job.PostJobRequest) (*job.Job, error) {
	emp, err := s.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		return nil, employer.ErrEmployerNotFound().WithDetail("employer_id", employerID.String())
	}

	if !emp.CanPostJobs() {
		return nil, employer.ErrEmployerNotVerified().WithDetail("employer_id", employerID.String())
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	newJob := &job.Job{
		CompanyID:           emp.ID,
		Company:             emp.CompanyName,
		Title:               req.Title,
		Location:            req.Location,
		JobType:             req.JobType,
		Experience:          req.Experience,
		Salary:              req.Salary,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Skills:              req.Skills,
		EligibilityCriteria: req.EligibilityCriteria,
		ApplicationDeadline: req.ApplicationDeadline,
		Status:              job.JobStatusActive,
		PostedDate:          time.Now(),
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to post job", errx.TypeInternal)
	}

	emp.RecordJobPosted(newJob.ID)
	if err := s.employerRepo.Update(ctx, emp.ID, emp); err != nil {
		logx.Errorf("posted-jobs list for employer %s not updated: %v", emp.ID, err)
	}

	if err := s.notificationRepo.Create(ctx, notification.NewJobPosting(newJob.ID, newJob.Title, newJob.Company)); err != nil {
		logx.Warnf("job posting broadcast for job %s not created: %v", newJob.ID, err)
	}

	return newJob, nil
}

// EmployerJobs retrieves all jobs posted by an employer
func (s *EmployerService) EmployerJobs(ctx context.Context, id kernel.EmployerID) ([]*job.Job, error) {
	if err := s.validateEmployerExists(ctx, id); err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListByEmployer(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list employer jobs", errx.TypeInternal)
	}
	return jobs, nil
}

// EmployerApplications retrieves the applications received across all of
// an employer's jobs
func (s *EmployerService) EmployerApplications(ctx context.Context, id kernel.EmployerID) ([]*application.Application, error) {
	jobs, err := s.EmployerJobs(ctx, id)
	if err != nil {
		return nil, err
	}

	var apps []*application.Application
	for _, j := range jobs {
		jobApps, err := s.applicationRepo.ListByJob(ctx, j.ID)
		if err != nil {
			return nil, errx.Wrap(err, "failed to list applications for employer job", errx.TypeInternal)
		}
		apps = append(apps, jobApps...)
	}
	return apps, nil
}

// EmployerDashboard summarizes an employer's jobs and the applications
// they have drawn
func (s *EmployerService) EmployerDashboard(ctx context.Context, id kernel.EmployerID) (*employer.EmployerDashboardResponse, error) {
	emp, err := s.employerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, employer.ErrEmployerNotFound().WithDetail("employer_id", id.String())
	}

	jobs, err := s.jobRepo.ListByEmployer(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list employer jobs", errx.TypeInternal)
	}

	now := time.Now()
	activeJobs := 0
	byStatus := make(map[string]int, len(application.AllStatuses()))
	for _, status := range application.AllStatuses() {
		byStatus[string(status)] = 0
	}

	totalApplications := 0
	for _, j := range jobs {
		if j.IsOpen(now) {
			activeJobs++
		}
		jobApps, err := s.applicationRepo.ListByJob(ctx, j.ID)
		if err != nil {
			return nil, errx.Wrap(err, "failed to list applications for employer job", errx.TypeInternal)
		}
		totalApplications += len(jobApps)
		for _, app := range jobApps {
			byStatus[string(app.Status)]++
		}
	}

	return &employer.EmployerDashboardResponse{
		Employer:             emp,
		TotalJobs:            len(jobs),
		ActiveJobs:           activeJobs,
		TotalApplications:    totalApplications,
		ApplicationsByStatus: byStatus,
	}, nil
}

func (s *EmployerService) validateEmployerExists(ctx context.Context, id kernel.EmployerID) error {
	exists, err := s.employerRepo.Exists(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to validate employer existence", errx.TypeInternal)
	}
	if !exists {
		return employer.ErrEmployerNotFound().WithDetail("employer_id", id.String())
	}
	return nil
}
