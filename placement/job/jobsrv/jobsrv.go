package jobsrv

import (
	"context"
	"time"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/application"
	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/matching"
	"github.com/shaheed425/jobsy/placement/student"
)

// DeadlineApproachingDays is the window used when flagging jobs whose
// deadline is near
const DeadlineApproachingDays = 3

// JobService serves job reads and employer-side job edits. Posting new
// jobs lives with the employer service, which owns the verification gate.
type JobService struct {
	jobRepo         job.Repository
	studentRepo     student.Repository
	applicationRepo application.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(
	jobRepo job.Repository,
	studentRepo student.Repository,
	applicationRepo application.Repository,
) *JobService {
	return &JobService{
		jobRepo:         jobRepo,
		studentRepo:     studentRepo,
		applicationRepo: applicationRepo,
	}
}

// GetJob retrieves a job by ID
func (s *JobService) GetJob(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
	}
	return j, nil
}

// ListJobs retrieves all jobs regardless of status
func (s *JobService) ListJobs(ctx context.Context) ([]*job.Job, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}
	return jobs, nil
}

// UpdateJob applies a partial edit to a posted job
func (s *JobService) UpdateJob(ctx context.Context, id kernel.JobID, req job.UpdateJobRequest) (*job.Job, error) {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
	}

	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.Experience != nil {
		j.Experience = *req.Experience
	}
	if req.Salary != nil {
		j.Salary = *req.Salary
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Status != nil {
		// Expired is derived from the deadline, never written
		if *req.Status != job.JobStatusActive && *req.Status != job.JobStatusInactive {
			return nil, job.ErrInvalidJob().WithMessage("Invalid job status").WithDetail("status", string(*req.Status))
		}
		j.Status = *req.Status
	}
	if req.ApplicationDeadline != nil {
		j.ApplicationDeadline = *req.ApplicationDeadline
	}

	if err := s.jobRepo.Update(ctx, id, j); err != nil {
		return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}

	return j, nil
}

// JobDetails returns a job with its derived read-side context: the
// application count, how many students could apply, and deadline state
func (s *JobService) JobDetails(ctx context.Context, id kernel.JobID) (*job.JobDetailsResponse, error) {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
	}

	count, err := s.applicationRepo.CountByJob(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count job applications", errx.TypeInternal)
	}

	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list students", errx.TypeInternal)
	}

	eligibleCount := 0
	for _, st := range students {
		if st.IsEligible && matching.IsEligibleForJob(st, j.EligibilityCriteria) {
			eligibleCount++
		}
	}

	now := time.Now()
	return &job.JobDetailsResponse{
		Job:                   j,
		ApplicationCount:      count,
		EligibleStudentCount:  eligibleCount,
		IsDeadlineApproaching: j.IsDeadlineApproaching(now, DeadlineApproachingDays),
		DaysUntilDeadline:     j.DaysUntilDeadline(now),
		EffectiveStatus:       j.EffectiveStatus(now),
	}, nil
}
