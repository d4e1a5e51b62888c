package jobsrv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/application"
	"github.com/shaheed425/jobsy/placement/application/applicationinfra"
	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/job/jobinfra"
	"github.com/shaheed425/jobsy/placement/student"
	"github.com/shaheed425/jobsy/placement/student/studentinfra"
)

type fixture struct {
	jobs         *jobinfra.MemoryJobRepository
	students     *studentinfra.MemoryStudentRepository
	applications *applicationinfra.MemoryApplicationRepository
	service      *JobService
}

func newFixture() *fixture {
	f := &fixture{
		jobs:         jobinfra.NewMemoryJobRepository(),
		students:     studentinfra.NewMemoryStudentRepository(),
		applications: applicationinfra.NewMemoryApplicationRepository(),
	}
	f.service = NewJobService(f.jobs, f.students, f.applications)
	return f
}

func (f *fixture) addJob(t *testing.T, deadline time.Time) *job.Job {
	t.Helper()
	j := &job.Job{
		Company:             "Acme Corp",
		Title:               "Backend Engineer",
		Location:            "Pune",
		JobType:             job.JobTypeFullTime,
		Status:              job.JobStatusActive,
		PostedDate:          time.Now().AddDate(0, 0, -5),
		ApplicationDeadline: deadline,
	}
	require.NoError(t, f.jobs.Create(context.Background(), j))
	return j
}

func TestUpdateJob_RejectsDerivedExpiredStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	j := f.addJob(t, time.Now().AddDate(0, 1, 0))

	expired := job.JobStatusExpired
	_, err := f.service.UpdateJob(ctx, j.ID, job.UpdateJobRequest{Status: &expired})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
	assert.Contains(t, err.Error(), "Invalid job status")

	inactive := job.JobStatusInactive
	updated, err := f.service.UpdateJob(ctx, j.ID, job.UpdateJobRequest{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, job.JobStatusInactive, updated.Status)
}

func TestUpdateJob_PartialFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	j := f.addJob(t, time.Now().AddDate(0, 1, 0))

	salary := "$75,000 per year"
	updated, err := f.service.UpdateJob(ctx, j.ID, job.UpdateJobRequest{Salary: &salary})
	require.NoError(t, err)
	assert.Equal(t, salary, updated.Salary)
	assert.Equal(t, j.Title, updated.Title)
}

func TestJobDetails(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	j := f.addJob(t, time.Now().Add(48*time.Hour))
	j.EligibilityCriteria = &job.EligibilityCriteria{MinCGPA: 8.0}
	require.NoError(t, f.jobs.Update(ctx, j.ID, j))

	require.NoError(t, f.students.Create(ctx, &student.Student{
		Name: "Asha", Department: kernel.DepartmentComputerScience,
		Year: 4, CGPA: 8.5, IsEligible: true,
	}))
	require.NoError(t, f.students.Create(ctx, &student.Student{
		Name: "Ravi", Department: kernel.DepartmentComputerScience,
		Year: 4, CGPA: 7.2, IsEligible: true, // below the job's bar
	}))

	require.NoError(t, f.applications.Create(ctx, &application.Application{
		StudentID: kernel.NewStudentID(1),
		JobID:     j.ID,
		Status:    application.ApplicationStatusUnderReview,
	}))

	details, err := f.service.JobDetails(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, details.ApplicationCount)
	assert.Equal(t, 1, details.EligibleStudentCount)
	assert.True(t, details.IsDeadlineApproaching)
	assert.Equal(t, 2, details.DaysUntilDeadline)
	assert.Equal(t, job.JobStatusActive, details.EffectiveStatus)
}

func TestGetJob_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetJob(context.Background(), kernel.NewJobID(42))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
}
