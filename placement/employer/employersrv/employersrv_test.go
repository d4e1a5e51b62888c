package employersrv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/placement/application/applicationinfra"
	"github.com/shaheed425/jobsy/placement/employer"
	"github.com/shaheed425/jobsy/placement/employer/employerinfra"
	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/job/jobinfra"
	"github.com/shaheed425/jobsy/placement/notification"
	"github.com/shaheed425/jobsy/placement/notification/notificationinfra"
)

type fixture struct {
	employers     *employerinfra.MemoryEmployerRepository
	jobs          *jobinfra.MemoryJobRepository
	applications  *applicationinfra.MemoryApplicationRepository
	notifications *notificationinfra.MemoryNotificationRepository
	service       *EmployerService
}

func newFixture() *fixture {
	f := &fixture{
		employers:     employerinfra.NewMemoryEmployerRepository(),
		jobs:          jobinfra.NewMemoryJobRepository(),
		applications:  applicationinfra.NewMemoryApplicationRepository(),
		notifications: notificationinfra.NewMemoryNotificationRepository(),
	}
	f.service = NewEmployerService(f.employers, f.jobs, f.applications, f.notifications)
	return f
}

func validRegistration() employer.RegisterEmployerRequest {
	return employer.RegisterEmployerRequest{
		CompanyName:   "Acme Corp",
		Email:         "hr@acme.example",
		Phone:         "0201234567",
		Website:       "https://acme.example",
		Address:       "1 Industrial Way",
		Industry:      "Software",
		ContactPerson: "Dana Smith",
	}
}

func validJobPosting() job.PostJobRequest {
	return job.PostJobRequest{
		Title:               "Backend Engineer",
		Location:            "Pune",
		JobType:             job.JobTypeFullTime,
		Experience:          "0-2 years",
		Salary:              "$60,000 per year",
		Description:         "Build placement services",
		Requirements:        []string{"Go", "SQL"},
		Skills:              []string{"Go"},
		ApplicationDeadline: time.Now().AddDate(0, 1, 0),
	}
}

func TestRegisterEmployer_StartsUnverified(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	emp, err := f.service.RegisterEmployer(ctx, validRegistration())
	require.NoError(t, err)

	assert.False(t, emp.IsVerified)
	assert.NotNil(t, emp.JobsPosted)

	notes, err := f.notifications.ListByRecipient(ctx, notification.RecipientEmployer, emp.ID.Int64())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, notification.TypeCompanyRegistration, notes[0].Type)
}

func TestRegisterEmployer_RejectsBadWebsite(t *testing.T) {
	f := newFixture()

	req := validRegistration()
	req.Website = "not a url"
	_, err := f.service.RegisterEmployer(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid website URL")
}

func TestPostJob_RequiresVerification(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	emp, err := f.service.RegisterEmployer(ctx, validRegistration())
	require.NoError(t, err)

	_, err = f.service.PostJob(ctx, emp.ID, validJobPosting())
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeBusiness))
	assert.Contains(t, err.Error(), "Company must be verified to post jobs")

	// Nothing was created or recorded
	jobs, err := f.jobs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	unchanged, err := f.employers.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Empty(t, unchanged.JobsPosted)
}

func TestVerifyEmployer_IsOneWay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	emp, err := f.service.RegisterEmployer(ctx, validRegistration())
	require.NoError(t, err)

	verified, err := f.service.VerifyEmployer(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	notes, err := f.notifications.ListByRecipient(ctx, notification.RecipientEmployer, emp.ID.Int64())
	require.NoError(t, err)
	require.Len(t, notes, 2) // registration + verification
	assert.Equal(t, notification.TypeCompanyVerification, notes[1].Type)
	assert.Equal(t, notification.PriorityHigh, notes[1].Priority)

	_, err = f.service.VerifyEmployer(ctx, emp.ID)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeConflict))
}

func TestPostJob_CreatesActiveJobAndBroadcasts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	emp, err := f.service.RegisterEmployer(ctx, validRegistration())
	require.NoError(t, err)
	_, err = f.service.VerifyEmployer(ctx, emp.ID)
	require.NoError(t, err)

	j, err := f.service.PostJob(ctx, emp.ID, validJobPosting())
	require.NoError(t, err)

	assert.Equal(t, job.JobStatusActive, j.Status)
	assert.Equal(t, 0, j.ApplicationsReceived)
	assert.Equal(t, emp.ID, j.CompanyID)
	assert.Equal(t, "Acme Corp", j.Company)
	assert.False(t, j.PostedDate.IsZero())

	updated, err := f.employers.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, updated.JobsPosted, 1)
	assert.Equal(t, j.ID, updated.JobsPosted[0])

	broadcasts, err := f.notifications.ListByRecipient(ctx, notification.RecipientAllStudents, 0)
	require.NoError(t, err)
	require.Len(t, broadcasts, 1)
	assert.Equal(t, notification.TypeJobPosting, broadcasts[0].Type)
	assert.Equal(t, "New Job Posted: Backend Engineer", broadcasts[0].Title)
	assert.Equal(t, "Acme Corp has posted a new Backend Engineer position. Apply now!", broadcasts[0].Message)
}

func TestPostJob_ValidatesCriteria(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	emp, err := f.service.RegisterEmployer(ctx, validRegistration())
	require.NoError(t, err)
	_, err = f.service.VerifyEmployer(ctx, emp.ID)
	require.NoError(t, err)

	req := validJobPosting()
	req.EligibilityCriteria = &job.EligibilityCriteria{MinCGPA: 11}
	_, err = f.service.PostJob(ctx, emp.ID, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Valid minimum CGPA is required (0-10)")

	req.EligibilityCriteria = &job.EligibilityCriteria{MinCGPA: 7}
	_, err = f.service.PostJob(ctx, emp.ID, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "At least one department must be specified")
}

func TestEmployerDashboard(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	emp, err := f.service.RegisterEmployer(ctx, validRegistration())
	require.NoError(t, err)
	_, err = f.service.VerifyEmployer(ctx, emp.ID)
	require.NoError(t, err)

	_, err = f.service.PostJob(ctx, emp.ID, validJobPosting())
	require.NoError(t, err)

	second, err := f.service.PostJob(ctx, emp.ID, validJobPosting())
	require.NoError(t, err)
	second.Status = job.JobStatusInactive
	require.NoError(t, f.jobs.Update(ctx, second.ID, second))

	dashboard, err := f.service.EmployerDashboard(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, dashboard.TotalJobs)
	assert.Equal(t, 1, dashboard.ActiveJobs)
	assert.Equal(t, 0, dashboard.TotalApplications)
	assert.Equal(t, 0, dashboard.ApplicationsByStatus["under_review"])
}
