package statssrv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/application"
	"github.com/shaheed425/jobsy/placement/application/applicationinfra"
	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/job/jobinfra"
	"github.com/shaheed425/jobsy/placement/notification"
	"github.com/shaheed425/jobsy/placement/notification/notificationinfra"
)

type fixture struct {
	applications  *applicationinfra.MemoryApplicationRepository
	jobs          *jobinfra.MemoryJobRepository
	notifications *notificationinfra.MemoryNotificationRepository
	service       *StatsService
}

func newFixture(cache *memoryCache) *fixture {
	f := &fixture{
		applications:  applicationinfra.NewMemoryApplicationRepository(),
		jobs:          jobinfra.NewMemoryJobRepository(),
		notifications: notificationinfra.NewMemoryNotificationRepository(),
	}
	if cache != nil {
		f.service = NewStatsService(f.applications, f.jobs, f.notifications, cache)
	} else {
		f.service = NewStatsService(f.applications, f.jobs, f.notifications, nil)
	}
	return f
}

// memoryCache is a map-backed stand-in for the redis cache
type memoryCache struct {
	entries map[string][]byte
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	payload, ok := c.entries[key]
	return payload, ok
}

func (c *memoryCache) Set(_ context.Context, key string, payload []byte, _ time.Duration) {
	c.entries[key] = payload
	c.sets++
}

func (f *fixture) addApplication(t *testing.T, studentID, jobID int64, status application.ApplicationStatus, submitted time.Time) {
	t.Helper()
	require.NoError(t, f.applications.Create(context.Background(), &application.Application{
		StudentID:       kernel.NewStudentID(studentID),
		JobID:           kernel.NewJobID(jobID),
		Status:          status,
		ApplicationDate: submitted,
	}))
}

func (f *fixture) addJob(t *testing.T, j *job.Job) *job.Job {
	t.Helper()
	if j.JobType == "" {
		j.JobType = job.JobTypeFullTime
	}
	if j.Status == "" {
		j.Status = job.JobStatusActive
	}
	if j.Location == "" {
		j.Location = "Pune"
	}
	if j.ApplicationDeadline.IsZero() {
		j.ApplicationDeadline = time.Now().AddDate(0, 1, 0)
	}
	j.PostedDate = time.Now().AddDate(0, 0, -10)
	require.NoError(t, f.jobs.Create(context.Background(), j))
	return j
}

func TestApplicationStatistics_EmptyStore(t *testing.T) {
	f := newFixture(nil)

	got, err := f.service.ApplicationStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalApplications)
	assert.Equal(t, 0, got.ApplicationsByStatus["under_review"])
	assert.Empty(t, got.ApplicationsByMonth)
	assert.Empty(t, got.RecentApplications)
}

func TestApplicationStatistics_BreakdownAndRecents(t *testing.T) {
	f := newFixture(nil)
	base := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		status := application.ApplicationStatusUnderReview
		if i < 2 {
			status = application.ApplicationStatusShortlisted
		}
		f.addApplication(t, int64(i+1), 1, status, base.Add(time.Duration(i)*time.Hour))
	}

	got, err := f.service.ApplicationStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, got.TotalApplications)
	assert.Equal(t, 5, got.ApplicationsByStatus["under_review"])
	assert.Equal(t, 2, got.ApplicationsByStatus["shortlisted"])
	assert.Equal(t, 0, got.ApplicationsByStatus["accepted"])

	require.Len(t, got.RecentApplications, RecentApplicationsLimit)
	for i := 1; i < len(got.RecentApplications); i++ {
		assert.False(t, got.RecentApplications[i].ApplicationDate.After(got.RecentApplications[i-1].ApplicationDate))
	}
}

func TestGroupApplicationsByMonth_ZeroPadsTheMonth(t *testing.T) {
	apps := []*application.Application{
		{ApplicationDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{ApplicationDate: time.Date(2024, time.March, 28, 0, 0, 0, 0, time.UTC)},
		{ApplicationDate: time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC)},
	}

	byMonth := GroupApplicationsByMonth(apps)
	assert.Equal(t, map[string]int{"2024-03": 2, "2024-11": 1}, byMonth)
}

func TestJobStatistics_AverageIsRoundedToTwoDecimals(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	f.addJob(t, &job.Job{Title: "A", ApplicationsReceived: 1})
	f.addJob(t, &job.Job{Title: "B", ApplicationsReceived: 1})
	f.addJob(t, &job.Job{Title: "C", ApplicationsReceived: 0})

	got, err := f.service.JobStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalJobs)
	assert.Equal(t, 2, got.TotalApplications)
	assert.Equal(t, 0.67, got.AverageApplicationsPerJob)
}

func TestJobStatistics_CountsAndPopularityTruncation(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		j := &job.Job{Title: "Role", ApplicationsReceived: i}
		if i == 0 {
			j.Status = job.JobStatusInactive
		}
		if i == 1 {
			j.ApplicationDeadline = time.Now().AddDate(0, 0, -1)
		}
		f.addJob(t, j)
	}

	got, err := f.service.JobStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, got.TotalJobs)
	assert.Equal(t, 5, got.ActiveJobs) // one inactive, one past deadline
	assert.Equal(t, 1, got.ExpiredJobs)
	assert.Equal(t, 7, got.JobsByType["Full-time"])
	assert.Equal(t, 7, got.JobsByLocation["Pune"])

	require.Len(t, got.MostPopularJobs, MostPopularJobsLimit)
	assert.Equal(t, 6, got.MostPopularJobs[0].ApplicationsReceived)
	assert.Equal(t, 2, got.MostPopularJobs[4].ApplicationsReceived)
}

func TestJobStatistics_EmptyStoreHasZeroAverage(t *testing.T) {
	f := newFixture(nil)

	got, err := f.service.JobStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalJobs)
	assert.Equal(t, 0.0, got.AverageApplicationsPerJob)
	assert.Empty(t, got.MostPopularJobs)
}

func TestNotificationStatistics(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		n := notification.NewProfileCreated(kernel.NewStudentID(int64(i + 1)))
		require.NoError(t, f.notifications.Create(ctx, n))
	}
	created, err := f.notifications.ListByRecipient(ctx, notification.RecipientStudent, 1)
	require.NoError(t, err)
	_, err = f.notifications.MarkAsRead(ctx, created[0].ID)
	require.NoError(t, err)

	got, err := f.service.NotificationStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalNotifications)
	assert.Equal(t, 2, got.UnreadNotifications)
	assert.Equal(t, 3, got.ByType["profile_created"])
	assert.Equal(t, 3, got.ByPriority["medium"])
}

func TestClosingSoonJobs_WindowAndOrdering(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	now := time.Now()

	later := f.addJob(t, &job.Job{Title: "Later", ApplicationDeadline: now.Add(60 * time.Hour)})
	sooner := f.addJob(t, &job.Job{Title: "Sooner", ApplicationDeadline: now.Add(12 * time.Hour)})
	f.addJob(t, &job.Job{Title: "Far", ApplicationDeadline: now.AddDate(0, 0, 10)})
	inactive := &job.Job{Title: "Paused", Status: job.JobStatusInactive, ApplicationDeadline: now.Add(6 * time.Hour)}
	f.addJob(t, inactive)

	closing, err := f.service.ClosingSoonJobs(ctx, 0) // default window
	require.NoError(t, err)
	require.Len(t, closing, 2)
	assert.Equal(t, sooner.ID, closing[0].ID)
	assert.Equal(t, later.ID, closing[1].ID)

	wide, err := f.service.ClosingSoonJobs(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, wide, 3)
}

func TestApplicationStatistics_ServesFromCacheOnRepeat(t *testing.T) {
	cache := newMemoryCache()
	f := newFixture(cache)
	ctx := context.Background()

	f.addApplication(t, 1, 1, application.ApplicationStatusUnderReview, time.Now())

	first, err := f.service.ApplicationStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalApplications)
	assert.Equal(t, 1, cache.sets)

	// New data is invisible while the cached payload is live
	f.addApplication(t, 2, 1, application.ApplicationStatusUnderReview, time.Now())

	second, err := f.service.ApplicationStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, second.TotalApplications)
	assert.Equal(t, 1, cache.sets)
}
