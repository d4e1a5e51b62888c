package statssrv

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/placement/application"
	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/notification"
	"github.com/shaheed425/jobsy/placement/stats"
)

const (
	// RecentApplicationsLimit caps the recent-applications slice
	RecentApplicationsLimit = 5

	// MostPopularJobsLimit caps the popular-jobs slice
	MostPopularJobsLimit = 5

	// DefaultClosingSoonDays is the lookahead for closing-soon queries
	DefaultClosingSoonDays = 3

	cacheTTL = time.Minute

	cacheKeyApplicationStats  = "stats:applications"
	cacheKeyJobStats          = "stats:jobs"
	cacheKeyNotificationStats = "stats:notifications"
)

// StatsService computes reporting rollups over the placement records.
// All statistics tolerate empty stores and return zeroed aggregates.
type StatsService struct {
	applicationRepo  application.Repository
	jobRepo          job.Repository
	notificationRepo notification.Repository
	cache            stats.Cache // optional, may be nil
}

// NewStatsService creates a new instance of the statistics service.
// cache may be nil to disable caching.
func NewStatsService(
	applicationRepo application.Repository,
	jobRepo job.Repository,
	notificationRepo notification.Repository,
	cache stats.Cache,
) *StatsService {
	return &StatsService{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		notificationRepo: notificationRepo,
		cache:            cache,
	}
}

// ApplicationStatistics summarizes application activity: totals, a
// per-status breakdown, monthly volumes, and the most recent submissions
func (s *StatsService) ApplicationStatistics(ctx context.Context) (*stats.ApplicationStatisticsResponse, error) {
	if cached, ok := getCached[stats.ApplicationStatisticsResponse](ctx, s.cache, cacheKeyApplicationStats); ok {
		return cached, nil
	}

	apps, err := s.applicationRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	byStatus := make(map[string]int, len(application.AllStatuses()))
	for _, status := range application.AllStatuses() {
		byStatus[string(status)] = 0
	}
	for _, app := range apps {
		byStatus[string(app.Status)]++
	}

	recent := make([]*application.Application, len(apps))
	copy(recent, apps)
	sort.SliceStable(recent, func(a, b int) bool {
		return recent[a].ApplicationDate.After(recent[b].ApplicationDate)
	})
	if len(recent) > RecentApplicationsLimit {
		recent = recent[:RecentApplicationsLimit]
	}

	resp := &stats.ApplicationStatisticsResponse{
		TotalApplications:    len(apps),
		ApplicationsByStatus: byStatus,
		ApplicationsByMonth:  GroupApplicationsByMonth(apps),
		RecentApplications:   recent,
	}

	setCached(ctx, s.cache, cacheKeyApplicationStats, resp)
	return resp, nil
}

// GroupApplicationsByMonth buckets applications by their submission
// month, keyed "YYYY-MM" with a zero-padded month
func GroupApplicationsByMonth(apps []*application.Application) map[string]int {
	byMonth := make(map[string]int)
	for _, app := range apps {
		byMonth[app.ApplicationDate.Format("2006-01")]++
	}
	return byMonth
}

// JobStatistics summarizes the job board: counts by state, type, and
// location, application totals, and the most applied-to jobs
func (s *StatsService) JobStatistics(ctx context.Context) (*stats.JobStatisticsResponse, error) {
	if cached, ok := getCached[stats.JobStatisticsResponse](ctx, s.cache, cacheKeyJobStats); ok {
		return cached, nil
	}

	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	now := time.Now()
	active, expired, totalApplications := 0, 0, 0
	byType := make(map[string]int)
	byLocation := make(map[string]int)
	for _, j := range jobs {
		if j.IsOpen(now) {
			active++
		}
		if j.IsExpired(now) {
			expired++
		}
		byType[string(j.JobType)]++
		byLocation[j.Location]++
		totalApplications += j.ApplicationsReceived
	}

	average := 0.0
	if len(jobs) > 0 {
		average = math.Round(float64(totalApplications)/float64(len(jobs))*100) / 100
	}

	popular := make([]*job.Job, len(jobs))
	copy(popular, jobs)
	sort.SliceStable(popular, func(a, b int) bool {
		return popular[a].ApplicationsReceived > popular[b].ApplicationsReceived
	})
	if len(popular) > MostPopularJobsLimit {
		popular = popular[:MostPopularJobsLimit]
	}

	resp := &stats.JobStatisticsResponse{
		TotalJobs:                 len(jobs),
		ActiveJobs:                active,
		ExpiredJobs:               expired,
		JobsByType:                byType,
		JobsByLocation:            byLocation,
		TotalApplications:         totalApplications,
		AverageApplicationsPerJob: average,
		MostPopularJobs:           popular,
	}

	setCached(ctx, s.cache, cacheKeyJobStats, resp)
	return resp, nil
}

// NotificationStatistics summarizes the notification store
func (s *StatsService) NotificationStatistics(ctx context.Context) (*stats.NotificationStatisticsResponse, error) {
	if cached, ok := getCached[stats.NotificationStatisticsResponse](ctx, s.cache, cacheKeyNotificationStats); ok {
		return cached, nil
	}

	items, err := s.notificationRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list notifications", errx.TypeInternal)
	}

	unread := 0
	byType := make(map[string]int)
	byPriority := make(map[string]int)
	for _, n := range items {
		if !n.IsRead {
			unread++
		}
		byType[string(n.Type)]++
		byPriority[string(n.Priority)]++
	}

	resp := &stats.NotificationStatisticsResponse{
		TotalNotifications:  len(items),
		UnreadNotifications: unread,
		ByType:              byType,
		ByPriority:          byPriority,
	}

	setCached(ctx, s.cache, cacheKeyNotificationStats, resp)
	return resp, nil
}

// ClosingSoonJobs lists open jobs whose deadline falls within the next
// `days` days, soonest deadline first. Non-positive days uses the
// default window.
func (s *StatsService) ClosingSoonJobs(ctx context.Context, days int) ([]*job.Job, error) {
	if days <= 0 {
		days = DefaultClosingSoonDays
	}

	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	now := time.Now()
	closing := make([]*job.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Status == job.JobStatusActive && j.IsDeadlineApproaching(now, days) {
			closing = append(closing, j)
		}
	}

	sort.SliceStable(closing, func(a, b int) bool {
		return closing[a].ApplicationDeadline.Before(closing[b].ApplicationDeadline)
	})
	return closing, nil
}

// ============================================================================
// Cache helpers
// ============================================================================

func getCached[T any](ctx context.Context, cache stats.Cache, key string) (*T, bool) {
	if cache == nil {
		return nil, false
	}
	payload, ok := cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, false
	}
	return &out, true
}

func setCached(ctx context.Context, cache stats.Cache, key string, value any) {
	if cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	cache.Set(ctx, key, payload, cacheTTL)
}
