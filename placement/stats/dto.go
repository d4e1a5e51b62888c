// Package stats holds the read-only reporting views computed over the
// placement records.
package stats

import (
	"github.com/shaheed425/jobsy/placement/application"
	"github.com/shaheed425/jobsy/placement/job"
)

// ApplicationStatisticsResponse - rollup of application activity
type ApplicationStatisticsResponse struct {
	TotalApplications    int                        `json:"totalApplications"`
	ApplicationsByStatus map[string]int             `json:"applicationsByStatus"`
	ApplicationsByMonth  map[string]int             `json:"applicationsByMonth"`
	RecentApplications   []*application.Application `json:"recentApplications"`
}

// JobStatisticsResponse - rollup of the job board
type JobStatisticsResponse struct {
	TotalJobs                 int            `json:"totalJobs"`
	ActiveJobs                int            `json:"activeJobs"`
	ExpiredJobs               int            `json:"expiredJobs"`
	JobsByType                map[string]int `json:"jobsByType"`
	JobsByLocation            map[string]int `json:"jobsByLocation"`
	TotalApplications         int            `json:"totalApplications"`
	AverageApplicationsPerJob float64        `json:"averageApplicationsPerJob"`
	MostPopularJobs           []*job.Job     `json:"mostPopularJobs"`
}

// NotificationStatisticsResponse - rollup of the notification store
type NotificationStatisticsResponse struct {
	TotalNotifications  int            `json:"totalNotifications"`
	UnreadNotifications int            `json:"unreadNotifications"`
	ByType              map[string]int `json:"byType"`
	ByPriority          map[string]int `json:"byPriority"`
}
