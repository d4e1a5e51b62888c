package matching

import (
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/job"
)

// SearchFilters are independent, composable job search criteria.
// Zero values disable the corresponding filter.
type SearchFilters struct {
	Location   string            `json:"location,omitempty"`   // substring, case-insensitive
	JobType    job.JobType       `json:"jobType,omitempty"`    // exact match
	Company    string            `json:"company,omitempty"`    // substring, case-insensitive
	Experience string            `json:"experience,omitempty"` // substring, case-insensitive
	MinSalary  int               `json:"minSalary,omitempty"`  // floor on the parsed salary figure
	Skills     []string          `json:"skills,omitempty"`     // any-match substring overlap
	Department kernel.Department `json:"department,omitempty"` // membership in job criteria
}

// ScoredJob - a recommended job with its heuristic score
type ScoredJob struct {
	*job.Job
	RecommendationScore float64 `json:"recommendationScore"`
}
