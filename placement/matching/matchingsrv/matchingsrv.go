package matchingsrv

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/matching"
	"github.com/shaheed425/jobsy/placement/student"
)

// DefaultRecommendationLimit caps recommendation lists when the caller
// does not ask for a specific size
const DefaultRecommendationLimit = 5

// MatchingService computes candidate job sets for students. It holds no
// state beyond its collaborators; every call re-reads the stores.
type MatchingService struct {
	studentRepo student.Repository
	jobRepo     job.Repository
}

// NewMatchingService creates a new instance of the matching service
func NewMatchingService(studentRepo student.Repository, jobRepo job.Repository) *MatchingService {
	return &MatchingService{
		studentRepo: studentRepo,
		jobRepo:     jobRepo,
	}
}

// ActiveJobs returns jobs that are active and whose deadline has not
// passed, newest first
func (s *MatchingService) ActiveJobs(ctx context.Context) ([]*job.Job, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	now := time.Now()
	open := make([]*job.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.IsOpen(now) {
			open = append(open, j)
		}
	}

	sortByPostedDateDesc(open)
	return open, nil
}

// JobsForStudent returns the open jobs a student may apply to: the
// student must be globally eligible, must not have applied already, and
// must pass each job's own criteria.
func (s *MatchingService) JobsForStudent(ctx context.Context, studentID kernel.StudentID) ([]*job.Job, error) {
	st, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, student.ErrStudentNotFound().WithDetail("student_id", studentID.String())
	}

	open, err := s.ActiveJobs(ctx)
	if err != nil {
		return nil, err
	}

	if !st.IsEligible {
		return []*job.Job{}, nil
	}

	eligible := make([]*job.Job, 0, len(open))
	for _, j := range open {
		if st.HasApplied(j.ID) {
			continue
		}
		if !matching.IsEligibleForJob(st, j.EligibilityCriteria) {
			continue
		}
		eligible = append(eligible, j)
	}

	return eligible, nil
}

// SearchJobs applies the independent filters and sorts the result by
// posted date, newest first
func (s *MatchingService) SearchJobs(ctx context.Context, filters matching.SearchFilters) ([]*job.Job, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	matched := make([]*job.Job, 0, len(jobs))
	for _, j := range jobs {
		if matchesFilters(j, filters) {
			matched = append(matched, j)
		}
	}

	sortByPostedDateDesc(matched)
	return matched, nil
}

// RecommendedJobs scores the student's candidate jobs and returns the
// top `limit`, ties kept in candidate order. Best-effort heuristic.
func (s *MatchingService) RecommendedJobs(ctx context.Context, studentID kernel.StudentID, limit int) ([]*matching.ScoredJob, error) {
	st, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, student.ErrStudentNotFound().WithDetail("student_id", studentID.String())
	}

	candidates, err := s.JobsForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	now := time.Now()
	scored := make([]*matching.ScoredJob, 0, len(candidates))
	for _, j := range candidates {
		scored = append(scored, &matching.ScoredJob{
			Job:                 j,
			RecommendationScore: matching.Score(st, j, now),
		})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].RecommendationScore > scored[b].RecommendationScore
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// EligibleStudentsForJob lists globally eligible students who satisfy
// the given job criteria
func (s *MatchingService) EligibleStudentsForJob(ctx context.Context, criteria *job.EligibilityCriteria) ([]*student.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list students", errx.TypeInternal)
	}

	eligible := make([]*student.Student, 0, len(students))
	for _, st := range students {
		if !st.IsEligible {
			continue
		}
		if !matching.IsEligibleForJob(st, criteria) {
			continue
		}
		eligible = append(eligible, st)
	}
	return eligible, nil
}

// ============================================================================
// Filters
// ============================================================================

func matchesFilters(j *job.Job, f matching.SearchFilters) bool {
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	if f.JobType != "" && j.JobType != f.JobType {
		return false
	}
	if f.Company != "" && !containsFold(j.Company, f.Company) {
		return false
	}
	if f.Experience != "" && !containsFold(j.Experience, f.Experience) {
		return false
	}
	if f.MinSalary > 0 {
		// Unparseable salary strings pass the filter by contract
		if floor, ok := matching.ParseSalaryFloor(j.Salary); ok && floor < f.MinSalary {
			return false
		}
	}
	if len(f.Skills) > 0 && !skillsOverlap(j.Skills, f.Skills) {
		return false
	}
	if f.Department != "" {
		if j.EligibilityCriteria == nil || len(j.EligibilityCriteria.Departments) == 0 {
			return false
		}
		if !j.EligibilityCriteria.AllowsDepartment(f.Department) {
			return false
		}
	}
	return true
}

// skillsOverlap reports whether any job skill contains any filter skill
func skillsOverlap(jobSkills, filterSkills []string) bool {
	for _, js := range jobSkills {
		for _, fs := range filterSkills {
			if containsFold(js, fs) {
				return true
			}
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortByPostedDateDesc(jobs []*job.Job) {
	sort.SliceStable(jobs, func(a, b int) bool {
		return jobs[a].PostedDate.After(jobs[b].PostedDate)
	})
}
