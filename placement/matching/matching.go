// Package matching holds the pure job-student matching rules: per-job
// eligibility evaluation, search filtering, and the recommendation
// scoring heuristic.
package matching

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/student"
)

// Recommendation scoring weights. The ranking is a best-effort
// heuristic, not a guaranteed-optimal matching.
const (
	scorePerMatchingSkill = 10.0
	scoreDepartmentMatch  = 20.0
	scorePerCGPAMargin    = 5.0
	scoreRecencyBonus     = 15.0
	recencyWindowDays     = 7
)

// IsEligibleForJob decides whether a student satisfies a job's optional
// criteria. Absent criteria means no restriction. The three checks are
// independent and AND-combined; any failure short-circuits to false.
// Callers must gate on the student's global eligibility first.
func IsEligibleForJob(s *student.Student, criteria *job.EligibilityCriteria) bool {
	if criteria == nil {
		return true
	}
	if criteria.MinCGPA > 0 && s.CGPA < criteria.MinCGPA {
		return false
	}
	if !criteria.AllowsDepartment(s.Department) {
		return false
	}
	if criteria.Year > 0 && s.Year < criteria.Year {
		return false
	}
	return true
}

// Score ranks a candidate job for a student:
//   - +10 per job skill some student skill contains (case-insensitive)
//   - +20 when the job's eligible departments include the student's
//   - +5 per CGPA point above the job's minimum (competitive fit, floored at 0)
//   - +15 when the job was posted within the last 7 days
func Score(s *student.Student, j *job.Job, now time.Time) float64 {
	var score float64

	for _, jobSkill := range j.Skills {
		if studentHasSkill(s.Skills, jobSkill) {
			score += scorePerMatchingSkill
		}
	}

	if c := j.EligibilityCriteria; c != nil {
		if len(c.Departments) > 0 && c.AllowsDepartment(s.Department) {
			score += scoreDepartmentMatch
		}
		if c.MinCGPA > 0 && s.CGPA > c.MinCGPA {
			score += scorePerCGPAMargin * (s.CGPA - c.MinCGPA)
		}
	}

	if now.Sub(j.PostedDate) < recencyWindowDays*24*time.Hour {
		score += scoreRecencyBonus
	}

	return score
}

func studentHasSkill(studentSkills []string, jobSkill string) bool {
	want := strings.ToLower(jobSkill)
	for _, have := range studentSkills {
		if strings.Contains(strings.ToLower(have), want) {
			return true
		}
	}
	return false
}

// First $-prefixed number in a free-text salary, commas allowed
var salaryPattern = regexp.MustCompile(`\$(\d+,?\d*)`)

// ParseSalaryFloor extracts the leading currency amount from a salary
// string like "$85,000 - $100,000 per year". The second return is false
// when no amount can be parsed; parse failure is not exclusion, so
// callers let unparseable jobs pass salary filters.
func ParseSalaryFloor(salary string) (int, bool) {
	m := salaryPattern.FindStringSubmatch(salary)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, false
	}
	return amount, true
}
