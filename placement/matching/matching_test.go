package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/student"
)

func sampleStudent() *student.Student {
	return &student.Student{
		Name:       "Asha Verma",
		Department: kernel.DepartmentComputerScience,
		Year:       4,
		CGPA:       8.5,
		IsEligible: true,
		Skills:     []string{"JavaScript", "React", "Node.js"},
	}
}

func TestIsEligibleForJob(t *testing.T) {
	tests := []struct {
		name     string
		criteria *job.EligibilityCriteria
		want     bool
	}{
		{
			name:     "nil criteria allows everyone",
			criteria: nil,
			want:     true,
		},
		{
			name: "all checks pass",
			criteria: &job.EligibilityCriteria{
				MinCGPA:     7.5,
				Departments: []kernel.Department{kernel.DepartmentComputerScience},
				Year:        4,
			},
			want: true,
		},
		{
			name: "cgpa below minimum",
			criteria: &job.EligibilityCriteria{
				MinCGPA:     9.0,
				Departments: []kernel.Department{kernel.DepartmentComputerScience},
			},
			want: false,
		},
		{
			name: "department not in list",
			criteria: &job.EligibilityCriteria{
				Departments: []kernel.Department{kernel.DepartmentMechanical},
			},
			want: false,
		},
		{
			name: "year below requirement only when required year is set",
			criteria: &job.EligibilityCriteria{
				Year: 5,
			},
			want: false,
		},
		{
			name: "empty departments list allows any department",
			criteria: &job.EligibilityCriteria{
				MinCGPA:     7.0,
				Departments: []kernel.Department{},
			},
			want: true,
		},
		{
			name: "zero min cgpa means no cgpa restriction",
			criteria: &job.EligibilityCriteria{
				Departments: []kernel.Department{kernel.DepartmentComputerScience},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEligibleForJob(sampleStudent(), tt.criteria))
		})
	}
}

func TestScore_SkillDepartmentAndCGPA(t *testing.T) {
	now := time.Now()
	st := sampleStudent()

	j := &job.Job{
		Skills: []string{"JavaScript", "React", "AWS"},
		EligibilityCriteria: &job.EligibilityCriteria{
			MinCGPA:     7.0,
			Departments: []kernel.Department{kernel.DepartmentComputerScience},
		},
		PostedDate: now.AddDate(0, 0, -30),
	}

	// 2 skill matches (+20), department (+20), 1.5 CGPA margin (+7.5)
	assert.InDelta(t, 47.5, Score(st, j, now), 0.001)
}

func TestScore_RecencyBonus(t *testing.T) {
	now := time.Now()
	st := sampleStudent()
	st.Skills = nil

	fresh := &job.Job{PostedDate: now.AddDate(0, 0, -2)}
	stale := &job.Job{PostedDate: now.AddDate(0, 0, -8)}

	assert.Equal(t, 15.0, Score(st, fresh, now))
	assert.Equal(t, 0.0, Score(st, stale, now))
}

func TestScore_SkillMatchIsSubstringAndCaseInsensitive(t *testing.T) {
	now := time.Now()
	st := sampleStudent()
	st.Skills = []string{"Advanced JavaScript Programming"}

	j := &job.Job{
		Skills:     []string{"javascript"},
		PostedDate: now.AddDate(0, 0, -30),
	}

	assert.Equal(t, 10.0, Score(st, j, now))
}

func TestScore_NoDepartmentBonusForEmptyList(t *testing.T) {
	now := time.Now()
	st := sampleStudent()
	st.Skills = nil

	j := &job.Job{
		EligibilityCriteria: &job.EligibilityCriteria{},
		PostedDate:          now.AddDate(0, 0, -30),
	}

	// Empty departments admit everyone but advertise no preference
	assert.Equal(t, 0.0, Score(st, j, now))
}

func TestParseSalaryFloor(t *testing.T) {
	tests := []struct {
		salary string
		want   int
		ok     bool
	}{
		{"$85,000 - $100,000 per year", 85000, true},
		{"$9000", 9000, true},
		{"Competitive", 0, false},
		{"", 0, false},
		{"up to $1,200 monthly", 1200, true},
	}

	for _, tt := range tests {
		t.Run(tt.salary, func(t *testing.T) {
			got, ok := ParseSalaryFloor(tt.salary)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
