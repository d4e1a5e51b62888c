package studentsrv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/application"
	"github.com/shaheed425/jobsy/placement/application/applicationinfra"
	"github.com/shaheed425/jobsy/placement/notification"
	"github.com/shaheed425/jobsy/placement/notification/notificationinfra"
	"github.com/shaheed425/jobsy/placement/student"
	"github.com/shaheed425/jobsy/placement/student/studentinfra"
)

func newService() (*StudentService, *studentinfra.MemoryStudentRepository, *applicationinfra.MemoryApplicationRepository, *notificationinfra.MemoryNotificationRepository) {
	students := studentinfra.NewMemoryStudentRepository()
	applications := applicationinfra.NewMemoryApplicationRepository()
	notifications := notificationinfra.NewMemoryNotificationRepository()
	return NewStudentService(students, applications, notifications), students, applications, notifications
}

func validRequest() student.RegisterStudentRequest {
	return student.RegisterStudentRequest{
		Name:       "Asha Verma",
		Email:      "asha@example.edu",
		Phone:      "9876543210",
		Department: kernel.DepartmentComputerScience,
		Year:       4,
		CGPA:       8.2,
		Skills:     []string{"Go", "SQL"},
	}
}

func TestRegisterStudent_AssignsSequentialIDsAndWelcomes(t *testing.T) {
	svc, _, _, notifications := newService()
	ctx := context.Background()

	first, err := svc.RegisterStudent(ctx, validRequest())
	require.NoError(t, err)
	second, err := svc.RegisterStudent(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID.Int64())
	assert.Equal(t, int64(2), second.ID.Int64())
	assert.True(t, first.IsEligible)
	assert.NotNil(t, first.AppliedJobs)

	notes, err := notifications.ListByRecipient(ctx, notification.RecipientStudent, first.ID.Int64())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, notification.TypeProfileCreated, notes[0].Type)
	assert.Equal(t, "Welcome to Placement Portal", notes[0].Title)
}

func TestRegisterStudent_ValidationIsFailFast(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*student.RegisterStudentRequest)
		wantMsg string
	}{
		{"missing name", func(r *student.RegisterStudentRequest) { r.Name = "" }, "name is required"},
		{"missing email", func(r *student.RegisterStudentRequest) { r.Email = "" }, "email is required"},
		{"zero year fails the required check", func(r *student.RegisterStudentRequest) { r.Year = 0 }, "year is required"},
		{"zero cgpa fails the required check", func(r *student.RegisterStudentRequest) { r.CGPA = 0 }, "cgpa is required"},
		{"bad email format", func(r *student.RegisterStudentRequest) { r.Email = "not-an-email" }, "Invalid email format"},
		{"cgpa out of range", func(r *student.RegisterStudentRequest) { r.CGPA = 10.5 }, "CGPA must be between 0 and 10"},
		{"year out of range", func(r *student.RegisterStudentRequest) { r.Year = 5 }, "Year must be between 1 and 4"},
		{"unknown department", func(r *student.RegisterStudentRequest) { r.Department = "Astrology" }, "Invalid department"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.RegisterStudent(ctx, req)
			require.Error(t, err)
			assert.True(t, errx.IsType(err, errx.TypeValidation))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRegisterStudent_EligibilityRule(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	tests := []struct {
		name string
		cgpa float64
		year int
		want bool
	}{
		{"meets both thresholds", 7.0, 4, true},
		{"cgpa below threshold", 6.9, 4, false},
		{"year below threshold", 8.0, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.CGPA = tt.cgpa
			req.Year = tt.year
			st, err := svc.RegisterStudent(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, st.IsEligible)
		})
	}
}

func TestUpdateProfile_RecomputesEligibility(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	req := validRequest()
	req.CGPA = 6.5
	st, err := svc.RegisterStudent(ctx, req)
	require.NoError(t, err)
	require.False(t, st.IsEligible)

	newCGPA := 7.8
	updated, err := svc.UpdateProfile(ctx, st.ID, student.UpdateStudentRequest{CGPA: &newCGPA})
	require.NoError(t, err)
	assert.True(t, updated.IsEligible)

	badCGPA := 5.0
	updated, err = svc.UpdateProfile(ctx, st.ID, student.UpdateStudentRequest{CGPA: &badCGPA})
	require.NoError(t, err)
	assert.False(t, updated.IsEligible)
}

func TestUpdateProfile_RejectsOutOfRangeValues(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	st, err := svc.RegisterStudent(ctx, validRequest())
	require.NoError(t, err)

	badYear := 7
	_, err = svc.UpdateProfile(ctx, st.ID, student.UpdateStudentRequest{Year: &badYear})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Year must be between 1 and 4")
}

func TestStudentReport(t *testing.T) {
	svc, _, applications, _ := newService()
	ctx := context.Background()

	st, err := svc.RegisterStudent(ctx, validRequest())
	require.NoError(t, err)

	for i, status := range []application.ApplicationStatus{
		application.ApplicationStatusUnderReview,
		application.ApplicationStatusShortlisted,
		application.ApplicationStatusShortlisted,
	} {
		require.NoError(t, applications.Create(ctx, &application.Application{
			StudentID: st.ID,
			JobID:     kernel.NewJobID(int64(i + 1)),
			Status:    status,
		}))
	}

	report, err := svc.StudentReport(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalApplications)
	assert.Equal(t, 1, report.ApplicationsByStatus["under_review"])
	assert.Equal(t, 2, report.ApplicationsByStatus["shortlisted"])
	assert.Equal(t, 0, report.ApplicationsByStatus["accepted"])
	assert.Equal(t, "Eligible", report.EligibilityStatus)
}

func TestGetStudent_NotFound(t *testing.T) {
	svc, _, _, _ := newService()

	_, err := svc.GetStudent(context.Background(), kernel.NewStudentID(99))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
}
