package applicationsrv

import (
	"context"
	"strings"
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
	"github.com/shaheed425/jobsy/placement/notification"
	"github.com/shaheed425/jobsy/placement/notification/notificationinfra"
	"github.com/shaheed425/jobsy/placement/student"
	"github.com/shaheed425/jobsy/placement/student/studentinfra"
)

type fixture struct {
	students      *studentinfra.MemoryStudentRepository
	jobs          *jobinfra.MemoryJobRepository
	applications  *applicationinfra.MemoryApplicationRepository
	notifications *notificationinfra.MemoryNotificationRepository
	service       *ApplicationService
}

func newFixture() *fixture {
	f := &fixture{
		students:      studentinfra.NewMemoryStudentRepository(),
		jobs:          jobinfra.NewMemoryJobRepository(),
		applications:  applicationinfra.NewMemoryApplicationRepository(),
		notifications: notificationinfra.NewMemoryNotificationRepository(),
	}
	f.service = NewApplicationService(f.applications, f.students, f.jobs, f.notifications)
	return f
}

func (f *fixture) addStudent(t *testing.T, cgpa float64, year int) *student.Student {
	t.Helper()
	st := &student.Student{
		Name:        "Asha Verma",
		Email:       "asha@example.edu",
		Department:  kernel.DepartmentComputerScience,
		Year:        year,
		CGPA:        cgpa,
		IsEligible:  student.ComputeEligibility(cgpa, year),
		Skills:      []string{"Go", "SQL"},
		AppliedJobs: []kernel.JobID{},
	}
	require.NoError(t, f.students.Create(context.Background(), st))
	return st
}

func (f *fixture) addJob(t *testing.T, deadline time.Time, criteria *job.EligibilityCriteria) *job.Job {
	t.Helper()
	j := &job.Job{
		Company:             "Acme Corp",
		Title:               "Backend Engineer",
		Location:            "Pune",
		JobType:             job.JobTypeFullTime,
		Status:              job.JobStatusActive,
		EligibilityCriteria: criteria,
		ApplicationDeadline: deadline,
		PostedDate:          time.Now(),
	}
	require.NoError(t, f.jobs.Create(context.Background(), j))
	return j
}

func coverLetter() string {
	return strings.Repeat("I am a strong fit for this role. ", 3)
}

func TestSubmitApplication_HappyPath(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	st := f.addStudent(t, 8.0, 4)
	j := f.addJob(t, time.Now().AddDate(0, 0, 7), nil)

	app, err := f.service.SubmitApplication(ctx, application.SubmitApplicationRequest{
		StudentID:   st.ID,
		JobID:       j.ID,
		CoverLetter: coverLetter(),
	})
	require.NoError(t, err)

	assert.Equal(t, application.ApplicationStatusUnderReview, app.Status)
	assert.Equal(t, st.Name, app.StudentName)
	assert.Equal(t, j.Title, app.JobTitle)
	assert.Equal(t, j.Company, app.Company)
	assert.False(t, app.ApplicationDate.IsZero())

	// Job counter bumped
	updatedJob, err := f.jobs.GetByID(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updatedJob.ApplicationsReceived)

	// Student applied list updated
	updatedStudent, err := f.students.GetByID(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, updatedStudent.HasApplied(j.ID))

	// Confirmation notification emitted
	notes, err := f.notifications.ListByRecipient(ctx, notification.RecipientStudent, st.ID.Int64())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, notification.TypeApplicationSubmit, notes[0].Type)
	assert.Equal(t, "Application Submitted Successfully", notes[0].Title)
}

func TestSubmitApplication_Duplicate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	st := f.addStudent(t, 8.0, 4)
	j := f.addJob(t, time.Now().AddDate(0, 0, 7), nil)

	req := application.SubmitApplicationRequest{
		StudentID:   st.ID,
		JobID:       j.ID,
		CoverLetter: coverLetter(),
	}

	_, err := f.service.SubmitApplication(ctx, req)
	require.NoError(t, err)

	_, err = f.service.SubmitApplication(ctx, req)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeConflict))
	assert.Contains(t, err.Error(), "You have already applied for this job")

	// The failed attempt must not touch the counter
	updatedJob, err := f.jobs.GetByID(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updatedJob.ApplicationsReceived)
}

func TestSubmitApplication_DeadlinePassed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	st := f.addStudent(t, 8.0, 4)
	j := f.addJob(t, time.Now().AddDate(0, 0, -1), nil)

	_, err := f.service.SubmitApplication(ctx, application.SubmitApplicationRequest{
		StudentID:   st.ID,
		JobID:       j.ID,
		CoverLetter: coverLetter(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Application deadline has passed")

	updatedJob, err := f.jobs.GetByID(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updatedJob.ApplicationsReceived)
}

func TestSubmitApplication_InactiveJob(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	st := f.addStudent(t, 8.0, 4)
	j := f.addJob(t, time.Now().AddDate(0, 0, 7), nil)
	j.Status = job.JobStatusInactive
	require.NoError(t, f.jobs.Update(ctx, j.ID, j))

	_, err := f.service.SubmitApplication(ctx, application.SubmitApplicationRequest{
		StudentID:   st.ID,
		JobID:       j.ID,
		CoverLetter: coverLetter(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Job is no longer accepting applications")
}

func TestSubmitApplication_IneligibleStudent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	st := f.addStudent(t, 6.5, 4) // below the 7.0 floor
	j := f.addJob(t, time.Now().AddDate(0, 0, 7), nil)

	_, err := f.service.SubmitApplication(ctx, application.SubmitApplicationRequest{
		StudentID:   st.ID,
		JobID:       j.ID,
		CoverLetter: coverLetter(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Student is not eligible for placements")
}

func TestSubmitApplication_CriteriaNotMet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	st := f.addStudent(t, 7.5, 4)
	j := f.addJob(t, time.Now().AddDate(0, 0, 7), &job.EligibilityCriteria{
		MinCGPA:     8.0,
		Departments: []kernel.Department{kernel.DepartmentComputerScience},
	})

	_, err := f.service.SubmitApplication(ctx, application.SubmitApplicationRequest{
		StudentID:   st.ID,
		JobID:       j.ID,
		CoverLetter: coverLetter(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Student does not meet job eligibility criteria")
}

func TestSubmitApplication_CoverLetterBounds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	st := f.addStudent(t, 8.0, 4)

	tests := []struct {
		name    string
		length  int
		wantErr string
	}{
		{"one short of the minimum", 49, "Cover letter must be at least 50 characters long"},
		{"exactly the minimum", 50, ""},
		{"exactly the maximum", 1000, ""},
		{"one past the maximum", 1001, "Cover letter must not exceed 1000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := f.addJob(t, time.Now().AddDate(0, 0, 7), nil)
			_, err := f.service.SubmitApplication(ctx, application.SubmitApplicationRequest{
				StudentID:   st.ID,
				JobID:       j.ID,
				CoverLetter: strings.Repeat("x", tt.length),
			})
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestUpdateStatus_NotificationPriorityAndWording(t *testing.T) {
	tests := []struct {
		status       application.ApplicationStatus
		wantPriority notification.Priority
		wantLine     string
	}{
		{application.ApplicationStatusShortlisted, notification.PriorityMedium,
			"Congratulations! You have been shortlisted for the next round."},
		{application.ApplicationStatusAccepted, notification.PriorityHigh,
			"Congratulations! Your application has been accepted."},
		{application.ApplicationStatusRejected, notification.PriorityMedium,
			"Thank you for your interest. Unfortunately, your application was not selected this time."},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			f := newFixture()
			ctx := context.Background()
			st := f.addStudent(t, 8.0, 4)
			j := f.addJob(t, time.Now().AddDate(0, 0, 7), nil)

			app, err := f.service.SubmitApplication(ctx, application.SubmitApplicationRequest{
				StudentID:   st.ID,
				JobID:       j.ID,
				CoverLetter: coverLetter(),
			})
			require.NoError(t, err)

			updated, err := f.service.UpdateStatus(ctx, app.ID, application.UpdateStatusRequest{
				Status: tt.status,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.status, updated.Status)

			notes, err := f.notifications.ListByRecipient(ctx, notification.RecipientStudent, st.ID.Int64())
			require.NoError(t, err)
			require.Len(t, notes, 2) // submission confirmation + status update

			statusNote := notes[1]
			assert.Equal(t, notification.TypeApplicationStatus, statusNote.Type)
			assert.Equal(t, tt.wantPriority, statusNote.Priority)
			assert.Contains(t, statusNote.Message, tt.wantLine)
		})
	}
}

func TestUpdateStatus_InterviewScheduling(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	st := f.addStudent(t, 8.0, 4)
	j := f.addJob(t, time.Now().AddDate(0, 0, 7), nil)

	app, err := f.service.SubmitApplication(ctx, application.SubmitApplicationRequest{
		StudentID:   st.ID,
		JobID:       j.ID,
		CoverLetter: coverLetter(),
	})
	require.NoError(t, err)

	interviewAt := time.Date(2026, time.September, 15, 14, 30, 0, 0, time.UTC)
	updated, err := f.service.UpdateStatus(ctx, app.ID, application.UpdateStatusRequest{
		Status:        application.ApplicationStatusShortlisted,
		InterviewDate: &interviewAt,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.InterviewDate)
	assert.True(t, updated.InterviewDate.Equal(interviewAt))

	notes, err := f.notifications.ListByRecipient(ctx, notification.RecipientStudent, st.ID.Int64())
	require.NoError(t, err)
	require.Len(t, notes, 3) // submission + status + interview

	interviewNote := notes[2]
	assert.Equal(t, notification.TypeInterviewSchedule, interviewNote.Type)
	assert.Equal(t, notification.PriorityHigh, interviewNote.Priority)
	assert.Contains(t, interviewNote.Message, "Sep 15, 2026")
	assert.Contains(t, interviewNote.Message, "2:30 PM")
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.UpdateStatus(ctx, kernel.NewApplicationID(1), application.UpdateStatusRequest{
		Status: "on_hold",
	})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
}

func TestUpdateStatus_FeedbackRetainedWhenEmpty(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	st := f.addStudent(t, 8.0, 4)
	j := f.addJob(t, time.Now().AddDate(0, 0, 7), nil)

	app, err := f.service.SubmitApplication(ctx, application.SubmitApplicationRequest{
		StudentID:   st.ID,
		JobID:       j.ID,
		CoverLetter: coverLetter(),
	})
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(ctx, app.ID, application.UpdateStatusRequest{
		Status:   application.ApplicationStatusShortlisted,
		Feedback: "Strong fundamentals",
	})
	require.NoError(t, err)

	updated, err := f.service.UpdateStatus(ctx, app.ID, application.UpdateStatusRequest{
		Status: application.ApplicationStatusAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, "Strong fundamentals", updated.Feedback)
}
