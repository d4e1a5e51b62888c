package applicationsrv

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/pkg/logx"
	"github.com/shaheed425/jobsy/placement/application"
	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/matching"
	"github.com/shaheed425/jobsy/placement/notification"
	"github.com/shaheed425/jobsy/placement/student"
)

// ApplicationService drives the application lifecycle: submission with
// its eligibility gauntlet, review decisions, and detail reads.
type ApplicationService struct {
	applicationRepo  application.Repository
	studentRepo      student.Repository
	jobRepo          job.Repository
	notificationRepo notification.Repository

	// Serializes submissions per (student, job) pair so the duplicate
	// check and the insert cannot interleave for the same pair.
	submitMu sync.Mutex
	inFlight map[string]*sync.Mutex
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	studentRepo student.Repository,
	jobRepo job.Repository,
	notificationRepo notification.Repository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo:  applicationRepo,
		studentRepo:      studentRepo,
		jobRepo:          jobRepo,
		notificationRepo: notificationRepo,
		inFlight:         make(map[string]*sync.Mutex),
	}
}

// SubmitApplication runs the full submission workflow. All gates are
// checked before any write; on success the application is stored, the
// job counter and the student's applied list are updated, and a
// confirmation notification is emitted.
func (s *ApplicationService) SubmitApplication(ctx context.Context, req application.SubmitApplicationRequest) (*application.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	unlock := s.lockPair(req.StudentID, req.JobID)
	defer unlock()

	st, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, student.ErrStudentNotFound().WithDetail("student_id", req.StudentID.String())
	}
	if !st.IsEligible {
		return nil, application.ErrStudentIneligible().WithDetail("student_id", req.StudentID.String())
	}

	j, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", req.JobID.String())
	}
	if j.Status != job.JobStatusActive {
		return nil, application.ErrJobClosed().WithDetail("job_id", req.JobID.String())
	}
	if j.IsExpired(time.Now()) {
		return nil, application.ErrDeadlinePassed().WithDetail("job_id", req.JobID.String())
	}
	if !matching.IsEligibleForJob(st, j.EligibilityCriteria) {
		return nil, application.ErrCriteriaNotMet().
			WithDetail("student_id", req.StudentID.String()).
			WithDetail("job_id", req.JobID.String())
	}

	exists, err := s.applicationRepo.ExistsByStudentAndJob(ctx, req.StudentID, req.JobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check for existing application", errx.TypeInternal)
	}
	if exists {
		return nil, application.ErrDuplicateApplication().
			WithDetail("student_id", req.StudentID.String()).
			WithDetail("job_id", req.JobID.String())
	}

	app := &application.Application{
		StudentID:       req.StudentID,
		JobID:           req.JobID,
		StudentName:     st.Name,
		JobTitle:        j.Title,
		Company:         j.Company,
		CoverLetter:     req.CoverLetter,
		ApplicationDate: time.Now(),
		Status:          application.ApplicationStatusUnderReview,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, errx.Wrap(err, "failed to submit application", errx.TypeInternal)
	}

	j.RecordApplication()
	if err := s.jobRepo.Update(ctx, j.ID, j); err != nil {
		logx.Errorf("application counter for job %s not updated: %v", j.ID, err)
	}

	st.RecordApplication(j.ID)
	if err := s.studentRepo.Update(ctx, st.ID, st); err != nil {
		logx.Errorf("applied-jobs list for student %s not updated: %v", st.ID, err)
	}

	submitted := notification.NewApplicationSubmitted(st.ID, app.ID, j.Title, j.Company)
	if err := s.notificationRepo.Create(ctx, submitted); err != nil {
		logx.Warnf("submission notification for application %s not created: %v", app.ID, err)
	}

	return app, nil
}

// UpdateStatus applies a reviewer's decision, persists it, and notifies
// the applicant. Acceptances go out at high priority. A provided
// interview date is recorded and announced in a second notification.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id kernel.ApplicationID, req application.UpdateStatusRequest) (*application.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	app.SetStatus(req.Status, req.Feedback)
	if req.InterviewDate != nil {
		app.ScheduleInterview(*req.InterviewDate)
	}

	if err := s.applicationRepo.Update(ctx, id, app); err != nil {
		return nil, errx.Wrap(err, "failed to update application status", errx.TypeInternal)
	}

	priority := notification.PriorityMedium
	if req.Status == application.ApplicationStatusAccepted {
		priority = notification.PriorityHigh
	}
	statusNote := notification.NewApplicationStatus(
		app.StudentID, app.ID, app.JobTitle, app.Company, req.Status.StatusLine(), priority)
	if err := s.notificationRepo.Create(ctx, statusNote); err != nil {
		logx.Warnf("status notification for application %s not created: %v", app.ID, err)
	}

	if req.InterviewDate != nil {
		interviewNote := notification.NewInterviewScheduled(
			app.StudentID, app.ID, app.JobTitle, app.Company, *req.InterviewDate)
		if err := s.notificationRepo.Create(ctx, interviewNote); err != nil {
			logx.Warnf("interview notification for application %s not created: %v", app.ID, err)
		}
	}

	return app, nil
}

// GetApplication retrieves an application by ID
func (s *ApplicationService) GetApplication(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}
	return app, nil
}

// ListApplications retrieves all applications
func (s *ApplicationService) ListApplications(ctx context.Context) ([]*application.Application, error) {
	apps, err := s.applicationRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}
	return apps, nil
}

// ListByStudent retrieves all applications submitted by a student
func (s *ApplicationService) ListByStudent(ctx context.Context, studentID kernel.StudentID) ([]*application.Application, error) {
	apps, err := s.applicationRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications by student", errx.TypeInternal)
	}
	return apps, nil
}

// ListByJob retrieves all applications received for a job
func (s *ApplicationService) ListByJob(ctx context.Context, jobID kernel.JobID) ([]*application.Application, error) {
	apps, err := s.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications by job", errx.TypeInternal)
	}
	return apps, nil
}

// ApplicationDetails returns an application together with the current
// student and job records behind it
func (s *ApplicationService) ApplicationDetails(ctx context.Context, id kernel.ApplicationID) (*application.ApplicationDetailsResponse, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	st, err := s.studentRepo.GetByID(ctx, app.StudentID)
	if err != nil {
		return nil, student.ErrStudentNotFound().WithDetail("student_id", app.StudentID.String())
	}

	j, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", app.JobID.String())
	}

	return &application.ApplicationDetailsResponse{
		Application: app,
		Student:     st,
		Job:         j,
	}, nil
}

// lockPair takes the mutex for one (student, job) pair, creating it on
// first use. Pair mutexes are never removed; the map stays small because
// the pair space is bounded by real students and jobs.
func (s *ApplicationService) lockPair(studentID kernel.StudentID, jobID kernel.JobID) func() {
	key := fmt.Sprintf("%s:%s", studentID, jobID)

	s.submitMu.Lock()
	mu, ok := s.inFlight[key]
	if !ok {
		mu = &sync.Mutex{}
		s.inFlight[key] = mu
	}
	s.submitMu.Unlock()

	mu.Lock()
	return mu.Unlock
}
