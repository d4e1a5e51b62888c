package studentsrv

import (
	"context"
	"time"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/pkg/logx"
	"github.com/shaheed425/jobsy/placement/application"
	"github.com/shaheed425/jobsy/placement/notification"
	"github.com/shaheed425/jobsy/placement/student"
)

// StudentService provides business operations for students
type StudentService struct {
	studentRepo      student.Repository
	applicationRepo  application.Repository
	notificationRepo notification.Repository
}

// NewStudentService creates a new instance of the student service
func NewStudentService(
	studentRepo student.Repository,
	applicationRepo application.Repository,
	notificationRepo notification.Repository,
) *StudentService {
	return &StudentService{
		studentRepo:      studentRepo,
		applicationRepo:  applicationRepo,
		notificationRepo: notificationRepo,
	}
}

// RegisterStudent validates and stores a new student record. The global
// eligibility flag is derived at creation and a welcome notification is
// emitted to the new profile.
func (s *StudentService) RegisterStudent(ctx context.Context, req student.RegisterStudentRequest) (*student.Student, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newStudent := &student.Student{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		StudentNumber:  req.StudentNumber,
		Department:     req.Department,
		Year:           req.Year,
		CGPA:           req.CGPA,
		IsEligible:     student.ComputeEligibility(req.CGPA, req.Year),
		Skills:         req.Skills,
		Certifications: req.Certifications,
		AppliedJobs:    []kernel.JobID{},
	}

	if err := s.studentRepo.Create(ctx, newStudent); err != nil {
		return nil, errx.Wrap(err, "failed to register student", errx.TypeInternal)
	}

	if err := s.notificationRepo.Create(ctx, notification.NewProfileCreated(newStudent.ID)); err != nil {
		// The profile is already stored; a lost welcome note is not
		// worth failing the registration over.
		logx.Warnf("welcome notification for student %s not created: %v", newStudent.ID, err)
	}

	return newStudent, nil
}

// GetStudent retrieves a student by ID
func (s *StudentService) GetStudent(ctx context.Context, id kernel.StudentID) (*student.Student, error) {
	st, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, student.ErrStudentNotFound().WithDetail("student_id", id.String())
	}
	return st, nil
}

// ListStudents retrieves all students
func (s *StudentService) ListStudents(ctx context.Context) ([]*student.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list students", errx.TypeInternal)
	}
	return students, nil
}

// UpdateProfile applies a partial update and recomputes the eligibility
// flag from the resulting attributes
func (s *StudentService) UpdateProfile(ctx context.Context, id kernel.StudentID, req student.UpdateStudentRequest) (*student.Student, error) {
	st, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, student.ErrStudentNotFound().WithDetail("student_id", id.String())
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Email != nil {
		if !req.Email.IsValid() {
			return nil, student.ErrInvalidStudent().WithMessage("Invalid email format").WithDetail("field", "email")
		}
		st.Email = *req.Email
	}
	if req.Phone != nil {
		st.Phone = *req.Phone
	}
	if req.StudentNumber != nil {
		st.StudentNumber = *req.StudentNumber
	}
	if req.Department != nil {
		if !req.Department.IsValid() {
			return nil, student.ErrInvalidStudent().WithMessage("Invalid department").WithDetail("field", "department")
		}
		st.Department = *req.Department
	}
	if req.Year != nil {
		if *req.Year < 1 || *req.Year > 4 {
			return nil, student.ErrInvalidStudent().WithMessage("Year must be between 1 and 4").WithDetail("field", "year")
		}
		st.Year = *req.Year
	}
	if req.CGPA != nil {
		if *req.CGPA < 0 || *req.CGPA > 10 {
			return nil, student.ErrInvalidStudent().WithMessage("CGPA must be between 0 and 10").WithDetail("field", "cgpa")
		}
		st.CGPA = *req.CGPA
	}
	if req.Skills != nil {
		st.Skills = *req.Skills
	}
	if req.Certifications != nil {
		st.Certifications = *req.Certifications
	}

	st.RecomputeEligibility()
	st.UpdatedAt = time.Now()

	if err := s.studentRepo.Update(ctx, id, st); err != nil {
		return nil, errx.Wrap(err, "failed to update student profile", errx.TypeInternal)
	}

	return st, nil
}

// StudentApplications retrieves all applications a student has made
func (s *StudentService) StudentApplications(ctx context.Context, id kernel.StudentID) ([]*application.Application, error) {
	if err := s.validateStudentExists(ctx, id); err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.ListByStudent(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list student applications", errx.TypeInternal)
	}
	return apps, nil
}

// StudentReport summarizes a student's placement activity
func (s *StudentService) StudentReport(ctx context.Context, id kernel.StudentID) (*student.StudentReportResponse, error) {
	st, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, student.ErrStudentNotFound().WithDetail("student_id", id.String())
	}

	apps, err := s.applicationRepo.ListByStudent(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list student applications", errx.TypeInternal)
	}

	byStatus := make(map[string]int, len(application.AllStatuses()))
	for _, status := range application.AllStatuses() {
		byStatus[string(status)] = 0
	}
	for _, app := range apps {
		byStatus[string(app.Status)]++
	}

	return &student.StudentReportResponse{
		Student:              st,
		TotalApplications:    len(apps),
		ApplicationsByStatus: byStatus,
		EligibilityStatus:    st.EligibilityLabel(),
	}, nil
}

func (s *StudentService) validateStudentExists(ctx context.Context, id kernel.StudentID) error {
	exists, err := s.studentRepo.Exists(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to validate student existence", errx.TypeInternal)
	}
	if !exists {
		return student.ErrStudentNotFound().WithDetail("student_id", id.String())
	}
	return nil
}
