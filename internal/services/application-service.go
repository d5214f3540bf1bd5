package services

import (
	"context"
	"errors"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/interfaces"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
	"github.com/rs/zerolog/log"
)

type ApplicationService interface {
	Apply(ctx context.Context, studentID, jobID uint) (*domain.JobApplication, error)
	ListForStudent(ctx context.Context, studentID uint) ([]dto.StudentApplication, error)
	// ListApplicantsForJob lists a job's applicants. A non-zero companyID
	// must own the job.
	ListApplicantsForJob(ctx context.Context, companyID, jobID uint) ([]dto.Applicant, error)
	// UpdateStatus overwrites an application's status; any state may move to
	// any other. A non-zero companyID must own the application's job.
	UpdateStatus(ctx context.Context, companyID, applicationID uint, status domain.ApplicationStatus) (*domain.JobApplication, error)
}

type applicationService struct {
	students     repository.StudentRepository
	companies    repository.CompanyRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	events       eventPublisher
}

func NewApplicationService(repos repository.Repositories, producer interfaces.ProducerHandler) ApplicationService {
	return &applicationService{
		students:     repos.Students,
		companies:    repos.Companies,
		jobs:         repos.Jobs,
		applications: repos.Applications,
		events:       eventPublisher{producer: producer},
	}
}

func (s *applicationService) Apply(ctx context.Context, studentID, jobID uint) (*domain.JobApplication, error) {
	student, err := s.students.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, repoError(err, "Student not found")
	}
	job, err := s.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, repoError(err, "Job not found")
	}

	if _, err := s.applications.FindApplication(ctx, studentID, jobID); err == nil {
		return nil, helper.Conflict("You have already applied to this job")
	} else if !isNotFound(err) {
		return nil, repoError(err, "Application not found")
	}

	app := &domain.JobApplication{
		StudentID: studentID,
		JobID:     jobID,
		Status:    domain.ApplicationApplied,
	}
	if err := s.applications.CreateApplication(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, helper.Conflict("You have already applied to this job")
		}
		return nil, repoError(err, "Job not found")
	}

	log.Info().
		Uint("application_id", app.ID).
		Uint("student_id", studentID).
		Uint("job_id", jobID).
		Msg("application submitted")

	s.events.publish(ctx, dto.EventApplicationSubmitted, s.event(ctx, app, student, job))
	return app, nil
}

func (s *applicationService) ListForStudent(ctx context.Context, studentID uint) ([]dto.StudentApplication, error) {
	apps, err := s.applications.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, repoError(err, "Student not found")
	}
	return apps, nil
}

func (s *applicationService) ListApplicantsForJob(ctx context.Context, companyID, jobID uint) ([]dto.Applicant, error) {
	job, err := s.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, repoError(err, "Job not found")
	}
	if companyID != 0 && job.CompanyID != companyID {
		return nil, helper.Forbidden("You do not have access to this job")
	}

	applicants, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, repoError(err, "Job not found")
	}
	return applicants, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, companyID, applicationID uint, status domain.ApplicationStatus) (*domain.JobApplication, error) {
	if !status.Valid() {
		return nil, helper.NewValidationError("Invalid application status", helper.FieldError{
			Field:   "status",
			Message: "must be one of: APPLIED, SHORTLISTED, REJECTED, HIRED",
		})
	}

	app, err := s.applications.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, repoError(err, "Application not found")
	}
	job, err := s.jobs.FindJobByID(ctx, app.JobID)
	if err != nil {
		return nil, repoError(err, "Job not found")
	}
	if companyID != 0 && job.CompanyID != companyID {
		return nil, helper.Forbidden("You do not have access to this application")
	}

	updated, err := s.applications.UpdateApplicationStatus(ctx, applicationID, status)
	if err != nil {
		return nil, repoError(err, "Application not found")
	}

	log.Info().
		Uint("application_id", applicationID).
		Str("status", string(status)).
		Msg("application status updated")

	if student, err := s.students.FindStudentByID(ctx, updated.StudentID); err == nil {
		s.events.publish(ctx, dto.EventApplicationStatusChanged, s.event(ctx, updated, student, job))
	}
	return updated, nil
}

func (s *applicationService) event(ctx context.Context, app *domain.JobApplication, student *domain.Student, job *domain.Job) dto.ApplicationEvent {
	evt := dto.ApplicationEvent{
		ApplicationID: app.ID,
		JobID:         job.ID,
		JobTitle:      job.Title,
		StudentID:     student.ID,
		StudentName:   student.Name,
		StudentEmail:  student.Email,
		Status:        string(app.Status),
		OccurredAt:    time.Now().UTC(),
	}
	if company, err := s.companies.FindCompanyByID(ctx, job.CompanyID); err == nil {
		evt.CompanyName = company.CompanyName
		evt.CompanyEmail = company.Email
	}
	return evt
}
