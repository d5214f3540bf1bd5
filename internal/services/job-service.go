package services

import (
	"context"
	"fmt"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type JobService interface {
	CreateJob(ctx context.Context, companyID uint, input dto.CreateJobRequest) (*domain.Job, error)
	UpdateJob(ctx context.Context, companyID, jobID uint, input dto.UpdateJobRequest) (*domain.Job, error)
	DeleteJob(ctx context.Context, companyID, jobID uint) error
	ListCompanyJobs(ctx context.Context, companyID uint) ([]domain.Job, error)
	ListJobs(ctx context.Context) ([]domain.Job, error)
	GetJob(ctx context.Context, id uint) (*domain.Job, error)
}

type jobService struct {
	companies repository.CompanyRepository
	jobs      repository.JobRepository
}

func NewJobService(repos repository.Repositories) JobService {
	return &jobService{
		companies: repos.Companies,
		jobs:      repos.Jobs,
	}
}

// requiredSkills rejects unknown names and removes duplicates, keeping the
// first occurrence.
func requiredSkills(names []string) (pq.StringArray, error) {
	out := make(pq.StringArray, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if !domain.IsValidSkill(name) {
			return nil, helper.NewValidationError("Validation failed", helper.FieldError{
				Field:   fmt.Sprintf("requiredSkills[%d]", i),
				Message: "is not a recognized skill",
			})
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}

func (s *jobService) CreateJob(ctx context.Context, companyID uint, input dto.CreateJobRequest) (*domain.Job, error) {
	if _, err := s.companies.FindCompanyByID(ctx, companyID); err != nil {
		return nil, repoError(err, "Company not found")
	}

	skills, err := requiredSkills(input.RequiredSkills)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		CompanyID:      companyID,
		Title:          sanitizePlain(input.Title),
		Description:    sanitizeRich(input.Description),
		Location:       sanitizePlain(input.Location),
		JobType:        input.JobType,
		JobMode:        input.JobMode,
		RequiredSkills: skills,
	}
	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, repoError(err, "Company not found")
	}

	log.Info().Uint("job_id", job.ID).Uint("company_id", companyID).Msg("job created")
	return job, nil
}

// ownedJob loads a job and checks it belongs to companyID.
func (s *jobService) ownedJob(ctx context.Context, companyID, jobID uint) (*domain.Job, error) {
	job, err := s.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, repoError(err, "Job not found")
	}
	if job.CompanyID != companyID {
		return nil, helper.Forbidden("You do not have access to this job")
	}
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, companyID, jobID uint, input dto.UpdateJobRequest) (*domain.Job, error) {
	job, err := s.ownedJob(ctx, companyID, jobID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		job.Title = sanitizePlain(*input.Title)
	}
	if input.Description != nil {
		job.Description = sanitizeRich(*input.Description)
	}
	if input.Location != nil {
		job.Location = sanitizePlain(*input.Location)
	}
	if input.JobType != nil {
		job.JobType = *input.JobType
	}
	if input.JobMode != nil {
		job.JobMode = *input.JobMode
	}
	if input.RequiredSkills != nil {
		skills, err := requiredSkills(input.RequiredSkills)
		if err != nil {
			return nil, err
		}
		job.RequiredSkills = skills
	}

	if err := s.jobs.SaveJob(ctx, job); err != nil {
		return nil, repoError(err, "Job not found")
	}
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, companyID, jobID uint) error {
	if _, err := s.ownedJob(ctx, companyID, jobID); err != nil {
		return err
	}
	if err := s.jobs.DeleteJob(ctx, jobID); err != nil {
		return repoError(err, "Job not found")
	}
	log.Info().Uint("job_id", jobID).Uint("company_id", companyID).Msg("job deleted")
	return nil
}

func (s *jobService) ListCompanyJobs(ctx context.Context, companyID uint) ([]domain.Job, error) {
	jobs, err := s.jobs.ListJobsByCompany(ctx, companyID)
	if err != nil {
		return nil, repoError(err, "Job not found")
	}
	return jobs, nil
}

func (s *jobService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobs.ListJobs(ctx)
	if err != nil {
		return nil, repoError(err, "Job not found")
	}
	return jobs, nil
}

func (s *jobService) GetJob(ctx context.Context, id uint) (*domain.Job, error) {
	job, err := s.jobs.FindJobByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Job not found")
	}
	return job, nil
}
