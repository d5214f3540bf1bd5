package repository

import (
	"context"
	"errors"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"gorm.io/gorm"
)

type JobRepository interface {
	CreateJob(ctx context.Context, job *domain.Job) error
	FindJobByID(ctx context.Context, id uint) (*domain.Job, error)
	SaveJob(ctx context.Context, job *domain.Job) error
	DeleteJob(ctx context.Context, id uint) error
	// ListJobs returns every job, newest first.
	ListJobs(ctx context.Context) ([]domain.Job, error)
	ListJobsByCompany(ctx context.Context, companyID uint) ([]domain.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) CreateJob(ctx context.Context, job *domain.Job) error {
	if job == nil {
		return errors.New("nil job")
	}
	return translate("create job", r.db.WithContext(ctx).Create(job).Error)
}

func (r *jobRepository) FindJobByID(ctx context.Context, id uint) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, translate("find job", err)
	}
	return &job, nil
}

func (r *jobRepository) SaveJob(ctx context.Context, job *domain.Job) error {
	return translate("save job", r.db.WithContext(ctx).Omit("Applications").Save(job).Error)
}

func (r *jobRepository) DeleteJob(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Job{}, id)
	if res.Error != nil {
		return translate("delete job", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *jobRepository) ListJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, translate("list jobs", err)
	}
	return jobs, nil
}

func (r *jobRepository) ListJobsByCompany(ctx context.Context, companyID uint) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, translate("list company jobs", err)
	}
	return jobs, nil
}
