package repository

import (
	"context"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	// CreateApplication inserts a new application. An existing
	// (student, job) pair yields ErrDuplicate.
	CreateApplication(ctx context.Context, app *domain.JobApplication) error
	FindApplication(ctx context.Context, studentID, jobID uint) (*domain.JobApplication, error)
	FindApplicationByID(ctx context.Context, id uint) (*domain.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, id uint, status domain.ApplicationStatus) (*domain.JobApplication, error)
	// ListByStudent returns the student's applications with their jobs,
	// newest first.
	ListByStudent(ctx context.Context, studentID uint) ([]dto.StudentApplication, error)
	ListByJob(ctx context.Context, jobID uint) ([]dto.Applicant, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) CreateApplication(ctx context.Context, app *domain.JobApplication) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.JobApplication{}).
			Where("student_id = ? AND job_id = ?", app.StudentID, app.JobID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}
		return tx.Create(app).Error
	})
	return translate("create application", err)
}

func (r *applicationRepository) FindApplication(ctx context.Context, studentID, jobID uint) (*domain.JobApplication, error) {
	var app domain.JobApplication
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND job_id = ?", studentID, jobID).
		First(&app).Error
	if err != nil {
		return nil, translate("find application", err)
	}
	return &app, nil
}

func (r *applicationRepository) FindApplicationByID(ctx context.Context, id uint) (*domain.JobApplication, error) {
	var app domain.JobApplication
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, translate("find application by id", err)
	}
	return &app, nil
}

func (r *applicationRepository) UpdateApplicationStatus(ctx context.Context, id uint, status domain.ApplicationStatus) (*domain.JobApplication, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.JobApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, translate("update application status", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindApplicationByID(ctx, id)
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID uint) ([]dto.StudentApplication, error) {
	var apps []domain.JobApplication
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, translate("list student applications", err)
	}

	jobIDs := make([]uint, 0, len(apps))
	for _, a := range apps {
		jobIDs = append(jobIDs, a.JobID)
	}
	var jobs []domain.Job
	if len(jobIDs) > 0 {
		if err := r.db.WithContext(ctx).Where("id IN ?", jobIDs).Find(&jobs).Error; err != nil {
			return nil, translate("list application jobs", err)
		}
	}
	byID := make(map[uint]domain.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	out := make([]dto.StudentApplication, 0, len(apps))
	for _, a := range apps {
		job, ok := byID[a.JobID]
		if !ok {
			continue
		}
		out = append(out, dto.StudentApplication{Application: a, Job: job})
	}
	return out, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID uint) ([]dto.Applicant, error) {
	var apps []domain.JobApplication
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC, id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, translate("list job applicants", err)
	}

	studentIDs := make([]uint, 0, len(apps))
	for _, a := range apps {
		studentIDs = append(studentIDs, a.StudentID)
	}
	var students []domain.Student
	if len(studentIDs) > 0 {
		if err := r.db.WithContext(ctx).Preload("College").Where("id IN ?", studentIDs).Find(&students).Error; err != nil {
			return nil, translate("list applicant students", err)
		}
	}
	byID := make(map[uint]domain.Student, len(students))
	for _, s := range students {
		byID[s.ID] = s
	}

	out := make([]dto.Applicant, 0, len(apps))
	for _, a := range apps {
		student, ok := byID[a.StudentID]
		if !ok {
			continue
		}
		out = append(out, dto.Applicant{
			ApplicationID: a.ID,
			Status:        a.Status,
			AppliedAt:     a.CreatedAt,
			Student:       student,
		})
	}
	return out, nil
}
