package repository

import (
	"context"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"gorm.io/gorm"
)

type CollegeRepository interface {
	CreateCollege(ctx context.Context, college *domain.College) error
	FindCollegeByID(ctx context.Context, id uint) (*domain.College, error)
	ListColleges(ctx context.Context) ([]domain.College, error)
}

type collegeRepository struct {
	db *gorm.DB
}

func NewCollegeRepository(db *gorm.DB) CollegeRepository {
	return &collegeRepository{db: db}
}

func (r *collegeRepository) CreateCollege(ctx context.Context, college *domain.College) error {
	return translate("create college", r.db.WithContext(ctx).Create(college).Error)
}

func (r *collegeRepository) FindCollegeByID(ctx context.Context, id uint) (*domain.College, error) {
	var college domain.College
	if err := r.db.WithContext(ctx).First(&college, id).Error; err != nil {
		return nil, translate("find college", err)
	}
	return &college, nil
}

func (r *collegeRepository) ListColleges(ctx context.Context) ([]domain.College, error) {
	var colleges []domain.College
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&colleges).Error; err != nil {
		return nil, translate("list colleges", err)
	}
	return colleges, nil
}
