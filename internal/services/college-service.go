package services

import (
	"context"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type CollegeService interface {
	ListColleges(ctx context.Context) ([]domain.College, error)
	GetCollege(ctx context.Context, id uint) (*domain.College, error)
	CreateCollege(ctx context.Context, input dto.CreateCollegeRequest) (*domain.College, error)
}

type collegeService struct {
	colleges repository.CollegeRepository
}

func NewCollegeService(repos repository.Repositories) CollegeService {
	return &collegeService{colleges: repos.Colleges}
}

func (s *collegeService) ListColleges(ctx context.Context) ([]domain.College, error) {
	colleges, err := s.colleges.ListColleges(ctx)
	if err != nil {
		return nil, repoError(err, "College not found")
	}
	return colleges, nil
}

func (s *collegeService) GetCollege(ctx context.Context, id uint) (*domain.College, error) {
	college, err := s.colleges.FindCollegeByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "College not found")
	}
	return college, nil
}

func (s *collegeService) CreateCollege(ctx context.Context, input dto.CreateCollegeRequest) (*domain.College, error) {
	college := &domain.College{
		Name:     sanitizePlain(input.Name),
		Location: sanitizePlain(input.Location),
	}
	if err := s.colleges.CreateCollege(ctx, college); err != nil {
		return nil, repoError(err, "College not found")
	}
	return college, nil
}
