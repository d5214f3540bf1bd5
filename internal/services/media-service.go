package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/interfaces"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
	"github.com/SundayYogurt/jobboard_service/pkg/utils"
	"github.com/rs/zerolog/log"
)

const (
	imageMaxWidth   = 512
	imageJPGQuality = 85
	uploadTimeout   = 20 * time.Second

	avatarFolder = "jobboard/avatars"
	logoFolder   = "jobboard/logos"
)

type MediaService interface {
	UploadStudentAvatar(ctx context.Context, studentID uint, image []byte) (*domain.Student, error)
	UploadCompanyLogo(ctx context.Context, companyID uint, image []byte) (*domain.Company, error)
}

type mediaService struct {
	students  repository.StudentRepository
	companies repository.CompanyRepository
	uploader  interfaces.Uploader
}

// NewMediaService accepts a nil uploader; uploads then fail as unavailable.
func NewMediaService(repos repository.Repositories, uploader interfaces.Uploader) MediaService {
	return &mediaService{
		students:  repos.Students,
		companies: repos.Companies,
		uploader:  uploader,
	}
}

func (s *mediaService) store(ctx context.Context, folder, publicID string, image []byte) (string, error) {
	if s.uploader == nil {
		return "", helper.NewError(helper.KindUnavailable, "Image uploads are not configured", nil)
	}

	normalized, err := utils.NormalizeToJPG(image, imageMaxWidth, imageJPGQuality)
	if err != nil {
		if errors.Is(err, utils.ErrUnsupportedImage) || errors.Is(err, utils.ErrEmptyImage) {
			return "", helper.NewValidationError("Invalid image", helper.FieldError{
				Field:   "file",
				Message: "must be a jpg, png or webp image",
			})
		}
		return "", helper.Internal("Internal Server Error", err)
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	url, err := s.uploader.UploadBytes(ctx, folder, publicID, normalized)
	if err != nil {
		log.Error().Err(err).Str("folder", folder).Msg("image upload failed")
		return "", helper.NewError(helper.KindUnavailable, "Image upload failed", err)
	}
	return url, nil
}

func (s *mediaService) UploadStudentAvatar(ctx context.Context, studentID uint, image []byte) (*domain.Student, error) {
	student, err := s.students.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, repoError(err, "Student not found")
	}

	url, err := s.store(ctx, avatarFolder, fmt.Sprintf("student-%d", studentID), image)
	if err != nil {
		return nil, err
	}

	student.AvatarURL = &url
	if err := s.students.SaveStudent(ctx, student); err != nil {
		return nil, repoError(err, "Student not found")
	}
	return student, nil
}

func (s *mediaService) UploadCompanyLogo(ctx context.Context, companyID uint, image []byte) (*domain.Company, error) {
	company, err := s.companies.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, repoError(err, "Company not found")
	}

	url, err := s.store(ctx, logoFolder, fmt.Sprintf("company-%d", companyID), image)
	if err != nil {
		return nil, err
	}

	company.LogoURL = &url
	if err := s.companies.SaveCompany(ctx, company); err != nil {
		return nil, repoError(err, "Company not found")
	}
	return company, nil
}
