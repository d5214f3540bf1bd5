package services

import (
	"context"
	"errors"
	"strings"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/helper/utils"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
	"github.com/rs/zerolog/log"
)

type AuthService interface {
	RegisterStudent(ctx context.Context, input dto.StudentRegisterRequest) (*domain.Student, error)
	LoginStudent(ctx context.Context, input dto.LoginRequest) (*domain.Student, string, error)
	RegisterCompany(ctx context.Context, input dto.CompanyRegisterRequest) (*domain.Company, error)
	LoginCompany(ctx context.Context, input dto.LoginRequest) (*domain.Company, string, error)
	// Logout revokes the token until it expires. Invalid tokens are ignored.
	Logout(ctx context.Context, token string) error
	// Authenticate verifies a token and checks it has not been revoked.
	Authenticate(ctx context.Context, token string) (dto.AuthClaims, error)
}

type authService struct {
	students  repository.StudentRepository
	companies repository.CompanyRepository
	tokens    repository.TokenRepository
	auth      helper.Auth
}

func NewAuthService(repos repository.Repositories, auth helper.Auth) AuthService {
	return &authService{
		students:  repos.Students,
		companies: repos.Companies,
		tokens:    repos.Tokens,
		auth:      auth,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) RegisterStudent(ctx context.Context, input dto.StudentRegisterRequest) (*domain.Student, error) {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)

	_, err := s.students.FindConflicting(ctx, email, username, 0)
	if err == nil {
		return nil, helper.Conflict("Email or username already exists")
	}
	if !isNotFound(err) {
		return nil, repoError(err, "Student not found")
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, helper.Internal("Internal Server Error", err)
	}

	student := &domain.Student{
		Email:        email,
		Username:     username,
		Name:         sanitizePlain(input.Name),
		PasswordHash: hash,
	}
	if err := s.students.CreateStudent(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, helper.Conflict("Email or username already exists")
		}
		return nil, repoError(err, "Student not found")
	}

	log.Info().Uint("student_id", student.ID).Msg("student registered")
	return student, nil
}

func (s *authService) LoginStudent(ctx context.Context, input dto.LoginRequest) (*domain.Student, string, error) {
	student, err := s.students.FindStudentByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if isNotFound(err) {
			return nil, "", helper.Unauthenticated("Invalid credentials")
		}
		return nil, "", repoError(err, "Student not found")
	}

	if err := s.auth.VerifyPassword(input.Password, student.PasswordHash); err != nil {
		return nil, "", helper.Unauthenticated("Invalid credentials")
	}

	token, err := s.auth.GenerateToken(student.ID, domain.RoleStudent)
	if err != nil {
		return nil, "", helper.Internal("Internal Server Error", err)
	}
	return student, token, nil
}

func (s *authService) RegisterCompany(ctx context.Context, input dto.CompanyRegisterRequest) (*domain.Company, error) {
	email := normalizeEmail(input.Email)
	domainName := strings.ToLower(strings.TrimSpace(input.Domain))

	_, err := s.companies.FindConflicting(ctx, email, domainName, 0)
	if err == nil {
		return nil, helper.Conflict("Email or domain already exists")
	}
	if !isNotFound(err) {
		return nil, repoError(err, "Company not found")
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, helper.Internal("Internal Server Error", err)
	}

	company := &domain.Company{
		Email:              email,
		Domain:             domainName,
		CompanyName:        sanitizePlain(input.CompanyName),
		PasswordHash:       hash,
		VerificationStatus: domain.VerificationManualReview,
	}
	if utils.EmailMatchesDomain(email, domainName) {
		company.VerificationStatus = domain.VerificationAutoVerified
		company.IsVerified = true
	}

	if err := s.companies.CreateCompany(ctx, company); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, helper.Conflict("Email or domain already exists")
		}
		return nil, repoError(err, "Company not found")
	}

	log.Info().
		Uint("company_id", company.ID).
		Str("verification_status", string(company.VerificationStatus)).
		Msg("company registered")
	return company, nil
}

func (s *authService) LoginCompany(ctx context.Context, input dto.LoginRequest) (*domain.Company, string, error) {
	company, err := s.companies.FindCompanyByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if isNotFound(err) {
			return nil, "", helper.Unauthenticated("Invalid credentials")
		}
		return nil, "", repoError(err, "Company not found")
	}

	if err := s.auth.VerifyPassword(input.Password, company.PasswordHash); err != nil {
		return nil, "", helper.Unauthenticated("Invalid credentials")
	}

	token, err := s.auth.GenerateToken(company.ID, domain.RoleCompany)
	if err != nil {
		return nil, "", helper.Internal("Internal Server Error", err)
	}
	return company, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if s.tokens == nil || token == "" {
		return nil
	}
	claims, err := s.auth.VerifyToken(token)
	if err != nil || claims.ID == "" {
		return nil
	}
	if err := s.tokens.RevokeToken(ctx, claims.ID, s.auth.RemainingTTL(claims)); err != nil {
		return helper.Internal("Internal Server Error", err)
	}
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (dto.AuthClaims, error) {
	claims, err := s.auth.VerifyToken(token)
	if err != nil {
		return dto.AuthClaims{}, helper.NewError(helper.KindUnauthenticated, "Invalid or expired token", err)
	}
	if s.tokens != nil && claims.ID != "" {
		revoked, err := s.tokens.IsTokenRevoked(ctx, claims.ID)
		if err != nil {
			return dto.AuthClaims{}, helper.Internal("Internal Server Error", err)
		}
		if revoked {
			return dto.AuthClaims{}, helper.Unauthenticated("Token has been revoked")
		}
	}
	return claims, nil
}
