package services

import (
	"context"
	"errors"
	"strings"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type CompanyService interface {
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	GetCompany(ctx context.Context, id uint) (*domain.Company, error)
	UpdateCompany(ctx context.Context, id uint, input dto.UpdateCompanyRequest) (*domain.Company, error)
}

type companyService struct {
	companies repository.CompanyRepository
}

func NewCompanyService(repos repository.Repositories) CompanyService {
	return &companyService{companies: repos.Companies}
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companies.ListCompanies(ctx)
	if err != nil {
		return nil, repoError(err, "Company not found")
	}
	return companies, nil
}

func (s *companyService) GetCompany(ctx context.Context, id uint) (*domain.Company, error) {
	company, err := s.companies.FindCompanyByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Company not found")
	}
	return company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, id uint, input dto.UpdateCompanyRequest) (*domain.Company, error) {
	company, err := s.companies.FindCompanyByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Company not found")
	}

	var email, domainName string
	if input.Email != nil {
		email = normalizeEmail(*input.Email)
	}
	if input.Domain != nil {
		domainName = strings.ToLower(strings.TrimSpace(*input.Domain))
	}
	if email != "" || domainName != "" {
		_, err := s.companies.FindConflicting(ctx, email, domainName, id)
		if err == nil {
			return nil, helper.Conflict("Email or domain is already taken by another company")
		}
		if !isNotFound(err) {
			return nil, repoError(err, "Company not found")
		}
	}

	if email != "" {
		company.Email = email
	}
	if domainName != "" {
		company.Domain = domainName
	}
	if input.CompanyName != nil {
		company.CompanyName = sanitizePlain(*input.CompanyName)
	}
	if input.Description != nil {
		company.Description = sanitizeOptional(input.Description, true)
	}
	if input.Website != nil {
		company.Website = input.Website
	}
	if input.Address != nil {
		company.Address = sanitizeOptional(input.Address, false)
	}
	if input.LinkedinURL != nil {
		company.LinkedinURL = input.LinkedinURL
	}
	if input.IsVerified != nil {
		company.IsVerified = *input.IsVerified
	}
	if input.VerificationStatus != nil {
		company.VerificationStatus = *input.VerificationStatus
	}

	if err := s.companies.SaveCompany(ctx, company); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, helper.Conflict("Email or domain is already taken by another company")
		}
		return nil, repoError(err, "Company not found")
	}
	return company, nil
}
