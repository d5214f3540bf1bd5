package repository

import (
	"context"
	"errors"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *domain.Company) error
	FindCompanyByID(ctx context.Context, id uint) (*domain.Company, error)
	FindCompanyByEmail(ctx context.Context, email string) (*domain.Company, error)
	// FindConflicting returns a company other than excludeID holding email or
	// domain, or ErrNotFound. Empty values are ignored.
	FindConflicting(ctx context.Context, email, domainName string, excludeID uint) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	SaveCompany(ctx context.Context, company *domain.Company) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) CreateCompany(ctx context.Context, company *domain.Company) error {
	if company == nil {
		return errors.New("nil company")
	}
	return translate("create company", r.db.WithContext(ctx).Create(company).Error)
}

func (r *companyRepository) FindCompanyByID(ctx context.Context, id uint) (*domain.Company, error) {
	var company domain.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, translate("find company by id", err)
	}
	return &company, nil
}

func (r *companyRepository) FindCompanyByEmail(ctx context.Context, email string) (*domain.Company, error) {
	var company domain.Company
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&company).Error; err != nil {
		return nil, translate("find company by email", err)
	}
	return &company, nil
}

func (r *companyRepository) FindConflicting(ctx context.Context, email, domainName string, excludeID uint) (*domain.Company, error) {
	if email == "" && domainName == "" {
		return nil, ErrNotFound
	}

	q := r.db.WithContext(ctx).Model(&domain.Company{})
	switch {
	case email != "" && domainName != "":
		q = q.Where("(email = ? OR domain = ?)", email, domainName)
	case email != "":
		q = q.Where("email = ?", email)
	default:
		q = q.Where("domain = ?", domainName)
	}
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var company domain.Company
	if err := q.First(&company).Error; err != nil {
		return nil, translate("find conflicting company", err)
	}
	return &company, nil
}

func (r *companyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&companies).Error; err != nil {
		return nil, translate("list companies", err)
	}
	return companies, nil
}

func (r *companyRepository) SaveCompany(ctx context.Context, company *domain.Company) error {
	if company == nil {
		return errors.New("nil company")
	}
	return translate("save company", r.db.WithContext(ctx).Omit("Jobs").Save(company).Error)
}
