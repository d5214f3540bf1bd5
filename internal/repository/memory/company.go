package memory

import (
	"context"
	"sort"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type companyRepository struct {
	s *Store
}

func NewCompanyRepository(s *Store) repository.CompanyRepository {
	return &companyRepository{s: s}
}

func (r *companyRepository) CreateCompany(ctx context.Context, company *domain.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.companies {
		if existing.Email == company.Email || existing.Domain == company.Domain {
			return repository.ErrDuplicate
		}
	}
	company.ID = r.s.id()
	now := r.s.now()
	if company.CreatedAt.IsZero() {
		company.CreatedAt = now
	}
	company.UpdatedAt = now
	if company.VerificationStatus == "" {
		company.VerificationStatus = domain.VerificationPending
	}
	r.s.companies[company.ID] = *company
	return nil
}

func (r *companyRepository) FindCompanyByID(ctx context.Context, id uint) (*domain.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.companies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *companyRepository) FindCompanyByEmail(ctx context.Context, email string) (*domain.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.companies {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *companyRepository) FindConflicting(ctx context.Context, email, domainName string, excludeID uint) (*domain.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.companies {
		if c.ID == excludeID {
			continue
		}
		if (email != "" && c.Email == email) || (domainName != "" && c.Domain == domainName) {
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *companyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *companyRepository) SaveCompany(ctx context.Context, company *domain.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.companies[company.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, other := range r.s.companies {
		if other.ID != company.ID && (other.Email == company.Email || other.Domain == company.Domain) {
			return repository.ErrDuplicate
		}
	}
	company.UpdatedAt = r.s.now()
	r.s.companies[company.ID] = *company
	return nil
}
