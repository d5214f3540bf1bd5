package memory

import (
	"context"
	"sort"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type collegeRepository struct {
	s *Store
}

func NewCollegeRepository(s *Store) repository.CollegeRepository {
	return &collegeRepository{s: s}
}

func (r *collegeRepository) CreateCollege(ctx context.Context, college *domain.College) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	college.ID = r.s.id()
	r.s.colleges[college.ID] = *college
	return nil
}

func (r *collegeRepository) FindCollegeByID(ctx context.Context, id uint) (*domain.College, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.colleges[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *collegeRepository) ListColleges(ctx context.Context) ([]domain.College, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.College, 0, len(r.s.colleges))
	for _, c := range r.s.colleges {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
