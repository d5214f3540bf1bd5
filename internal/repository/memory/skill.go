package memory

import (
	"context"
	"errors"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type skillRepository struct {
	s *Store
}

func NewSkillRepository(s *Store) repository.SkillRepository {
	return &skillRepository{s: s}
}

func (r *skillRepository) ReplaceStudentSkills(ctx context.Context, studentID uint, skills []domain.Skill) error {
	if studentID == 0 {
		return errors.New("invalid student_id")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.students[studentID]; !ok {
		return repository.ErrNotFound
	}
	seen := make(map[domain.Skill]struct{}, len(skills))
	out := make([]domain.Skill, 0, len(skills))
	for _, sk := range skills {
		if _, dup := seen[sk]; dup {
			return repository.ErrDuplicate
		}
		seen[sk] = struct{}{}
		out = append(out, sk)
	}
	r.s.skills[studentID] = out
	return nil
}

func (r *skillRepository) ListStudentSkills(ctx context.Context, studentID uint) ([]domain.Skill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Skill, len(r.s.skills[studentID]))
	copy(out, r.s.skills[studentID])
	return out, nil
}
