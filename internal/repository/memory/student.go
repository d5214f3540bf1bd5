package memory

import (
	"context"
	"sort"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type studentRepository struct {
	s *Store
}

func NewStudentRepository(s *Store) repository.StudentRepository {
	return &studentRepository{s: s}
}

func (r *studentRepository) withCollege(st domain.Student) *domain.Student {
	st.College = nil
	if st.CollegeID != nil {
		if c, ok := r.s.colleges[*st.CollegeID]; ok {
			st.College = &c
		}
	}
	return &st
}

func (r *studentRepository) CreateStudent(ctx context.Context, student *domain.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.students {
		if existing.Email == student.Email || existing.Username == student.Username {
			return repository.ErrDuplicate
		}
	}
	student.ID = r.s.id()
	now := r.s.now()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now

	stored := *student
	stored.College = nil
	r.s.students[student.ID] = stored
	return nil
}

func (r *studentRepository) FindStudentByID(ctx context.Context, id uint) (*domain.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st, ok := r.s.students[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.withCollege(st), nil
}

func (r *studentRepository) FindStudentByEmail(ctx context.Context, email string) (*domain.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, st := range r.s.students {
		if st.Email == email {
			return r.withCollege(st), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *studentRepository) FindStudentByUsername(ctx context.Context, username string) (*domain.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, st := range r.s.students {
		if st.Username == username {
			return r.withCollege(st), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *studentRepository) FindConflicting(ctx context.Context, email, username string, excludeID uint) (*domain.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, st := range r.s.students {
		if st.ID == excludeID {
			continue
		}
		if (email != "" && st.Email == email) || (username != "" && st.Username == username) {
			return r.withCollege(st), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *studentRepository) ListStudents(ctx context.Context) ([]domain.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Student, 0, len(r.s.students))
	for _, st := range r.s.students {
		out = append(out, *r.withCollege(st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *studentRepository) SaveStudent(ctx context.Context, student *domain.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.students[student.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, other := range r.s.students {
		if other.ID != student.ID && (other.Email == student.Email || other.Username == student.Username) {
			return repository.ErrDuplicate
		}
	}
	student.UpdatedAt = r.s.now()
	stored := *student
	stored.College = nil
	r.s.students[student.ID] = stored
	return nil
}
