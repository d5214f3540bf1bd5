package memory

import (
	"context"
	"sort"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type applicationRepository struct {
	s *Store
}

func NewApplicationRepository(s *Store) repository.ApplicationRepository {
	return &applicationRepository{s: s}
}

func (r *applicationRepository) CreateApplication(ctx context.Context, app *domain.JobApplication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.students[app.StudentID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.s.jobs[app.JobID]; !ok {
		return repository.ErrNotFound
	}
	for _, existing := range r.s.applications {
		if existing.StudentID == app.StudentID && existing.JobID == app.JobID {
			return repository.ErrDuplicate
		}
	}
	app.ID = r.s.id()
	if app.Status == "" {
		app.Status = domain.ApplicationApplied
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = r.s.now()
	}
	r.s.applications[app.ID] = *app
	return nil
}

func (r *applicationRepository) FindApplication(ctx context.Context, studentID, jobID uint) (*domain.JobApplication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, app := range r.s.applications {
		if app.StudentID == studentID && app.JobID == jobID {
			return &app, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *applicationRepository) FindApplicationByID(ctx context.Context, id uint) (*domain.JobApplication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	app, ok := r.s.applications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &app, nil
}

func (r *applicationRepository) UpdateApplicationStatus(ctx context.Context, id uint, status domain.ApplicationStatus) (*domain.JobApplication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	app, ok := r.s.applications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	app.Status = status
	r.s.applications[id] = app
	return &app, nil
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID uint) ([]dto.StudentApplication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	apps := r.filter(func(a domain.JobApplication) bool { return a.StudentID == studentID })
	out := make([]dto.StudentApplication, 0, len(apps))
	for _, a := range apps {
		job, ok := r.s.jobs[a.JobID]
		if !ok {
			continue
		}
		out = append(out, dto.StudentApplication{Application: a, Job: copyJob(job)})
	}
	return out, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID uint) ([]dto.Applicant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	apps := r.filter(func(a domain.JobApplication) bool { return a.JobID == jobID })
	out := make([]dto.Applicant, 0, len(apps))
	for _, a := range apps {
		st, ok := r.s.students[a.StudentID]
		if !ok {
			continue
		}
		out = append(out, dto.Applicant{
			ApplicationID: a.ID,
			Status:        a.Status,
			AppliedAt:     a.CreatedAt,
			Student:       st,
		})
	}
	return out, nil
}

// filter must be called with the lock held. Results are newest first.
func (r *applicationRepository) filter(keep func(domain.JobApplication) bool) []domain.JobApplication {
	out := make([]domain.JobApplication, 0)
	for _, a := range r.s.applications {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
