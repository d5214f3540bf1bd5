package memory

import (
	"context"
	"sort"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type jobRepository struct {
	s *Store
}

func NewJobRepository(s *Store) repository.JobRepository {
	return &jobRepository{s: s}
}

func (r *jobRepository) CreateJob(ctx context.Context, job *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.companies[job.CompanyID]; !ok {
		return repository.ErrNotFound
	}
	job.ID = r.s.id()
	now := r.s.now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now
	if job.RequiredSkills == nil {
		job.RequiredSkills = []string{}
	}
	r.s.jobs[job.ID] = copyJob(*job)
	return nil
}

func (r *jobRepository) FindJobByID(ctx context.Context, id uint) (*domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	j, ok := r.s.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	j = copyJob(j)
	return &j, nil
}

func (r *jobRepository) SaveJob(ctx context.Context, job *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.jobs[job.ID]; !ok {
		return repository.ErrNotFound
	}
	job.UpdatedAt = r.s.now()
	r.s.jobs[job.ID] = copyJob(*job)
	return nil
}

func (r *jobRepository) DeleteJob(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.jobs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.jobs, id)
	for appID, app := range r.s.applications {
		if app.JobID == id {
			delete(r.s.applications, appID)
		}
	}
	return nil
}

func (r *jobRepository) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return r.list(func(domain.Job) bool { return true }), nil
}

func (r *jobRepository) ListJobsByCompany(ctx context.Context, companyID uint) ([]domain.Job, error) {
	return r.list(func(j domain.Job) bool { return j.CompanyID == companyID }), nil
}

func (r *jobRepository) list(keep func(domain.Job) bool) []domain.Job {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Job, 0, len(r.s.jobs))
	for _, j := range r.s.jobs {
		if keep(j) {
			out = append(out, copyJob(j))
		}
	}
	sortNewestFirst(out)
	return out
}

func sortNewestFirst(jobs []domain.Job) {
	sort.Slice(jobs, func(i, j int) bool {
		if !jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
		}
		return jobs[i].ID > jobs[j].ID
	})
}
