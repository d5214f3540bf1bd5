// Package memory holds map-backed implementations of the repository
// interfaces, used by tests and by STORE_DRIVER=memory.
package memory

import (
	"sync"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

// Store is the shared state behind every in-memory repository. Records are
// copied on the way in and out.
type Store struct {
	mu sync.RWMutex

	students     map[uint]domain.Student
	companies    map[uint]domain.Company
	colleges     map[uint]domain.College
	jobs         map[uint]domain.Job
	skills       map[uint][]domain.Skill
	applications map[uint]domain.JobApplication
	revoked      map[string]time.Time

	nextID uint

	// Now stamps CreatedAt/UpdatedAt when they are zero.
	Now func() time.Time
}

func NewStore() *Store {
	return &Store{
		students:     make(map[uint]domain.Student),
		companies:    make(map[uint]domain.Company),
		colleges:     make(map[uint]domain.College),
		jobs:         make(map[uint]domain.Job),
		skills:       make(map[uint][]domain.Skill),
		applications: make(map[uint]domain.JobApplication),
		revoked:      make(map[string]time.Time),
		Now:          time.Now,
	}
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func (s *Store) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func copyJob(j domain.Job) domain.Job {
	if j.RequiredSkills != nil {
		skills := make([]string, len(j.RequiredSkills))
		copy(skills, j.RequiredSkills)
		j.RequiredSkills = skills
	}
	j.Applications = nil
	return j
}

// Repositories wires every in-memory repository to s. There is no rate
// limiter in memory mode.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Students:     NewStudentRepository(s),
		Companies:    NewCompanyRepository(s),
		Colleges:     NewCollegeRepository(s),
		Jobs:         NewJobRepository(s),
		Skills:       NewSkillRepository(s),
		Applications: NewApplicationRepository(s),
		Tokens:       NewTokenRepository(s),
	}
}
