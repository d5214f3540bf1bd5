package repository

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Repositories groups every store the services depend on. Tokens and Limiter
// are nil when no redis is configured.
type Repositories struct {
	Students     StudentRepository
	Companies    CompanyRepository
	Colleges     CollegeRepository
	Jobs         JobRepository
	Skills       SkillRepository
	Applications ApplicationRepository
	Tokens       TokenRepository
	Limiter      RateLimiter
}

func NewGormRepositories(db *gorm.DB, rdb *redis.Client) Repositories {
	repos := Repositories{
		Students:     NewStudentRepository(db),
		Companies:    NewCompanyRepository(db),
		Colleges:     NewCollegeRepository(db),
		Jobs:         NewJobRepository(db),
		Skills:       NewSkillRepository(db),
		Applications: NewApplicationRepository(db),
	}
	if rdb != nil {
		repos.Tokens = NewTokenRepository(rdb)
		repos.Limiter = NewRateLimiter(rdb)
	}
	return repos
}
