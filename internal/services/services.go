package services

import (
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/interfaces"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type Services struct {
	Auth         AuthService
	Students     StudentService
	Companies    CompanyService
	Colleges     CollegeService
	Jobs         JobService
	Matching     MatchingService
	Applications ApplicationService
	Media        MediaService
}

// Deps are the collaborators shared by every service. Producer and Uploader
// may be nil.
type Deps struct {
	Repos    repository.Repositories
	Auth     helper.Auth
	Producer interfaces.ProducerHandler
	Uploader interfaces.Uploader
}

func NewServices(d Deps) Services {
	return Services{
		Auth:         NewAuthService(d.Repos, d.Auth),
		Students:     NewStudentService(d.Repos),
		Companies:    NewCompanyService(d.Repos),
		Colleges:     NewCollegeService(d.Repos),
		Jobs:         NewJobService(d.Repos),
		Matching:     NewMatchingService(d.Repos),
		Applications: NewApplicationService(d.Repos, d.Producer),
		Media:        NewMediaService(d.Repos, d.Uploader),
	}
}
