package services

import (
	"context"
	"sort"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type MatchingService interface {
	// ComputeMatches ranks every job by how many of its required skills the
	// student has. Jobs with no overlap are left out.
	ComputeMatches(ctx context.Context, studentID uint) ([]dto.MatchedJob, error)
}

type matchingService struct {
	students repository.StudentRepository
	skills   repository.SkillRepository
	jobs     repository.JobRepository
}

func NewMatchingService(repos repository.Repositories) MatchingService {
	return &matchingService{
		students: repos.Students,
		skills:   repos.Skills,
		jobs:     repos.Jobs,
	}
}

func (s *matchingService) ComputeMatches(ctx context.Context, studentID uint) ([]dto.MatchedJob, error) {
	if _, err := s.students.FindStudentByID(ctx, studentID); err != nil {
		return nil, repoError(err, "Student not found")
	}

	skills, err := s.skills.ListStudentSkills(ctx, studentID)
	if err != nil {
		return nil, repoError(err, "Student not found")
	}
	jobs, err := s.jobs.ListJobs(ctx)
	if err != nil {
		return nil, repoError(err, "Job not found")
	}

	return RankJobs(domain.NewSkillSet(skills), jobs), nil
}

// RankJobs scores jobs against a skill set. Order is score descending, then
// newest first, then highest id first.
func RankJobs(skills domain.SkillSet, jobs []domain.Job) []dto.MatchedJob {
	matched := make([]dto.MatchedJob, 0, len(jobs))
	for _, job := range jobs {
		score := 0
		for _, sk := range job.Skills() {
			if skills.Has(sk) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		matched = append(matched, dto.MatchedJob{Job: job, MatchScore: score})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return matched
}
