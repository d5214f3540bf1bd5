package services

import (
	"context"
	"errors"
	"strings"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type StudentService interface {
	ListStudents(ctx context.Context) ([]domain.Student, error)
	GetStudentByID(ctx context.Context, id uint) (*domain.Student, error)
	GetStudentByUsername(ctx context.Context, username string) (*domain.Student, error)
	UpdateStudent(ctx context.Context, id uint, input dto.UpdateStudentRequest) (*domain.Student, error)

	// ReplaceSkills drops unknown skill names and stores the rest as the
	// student's whole skill set.
	ReplaceSkills(ctx context.Context, studentID uint, names []string) ([]domain.Skill, error)
	GetSkills(ctx context.Context, studentID uint) ([]domain.Skill, error)
}

type studentService struct {
	students repository.StudentRepository
	colleges repository.CollegeRepository
	skills   repository.SkillRepository
}

func NewStudentService(repos repository.Repositories) StudentService {
	return &studentService{
		students: repos.Students,
		colleges: repos.Colleges,
		skills:   repos.Skills,
	}
}

func (s *studentService) ListStudents(ctx context.Context) ([]domain.Student, error) {
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		return nil, repoError(err, "Student not found")
	}
	return students, nil
}

func (s *studentService) GetStudentByID(ctx context.Context, id uint) (*domain.Student, error) {
	student, err := s.students.FindStudentByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Student not found")
	}
	return student, nil
}

func (s *studentService) GetStudentByUsername(ctx context.Context, username string) (*domain.Student, error) {
	student, err := s.students.FindStudentByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, repoError(err, "Student not found")
	}
	return student, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id uint, input dto.UpdateStudentRequest) (*domain.Student, error) {
	student, err := s.students.FindStudentByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Student not found")
	}

	var email, username string
	if input.Email != nil {
		email = normalizeEmail(*input.Email)
	}
	if input.Username != nil {
		username = strings.TrimSpace(*input.Username)
	}
	if email != "" || username != "" {
		_, err := s.students.FindConflicting(ctx, email, username, id)
		if err == nil {
			return nil, helper.Conflict("Email or username is already taken by another student")
		}
		if !isNotFound(err) {
			return nil, repoError(err, "Student not found")
		}
	}

	if input.CollegeID != nil {
		if _, err := s.colleges.FindCollegeByID(ctx, *input.CollegeID); err != nil {
			return nil, repoError(err, "College not found")
		}
		student.CollegeID = input.CollegeID
	}

	if email != "" {
		student.Email = email
	}
	if username != "" {
		student.Username = username
	}
	if input.Name != nil {
		student.Name = sanitizePlain(*input.Name)
	}
	if input.Course != nil {
		student.Course = input.Course
	}
	if input.AdmissionYear != nil {
		student.AdmissionYear = input.AdmissionYear
	}
	if input.CurrentYear != nil {
		student.CurrentYear = input.CurrentYear
	}
	if input.GradYear != nil {
		student.GradYear = input.GradYear
	}
	if input.GithubURL != nil {
		student.GithubURL = input.GithubURL
	}
	if input.ResumeURL != nil {
		student.ResumeURL = input.ResumeURL
	}

	if err := s.students.SaveStudent(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, helper.Conflict("Email or username is already taken by another student")
		}
		return nil, repoError(err, "Student not found")
	}
	return s.GetStudentByID(ctx, id)
}

func (s *studentService) ReplaceSkills(ctx context.Context, studentID uint, names []string) ([]domain.Skill, error) {
	if _, err := s.students.FindStudentByID(ctx, studentID); err != nil {
		return nil, repoError(err, "Student not found")
	}

	skills := domain.FilterSkills(names)
	if len(skills) == 0 {
		return nil, helper.NewValidationError("No valid skills provided", helper.FieldError{
			Field:   "skills",
			Message: "must contain at least one recognized skill",
		})
	}

	if err := s.skills.ReplaceStudentSkills(ctx, studentID, skills); err != nil {
		return nil, repoError(err, "Student not found")
	}
	return skills, nil
}

func (s *studentService) GetSkills(ctx context.Context, studentID uint) ([]domain.Skill, error) {
	if _, err := s.students.FindStudentByID(ctx, studentID); err != nil {
		return nil, repoError(err, "Student not found")
	}
	skills, err := s.skills.ListStudentSkills(ctx, studentID)
	if err != nil {
		return nil, repoError(err, "Student not found")
	}
	if skills == nil {
		skills = []domain.Skill{}
	}
	return skills, nil
}
