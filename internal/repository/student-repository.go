package repository

import (
	"context"
	"errors"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"gorm.io/gorm"
)

type StudentRepository interface {
	CreateStudent(ctx context.Context, student *domain.Student) error
	FindStudentByID(ctx context.Context, id uint) (*domain.Student, error)
	FindStudentByEmail(ctx context.Context, email string) (*domain.Student, error)
	FindStudentByUsername(ctx context.Context, username string) (*domain.Student, error)
	// FindConflicting returns a student other than excludeID holding email or
	// username, or ErrNotFound. Empty values are ignored.
	FindConflicting(ctx context.Context, email, username string, excludeID uint) (*domain.Student, error)
	ListStudents(ctx context.Context) ([]domain.Student, error)
	SaveStudent(ctx context.Context, student *domain.Student) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) CreateStudent(ctx context.Context, student *domain.Student) error {
	if student == nil {
		return errors.New("nil student")
	}
	return translate("create student", r.db.WithContext(ctx).Create(student).Error)
}

func (r *studentRepository) FindStudentByID(ctx context.Context, id uint) (*domain.Student, error) {
	var student domain.Student
	if err := r.db.WithContext(ctx).Preload("College").First(&student, id).Error; err != nil {
		return nil, translate("find student by id", err)
	}
	return &student, nil
}

func (r *studentRepository) FindStudentByEmail(ctx context.Context, email string) (*domain.Student, error) {
	var student domain.Student
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&student).Error; err != nil {
		return nil, translate("find student by email", err)
	}
	return &student, nil
}

func (r *studentRepository) FindStudentByUsername(ctx context.Context, username string) (*domain.Student, error) {
	var student domain.Student
	if err := r.db.WithContext(ctx).Preload("College").Where("username = ?", username).First(&student).Error; err != nil {
		return nil, translate("find student by username", err)
	}
	return &student, nil
}

func (r *studentRepository) FindConflicting(ctx context.Context, email, username string, excludeID uint) (*domain.Student, error) {
	if email == "" && username == "" {
		return nil, ErrNotFound
	}

	q := r.db.WithContext(ctx).Model(&domain.Student{})
	switch {
	case email != "" && username != "":
		q = q.Where("(email = ? OR username = ?)", email, username)
	case email != "":
		q = q.Where("email = ?", email)
	default:
		q = q.Where("username = ?", username)
	}
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var student domain.Student
	if err := q.First(&student).Error; err != nil {
		return nil, translate("find conflicting student", err)
	}
	return &student, nil
}

func (r *studentRepository) ListStudents(ctx context.Context) ([]domain.Student, error) {
	var students []domain.Student
	if err := r.db.WithContext(ctx).Preload("College").Order("id ASC").Find(&students).Error; err != nil {
		return nil, translate("list students", err)
	}
	return students, nil
}

func (r *studentRepository) SaveStudent(ctx context.Context, student *domain.Student) error {
	if student == nil {
		return errors.New("nil student")
	}
	// Omit associations so a preloaded College is not written back.
	return translate("save student", r.db.WithContext(ctx).Omit("College", "Skills", "Applications").Save(student).Error)
}
