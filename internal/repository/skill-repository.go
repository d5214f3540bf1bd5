package repository

import (
	"context"
	"errors"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"gorm.io/gorm"
)

type SkillRepository interface {
	// ReplaceStudentSkills swaps the student's whole skill set atomically.
	ReplaceStudentSkills(ctx context.Context, studentID uint, skills []domain.Skill) error
	ListStudentSkills(ctx context.Context, studentID uint) ([]domain.Skill, error)
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) ReplaceStudentSkills(ctx context.Context, studentID uint, skills []domain.Skill) error {
	if studentID == 0 {
		return errors.New("invalid student_id")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", studentID).Delete(&domain.StudentSkill{}).Error; err != nil {
			return err
		}

		if len(skills) == 0 {
			return nil
		}

		rows := make([]domain.StudentSkill, 0, len(skills))
		for _, s := range skills {
			rows = append(rows, domain.StudentSkill{
				StudentID: studentID,
				Skill:     s,
			})
		}
		return tx.Create(&rows).Error
	})
	return translate("replace student skills", err)
}

func (r *skillRepository) ListStudentSkills(ctx context.Context, studentID uint) ([]domain.Skill, error) {
	var skills []domain.Skill
	err := r.db.WithContext(ctx).
		Model(&domain.StudentSkill{}).
		Where("student_id = ?", studentID).
		Order("id ASC").
		Pluck("skill", &skills).Error
	if err != nil {
		return nil, translate("list student skills", err)
	}
	return skills, nil
}
