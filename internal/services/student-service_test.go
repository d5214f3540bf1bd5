package services

import (
	"testing"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceSkillsDropsUnknown(t *testing.T) {
	env := newTestEnv(t)
	st := env.student(t, "alice")

	skills, err := env.svc.Students.ReplaceSkills(env.ctx, st.ID, []string{"Python", "NotARealSkill", "Python"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Skill{domain.SkillPython}, skills)

	stored, err := env.svc.Students.GetSkills(env.ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Skill{domain.SkillPython}, stored)

	_, err = env.svc.Students.ReplaceSkills(env.ctx, st.ID, []string{"Docker", "Git"})
	require.NoError(t, err)
	stored, err = env.svc.Students.GetSkills(env.ctx, st.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Skill{domain.SkillDocker, domain.SkillGit}, stored)
}

func TestReplaceSkillsNoValidSkills(t *testing.T) {
	env := newTestEnv(t)
	st := env.student(t, "alice")

	_, err := env.svc.Students.ReplaceSkills(env.ctx, st.ID, []string{"Cobol"})
	appErr := requireKind(t, err, helper.KindValidation)
	assert.Equal(t, "No valid skills provided", appErr.Message)

	_, err = env.svc.Students.ReplaceSkills(env.ctx, st.ID, nil)
	requireKind(t, err, helper.KindValidation)

	_, err = env.svc.Students.ReplaceSkills(env.ctx, 999, []string{"Python"})
	requireKind(t, err, helper.KindNotFound)
}

func TestGetSkillsEmpty(t *testing.T) {
	env := newTestEnv(t)
	st := env.student(t, "alice")

	skills, err := env.svc.Students.GetSkills(env.ctx, st.ID)
	require.NoError(t, err)
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestUpdateStudent(t *testing.T) {
	env := newTestEnv(t)
	alice := env.student(t, "alice")
	env.student(t, "bob")

	college, err := env.svc.Colleges.CreateCollege(env.ctx, dto.CreateCollegeRequest{Name: "State University", Location: "Springfield"})
	require.NoError(t, err)

	name := "Alice <b>Liddell</b>"
	year := 2027
	updated, err := env.svc.Students.UpdateStudent(env.ctx, alice.ID, dto.UpdateStudentRequest{
		Name:      &name,
		GradYear:  &year,
		CollegeID: &college.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", updated.Name)
	require.NotNil(t, updated.College)
	assert.Equal(t, "State University", updated.College.Name)
	assert.Equal(t, 2027, *updated.GradYear)

	taken := "bob"
	_, err = env.svc.Students.UpdateStudent(env.ctx, alice.ID, dto.UpdateStudentRequest{Username: &taken})
	requireKind(t, err, helper.KindConflict)

	missing := uint(999)
	_, err = env.svc.Students.UpdateStudent(env.ctx, alice.ID, dto.UpdateStudentRequest{CollegeID: &missing})
	requireKind(t, err, helper.KindNotFound)

	byName, err := env.svc.Students.GetStudentByUsername(env.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)
}
