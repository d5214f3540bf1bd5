package helper

import (
	"errors"
	"testing"

	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Equal(t, 400, appErr.Status())

	names := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateStudentRegister(t *testing.T) {
	v := NewValidator()

	ok := dto.StudentRegisterRequest{Email: "a@b.edu", Password: "secret1", Username: "alice", Name: "Alice"}
	assert.NoError(t, v.Validate(ok))

	err := v.Validate(dto.StudentRegisterRequest{Email: "nope", Password: "123", Username: "al"})
	assert.ElementsMatch(t, []string{"email", "password", "username", "name"}, fieldNames(t, err))
}

func TestValidateCompanyDomain(t *testing.T) {
	v := NewValidator()

	req := dto.CompanyRegisterRequest{CompanyName: "Acme", Email: "hr@acme.com", Password: "secret1", Domain: "acme.com"}
	assert.NoError(t, v.Validate(req))

	req.Domain = "not a domain"
	assert.Equal(t, []string{"domain"}, fieldNames(t, v.Validate(req)))
}

func TestValidateJobSkillsReportIndex(t *testing.T) {
	v := NewValidator()

	req := dto.CreateJobRequest{
		Title:          "Backend Intern",
		Description:    "APIs",
		Location:       "Remote",
		JobType:        "INTERNSHIP",
		JobMode:        "REMOTE",
		RequiredSkills: []string{"Python", "Cobol"},
	}
	assert.Equal(t, []string{"requiredSkills[1]"}, fieldNames(t, v.Validate(req)))

	req.RequiredSkills = []string{"Python", "GoLang"}
	assert.NoError(t, v.Validate(req))

	req.JobType = "GIG"
	assert.Equal(t, []string{"jobType"}, fieldNames(t, v.Validate(req)))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("x")))
	assert.Equal(t, KindConflict, KindOf(Conflict("x")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	wrapped := Internal("boom", errors.New("db down"))
	assert.Equal(t, 500, wrapped.Status())
	assert.Equal(t, "boom: db down", wrapped.Error())
}
