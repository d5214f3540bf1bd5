package services

import (
	"errors"
	"testing"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyThenDuplicateConflicts(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "Acme", "acme.com")
	job := env.job(t, acme.ID, "Backend Intern", "GoLang")
	st := env.student(t, "alice")

	app, err := env.svc.Applications.Apply(env.ctx, st.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationApplied, app.Status)
	assert.Equal(t, st.ID, app.StudentID)
	assert.Equal(t, job.ID, app.JobID)

	_, err = env.svc.Applications.Apply(env.ctx, st.ID, job.ID)
	appErr := requireKind(t, err, helper.KindConflict)
	assert.Equal(t, "You have already applied to this job", appErr.Message)

	events := env.producer.published()
	require.Len(t, events, 1)
	assert.Equal(t, dto.EventApplicationSubmitted, events[0].key)
	assert.Equal(t, "hr@acme.com", events[0].event.CompanyEmail)
	assert.Equal(t, "Backend Intern", events[0].event.JobTitle)
	assert.Equal(t, st.Email, events[0].event.StudentEmail)
}

func TestApplyNotFound(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "Acme", "acme.com")
	job := env.job(t, acme.ID, "Backend Intern")
	st := env.student(t, "alice")

	_, err := env.svc.Applications.Apply(env.ctx, st.ID, job.ID+100)
	requireKind(t, err, helper.KindNotFound)

	_, err = env.svc.Applications.Apply(env.ctx, 999, job.ID)
	requireKind(t, err, helper.KindNotFound)
}

func TestApplySucceedsWhenPublishFails(t *testing.T) {
	env := newTestEnv(t)
	env.producer.err = errors.New("broker down")
	acme := env.company(t, "Acme", "acme.com")
	job := env.job(t, acme.ID, "Backend Intern")
	st := env.student(t, "alice")

	_, err := env.svc.Applications.Apply(env.ctx, st.ID, job.ID)
	assert.NoError(t, err)
}

func TestUpdateStatusAnyTransition(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "Acme", "acme.com")
	job := env.job(t, acme.ID, "Backend Intern")
	st := env.student(t, "alice")
	app, err := env.svc.Applications.Apply(env.ctx, st.ID, job.ID)
	require.NoError(t, err)

	for _, status := range []domain.ApplicationStatus{
		domain.ApplicationHired,
		domain.ApplicationApplied,
		domain.ApplicationRejected,
		domain.ApplicationShortlisted,
	} {
		updated, err := env.svc.Applications.UpdateStatus(env.ctx, acme.ID, app.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	events := env.producer.published()
	require.Len(t, events, 5)
	last := events[4]
	assert.Equal(t, dto.EventApplicationStatusChanged, last.key)
	assert.Equal(t, string(domain.ApplicationShortlisted), last.event.Status)
	assert.Equal(t, st.Email, last.event.StudentEmail)
}

func TestUpdateStatusInvalid(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Applications.UpdateStatus(env.ctx, 0, 1, domain.ApplicationStatus("ARCHIVED"))
	appErr := requireKind(t, err, helper.KindValidation)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "status", appErr.Fields[0].Field)
}

func TestUpdateStatusMissingApplication(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Applications.UpdateStatus(env.ctx, 0, 42, domain.ApplicationHired)
	requireKind(t, err, helper.KindNotFound)
}

func TestUpdateStatusOtherCompanyForbidden(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "Acme", "acme.com")
	globex := env.company(t, "Globex", "globex.com")
	job := env.job(t, acme.ID, "Backend Intern")
	st := env.student(t, "alice")
	app, err := env.svc.Applications.Apply(env.ctx, st.ID, job.ID)
	require.NoError(t, err)

	_, err = env.svc.Applications.UpdateStatus(env.ctx, globex.ID, app.ID, domain.ApplicationHired)
	requireKind(t, err, helper.KindForbidden)

	_, err = env.svc.Applications.ListApplicantsForJob(env.ctx, globex.ID, job.ID)
	requireKind(t, err, helper.KindForbidden)
}

func TestListApplications(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "Acme", "acme.com")
	j1 := env.job(t, acme.ID, "Backend Intern")
	j2 := env.job(t, acme.ID, "Frontend Intern")
	alice := env.student(t, "alice")
	bob := env.student(t, "bob")

	for _, pair := range [][2]uint{{alice.ID, j1.ID}, {alice.ID, j2.ID}, {bob.ID, j1.ID}} {
		_, err := env.svc.Applications.Apply(env.ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	mine, err := env.svc.Applications.ListForStudent(env.ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	titles := []string{mine[0].Job.Title, mine[1].Job.Title}
	assert.ElementsMatch(t, []string{"Backend Intern", "Frontend Intern"}, titles)

	applicants, err := env.svc.Applications.ListApplicantsForJob(env.ctx, acme.ID, j1.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 2)
	usernames := []string{applicants[0].Student.Username, applicants[1].Student.Username}
	assert.ElementsMatch(t, []string{"alice", "bob"}, usernames)

	none, err := env.svc.Applications.ListForStudent(env.ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
