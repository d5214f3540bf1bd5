package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/repository/memory"
	"github.com/SundayYogurt/jobboard_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "api-test-secret"

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Token   string              `json:"token"`
	Errors  []helper.FieldError `json:"errors"`
}

type testServer struct {
	t   *testing.T
	app *fiber.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	auth := helper.SetupAuth(testSecret, time.Hour)
	repos := memory.NewStore().Repositories()
	svcs := services.NewServices(services.Deps{Repos: repos, Auth: auth})
	return &testServer{t: t, app: NewApp(AppDeps{Services: svcs, Auth: auth})}
}

type requestOpt func(*http.Request)

func bearer(token string) requestOpt {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func cookie(token string) requestOpt {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: helper.AuthCookieName, Value: token}) }
}

func (s *testServer) do(method, path string, body interface{}, opts ...requestOpt) (int, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	require.NoError(s.t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func (s *testServer) registerAndLoginStudent(username string) (uint, string) {
	s.t.Helper()
	status, env := s.do(http.MethodPost, "/auth/student/register", map[string]string{
		"email": username + "@uni.edu", "password": "secret123", "username": username, "name": "Student " + username,
	})
	require.Equal(s.t, http.StatusCreated, status, env.Message)

	status, env = s.do(http.MethodPost, "/auth/student/login", map[string]string{
		"email": username + "@uni.edu", "password": "secret123",
	})
	require.Equal(s.t, http.StatusOK, status, env.Message)
	require.NotEmpty(s.t, env.Token)

	var st domain.Student
	require.NoError(s.t, json.Unmarshal(env.Data, &st))
	return st.ID, env.Token
}

func (s *testServer) registerAndLoginCompany(domainName string) (uint, string) {
	s.t.Helper()
	status, env := s.do(http.MethodPost, "/auth/company/register", map[string]string{
		"companyName": "Company " + domainName, "email": "hr@" + domainName, "password": "secret123", "domain": domainName,
	})
	require.Equal(s.t, http.StatusCreated, status, env.Message)

	status, env = s.do(http.MethodPost, "/auth/company/login", map[string]string{
		"email": "hr@" + domainName, "password": "secret123",
	})
	require.Equal(s.t, http.StatusOK, status, env.Message)

	var c domain.Company
	require.NoError(s.t, json.Unmarshal(env.Data, &c))
	return c.ID, env.Token
}

func (s *testServer) createJob(token, title string, skills ...string) uint {
	s.t.Helper()
	status, env := s.do(http.MethodPost, "/companies/jobs", map[string]interface{}{
		"title": title, "description": "Build things", "location": "Remote",
		"jobType": "INTERNSHIP", "jobMode": "REMOTE", "requiredSkills": skills,
	}, bearer(token))
	require.Equal(s.t, http.StatusCreated, status, env.Message)

	var job domain.Job
	require.NoError(s.t, json.Unmarshal(env.Data, &job))
	return job.ID
}

func TestHealthcheckAndUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(http.MethodGet, "/healthcheck", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = s.do(http.MethodGet, "/no/such/route", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Route not found", env.Message)
}

func TestAuthGate(t *testing.T) {
	s := newTestServer(t)
	_, studentToken := s.registerAndLoginStudent("alice")
	_, companyToken := s.registerAndLoginCompany("acme.com")

	status, env := s.do(http.MethodGet, "/students/skills", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)

	status, _ = s.do(http.MethodGet, "/students/skills", nil, bearer("not-a-token"))
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = s.do(http.MethodGet, "/students/skills", nil, bearer(companyToken))
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, env.Success)

	status, _ = s.do(http.MethodGet, "/companies/jobs", nil, bearer(studentToken))
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.do(http.MethodGet, "/students/skills", nil, bearer(studentToken))
	assert.Equal(t, http.StatusOK, status, env.Message)

	status, env = s.do(http.MethodGet, "/students/skills", nil, cookie(studentToken))
	assert.Equal(t, http.StatusOK, status, env.Message)
}

func TestExpiredTokenRejected(t *testing.T) {
	s := newTestServer(t)
	id, _ := s.registerAndLoginStudent("alice")

	past := helper.SetupAuth(testSecret, time.Hour)
	past.Now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := past.GenerateToken(id, domain.RoleStudent)
	require.NoError(t, err)

	status, _ := s.do(http.MethodGet, "/students/skills", nil, bearer(token))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	_, token := s.registerAndLoginStudent("alice")

	status, env := s.do(http.MethodGet, "/auth/student/logout", nil, bearer(token))
	require.Equal(t, http.StatusOK, status, env.Message)

	status, _ = s.do(http.MethodGet, "/students/skills", nil, bearer(token))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestValidationErrorsListFields(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(http.MethodPost, "/auth/student/register", map[string]string{
		"email": "not-an-email", "password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	fields := make([]string, 0, len(env.Errors))
	for _, fe := range env.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"email", "password", "username", "name"}, fields)

	status, _ = s.do(http.MethodGet, "/students/id/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestApplicationFlow(t *testing.T) {
	s := newTestServer(t)
	_, companyToken := s.registerAndLoginCompany("acme.com")
	studentID, studentToken := s.registerAndLoginStudent("alice")

	dataJob := s.createJob(companyToken, "Data Intern", "Python")
	backendJob := s.createJob(companyToken, "Backend Intern", "Python", "SQL")
	s.createJob(companyToken, "Systems Intern", "Rust")

	status, env := s.do(http.MethodGet, "/students/matching-jobs", nil, bearer(studentToken))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "No matching jobs found", env.Message)

	status, env = s.do(http.MethodPost, "/students/skills", map[string]interface{}{
		"skills": []string{"Python", "SQL", "NotARealSkill"},
	}, bearer(studentToken))
	require.Equal(t, http.StatusOK, status, env.Message)

	status, env = s.do(http.MethodGet, fmt.Sprintf("/students/%d/matching-jobs", studentID), nil)
	require.Equal(t, http.StatusOK, status)
	var matches []struct {
		ID         uint `json:"id"`
		MatchScore int  `json:"matchScore"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &matches))
	require.Len(t, matches, 2)
	assert.Equal(t, backendJob, matches[0].ID)
	assert.Equal(t, 2, matches[0].MatchScore)
	assert.Equal(t, dataJob, matches[1].ID)

	status, env = s.do(http.MethodPost, fmt.Sprintf("/students/apply/%d", backendJob), nil, bearer(studentToken))
	require.Equal(t, http.StatusCreated, status, env.Message)
	var app domain.JobApplication
	require.NoError(t, json.Unmarshal(env.Data, &app))
	assert.Equal(t, domain.ApplicationApplied, app.Status)

	status, env = s.do(http.MethodPost, fmt.Sprintf("/students/apply/%d", backendJob), nil, bearer(studentToken))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "You have already applied to this job", env.Message)

	status, _ = s.do(http.MethodPost, "/students/apply/9999", nil, bearer(studentToken))
	assert.Equal(t, http.StatusNotFound, status)

	status, env = s.do(http.MethodGet, fmt.Sprintf("/companies/job/%d/applicants", backendJob), nil, bearer(companyToken))
	require.Equal(t, http.StatusOK, status, env.Message)
	var applicants []struct {
		ApplicationID uint `json:"applicationId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &applicants))
	require.Len(t, applicants, 1)
	assert.Equal(t, app.ID, applicants[0].ApplicationID)

	path := fmt.Sprintf("/companies/application/%d/status", app.ID)
	status, env = s.do(http.MethodPut, path, map[string]string{"status": "SHORTLISTED"}, bearer(companyToken))
	require.Equal(t, http.StatusOK, status, env.Message)

	status, _ = s.do(http.MethodPut, path, map[string]string{"status": "ARCHIVED"}, bearer(companyToken))
	assert.Equal(t, http.StatusBadRequest, status)

	_, otherToken := s.registerAndLoginCompany("globex.com")
	status, _ = s.do(http.MethodPut, path, map[string]string{"status": "HIRED"}, bearer(otherToken))
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.do(http.MethodGet, "/students/applications", nil, bearer(studentToken))
	require.Equal(t, http.StatusOK, status)
	var mine []struct {
		Application domain.JobApplication `json:"application"`
		Job         domain.Job            `json:"job"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, domain.ApplicationShortlisted, mine[0].Application.Status)
	assert.Equal(t, "Backend Intern", mine[0].Job.Title)
}

func TestSkillsCatalogIsPublic(t *testing.T) {
	s := newTestServer(t)
	status, env := s.do(http.MethodGet, "/skills", nil)
	require.Equal(t, http.StatusOK, status)

	var skills []string
	require.NoError(t, json.Unmarshal(env.Data, &skills))
	assert.Contains(t, skills, "GoLang")
	assert.Len(t, skills, len(domain.AllSkills()))
}
