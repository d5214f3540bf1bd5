package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

type publishedEvent struct {
	key   string
	event dto.ApplicationEvent
}

type fakeProducer struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *fakeProducer) PublishMessage(ctx context.Context, key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	var evt dto.ApplicationEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		return err
	}
	p.events = append(p.events, publishedEvent{key: string(key), event: evt})
	return nil
}

func (p *fakeProducer) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedEvent, len(p.events))
	copy(out, p.events)
	return out
}

type testEnv struct {
	ctx      context.Context
	store    *memory.Store
	svc      Services
	producer *fakeProducer
	clock    time.Time
}

// newTestEnv wires every service to a fresh in-memory store. The store clock
// advances one minute per record so creation order is deterministic.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ctx:      context.Background(),
		store:    memory.NewStore(),
		producer: &fakeProducer{},
		clock:    time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	env.store.Now = func() time.Time {
		env.clock = env.clock.Add(time.Minute)
		return env.clock
	}

	auth := helper.SetupAuth("test-secret", time.Hour)
	env.svc = NewServices(Deps{
		Repos:    env.store.Repositories(),
		Auth:     auth,
		Producer: env.producer,
	})
	return env
}

func (e *testEnv) student(t *testing.T, username string) *domain.Student {
	t.Helper()
	s, err := e.svc.Auth.RegisterStudent(e.ctx, dto.StudentRegisterRequest{
		Email:    username + "@uni.edu",
		Password: "secret123",
		Username: username,
		Name:     "Student " + username,
	})
	require.NoError(t, err)
	return s
}

func (e *testEnv) company(t *testing.T, name, domainName string) *domain.Company {
	t.Helper()
	c, err := e.svc.Auth.RegisterCompany(e.ctx, dto.CompanyRegisterRequest{
		CompanyName: name,
		Email:       "hr@" + domainName,
		Password:    "secret123",
		Domain:      domainName,
	})
	require.NoError(t, err)
	return c
}

func (e *testEnv) job(t *testing.T, companyID uint, title string, skills ...string) *domain.Job {
	t.Helper()
	j, err := e.svc.Jobs.CreateJob(e.ctx, companyID, dto.CreateJobRequest{
		Title:          title,
		Description:    "Work on " + title,
		Location:       "Remote",
		JobType:        domain.JobTypeInternship,
		JobMode:        domain.JobModeRemote,
		RequiredSkills: skills,
	})
	require.NoError(t, err)
	return j
}

func requireKind(t *testing.T, err error, kind helper.ErrorKind) *helper.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, kind, appErr.Kind, appErr.Message)
	return appErr
}
