package services

import (
	"testing"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchedIDs(t *testing.T, env *testEnv, studentID uint) ([]uint, []int) {
	t.Helper()
	matches, err := env.svc.Matching.ComputeMatches(env.ctx, studentID)
	require.NoError(t, err)
	ids := make([]uint, 0, len(matches))
	scores := make([]int, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
		scores = append(scores, m.MatchScore)
	}
	return ids, scores
}

func TestComputeMatchesOrdersByScore(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "Acme", "acme.com")
	j1 := env.job(t, acme.ID, "Data Intern", "Python")
	j2 := env.job(t, acme.ID, "Backend Intern", "Python", "SQL", "Docker")
	env.job(t, acme.ID, "Systems Intern", "Rust")

	st := env.student(t, "alice")
	_, err := env.svc.Students.ReplaceSkills(env.ctx, st.ID, []string{"Python", "SQL"})
	require.NoError(t, err)

	ids, scores := matchedIDs(t, env, st.ID)
	assert.Equal(t, []uint{j2.ID, j1.ID}, ids)
	assert.Equal(t, []int{2, 1}, scores)
}

func TestComputeMatchesTieBreaksNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "Acme", "acme.com")
	older := env.job(t, acme.ID, "Older", "GoLang")
	newer := env.job(t, acme.ID, "Newer", "GoLang")

	st := env.student(t, "bob")
	_, err := env.svc.Students.ReplaceSkills(env.ctx, st.ID, []string{"GoLang"})
	require.NoError(t, err)

	ids, _ := matchedIDs(t, env, st.ID)
	assert.Equal(t, []uint{newer.ID, older.ID}, ids)
}

func TestComputeMatchesEmpty(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "Acme", "acme.com")
	env.job(t, acme.ID, "Systems Intern", "Rust")

	st := env.student(t, "carol")
	ids, _ := matchedIDs(t, env, st.ID)
	assert.Empty(t, ids)

	_, err := env.svc.Students.ReplaceSkills(env.ctx, st.ID, []string{"Figma"})
	require.NoError(t, err)
	ids, _ = matchedIDs(t, env, st.ID)
	assert.Empty(t, ids)
}

func TestComputeMatchesUnknownStudent(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Matching.ComputeMatches(env.ctx, 999)
	requireKind(t, err, helper.KindNotFound)
}

func TestRankJobsSameTimestampFallsBackToID(t *testing.T) {
	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{ID: 1, CreatedAt: at, RequiredSkills: pq.StringArray{"SQL"}},
		{ID: 2, CreatedAt: at, RequiredSkills: pq.StringArray{"SQL"}},
		{ID: 3, CreatedAt: at, RequiredSkills: pq.StringArray{"SQL", "AWS"}},
	}
	ranked := RankJobs(domain.NewSkillSet([]domain.Skill{domain.SkillSQL, domain.SkillAWS}), jobs)
	require.Len(t, ranked, 3)
	assert.Equal(t, uint(3), ranked[0].ID)
	assert.Equal(t, uint(2), ranked[1].ID)
	assert.Equal(t, uint(1), ranked[2].ID)
}
