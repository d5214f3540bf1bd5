package services

import (
	"testing"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRegisterCompanyDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.company(t, "Acme", "acme.com")

	_, err := env.svc.Auth.RegisterCompany(env.ctx, dto.CompanyRegisterRequest{
		CompanyName: "Acme Clone",
		Email:       "HR@acme.com",
		Password:    "secret123",
		Domain:      "acme-clone.com",
	})
	requireKind(t, err, helper.KindConflict)
}

func TestUpdateCompanyConflicts(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "Acme", "acme.com")
	env.company(t, "Globex", "globex.com")

	_, err := env.svc.Companies.UpdateCompany(env.ctx, acme.ID, dto.UpdateCompanyRequest{Domain: strPtr("globex.com")})
	requireKind(t, err, helper.KindConflict)

	_, err = env.svc.Companies.UpdateCompany(env.ctx, acme.ID, dto.UpdateCompanyRequest{Email: strPtr("HR@globex.com")})
	requireKind(t, err, helper.KindConflict)

	_, err = env.svc.Companies.UpdateCompany(env.ctx, 999, dto.UpdateCompanyRequest{CompanyName: strPtr("Ghost")})
	requireKind(t, err, helper.KindNotFound)
}

func TestUpdateCompanyKeepsOwnDomain(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "Acme", "acme.com")

	updated, err := env.svc.Companies.UpdateCompany(env.ctx, acme.ID, dto.UpdateCompanyRequest{
		Domain:      strPtr("ACME.com"),
		Email:       strPtr("hr@acme.com"),
		CompanyName: strPtr("<b>Acme Corp</b>"),
	})
	require.NoError(t, err)
	assert.Equal(t, "acme.com", updated.Domain)
	assert.Equal(t, "Acme Corp", updated.CompanyName)

	stored, err := env.svc.Companies.GetCompany(env.ctx, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", stored.CompanyName)
}

func TestUpdateCompanyVerificationFields(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "Acme", "acme.com")

	verified := true
	status := domain.VerificationVerified
	updated, err := env.svc.Companies.UpdateCompany(env.ctx, acme.ID, dto.UpdateCompanyRequest{
		IsVerified:         &verified,
		VerificationStatus: &status,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsVerified)
	assert.Equal(t, domain.VerificationVerified, updated.VerificationStatus)
}
