package helper

import (
	"testing"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testAuth(now time.Time) Auth {
	a := SetupAuth("test-secret", time.Hour)
	a.Now = func() time.Time { return now }
	return a
}

func TestGenerateAndVerifyToken(t *testing.T) {
	now := fixedNow
	a := testAuth(now)

	token, err := a.GenerateToken(42, domain.RoleStudent)
	require.NoError(t, err)

	claims, err := a.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, domain.RoleStudent, claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, time.Hour, a.RemainingTTL(claims))

	withBearer, err := a.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, withBearer.ID)
}

func TestGenerateTokenRejectsMissingInputs(t *testing.T) {
	a := testAuth(fixedNow)

	_, err := a.GenerateToken(0, domain.RoleStudent)
	assert.Error(t, err)

	_, err = a.GenerateToken(1, domain.Role("admin"))
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	issued := fixedNow
	token, err := testAuth(issued).GenerateToken(1, domain.RoleCompany)
	require.NoError(t, err)

	_, err = testAuth(issued.Add(2 * time.Hour)).VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	now := fixedNow
	token, err := testAuth(now).GenerateToken(1, domain.RoleCompany)
	require.NoError(t, err)

	other := testAuth(now)
	other.Secret = "another-secret"
	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenGarbage(t *testing.T) {
	a := testAuth(fixedNow)
	for _, tok := range []string{"", "Bearer", "Bearer ", "not-a-jwt", "a.b.c"} {
		_, err := a.VerifyToken(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestDecodeTokenSkipsSignature(t *testing.T) {
	now := fixedNow
	token, err := testAuth(now).GenerateToken(7, domain.RoleStudent)
	require.NoError(t, err)

	other := testAuth(now)
	other.Secret = "whatever"
	claims, err := other.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestPasswordHashing(t *testing.T) {
	a := testAuth(fixedNow)
	hashed, err := a.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.NoError(t, a.VerifyPassword("secret123", hashed))
	assert.ErrorIs(t, a.VerifyPassword("wrong", hashed), ErrInvalidCredentials)
}

func TestStripBearer(t *testing.T) {
	assert.Equal(t, "abc", StripBearer("Bearer abc"))
	assert.Equal(t, "abc", StripBearer("bearer   abc "))
	assert.Equal(t, "abc", StripBearer("abc"))
	assert.Equal(t, "", StripBearer("Bearer"))
}

func TestParseExpiry(t *testing.T) {
	cases := map[string]time.Duration{
		"7d":  7 * 24 * time.Hour,
		"2w":  14 * 24 * time.Hour,
		"12h": 12 * time.Hour,
		"90m": 90 * time.Minute,
	}
	for in, want := range cases {
		got, err := ParseExpiry(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "d", "xd", "-1h", "0s", "soon"} {
		_, err := ParseExpiry(in)
		assert.Error(t, err, in)
	}
}

func TestSessionCookie(t *testing.T) {
	a := testAuth(fixedNow)
	c := a.SessionCookie("tok")
	assert.Equal(t, AuthCookieName, c.Name)
	assert.True(t, c.HTTPOnly)
	assert.True(t, c.Secure)

	cleared := a.ClearedCookie()
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
}
