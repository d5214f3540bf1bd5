package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	AuthCookieName = "authorization"
	authCookieAge  = 30 * 24 * time.Hour
)

var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Auth struct {
	Secret       string
	Expiry       time.Duration
	CookieDomain string
	CookieSecure bool
	// Now overrides the clock used to stamp and check tokens. Nil means time.Now.
	Now func() time.Time
}

func SetupAuth(secret string, expiry time.Duration) Auth {
	return Auth{
		Secret:       secret,
		Expiry:       expiry,
		CookieSecure: true,
	}
}

func (a Auth) clock() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a Auth) GenerateToken(userID uint, role domain.Role) (string, error) {
	if userID == 0 || !role.Valid() {
		return "", errors.New("required inputs are missing to generate token")
	}
	if a.Expiry <= 0 {
		return "", errors.New("token expiry must be positive")
	}

	now := a.clock()
	claims := dto.AuthClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.Expiry)),
		},
	}

	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.Secret))
	if err != nil {
		return "", fmt.Errorf("unable to sign the token: %w", err)
	}
	return tokenStr, nil
}

// VerifyToken checks signature, algorithm and expiry. Every failure is
// reported as ErrInvalidToken.
func (a Auth) VerifyToken(tokenString string) (dto.AuthClaims, error) {
	tokenString = StripBearer(tokenString)
	if tokenString == "" {
		return dto.AuthClaims{}, ErrInvalidToken
	}

	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.clock),
	)
	if err != nil {
		return dto.AuthClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 || !claims.Role.Valid() {
		return dto.AuthClaims{}, ErrInvalidToken
	}
	return *claims, nil
}

// DecodeToken reads the claims without checking the signature. Debug only.
func (a Auth) DecodeToken(tokenString string) (dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(StripBearer(tokenString), claims); err != nil {
		return dto.AuthClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return *claims, nil
}

// RemainingTTL is how long the token stays valid from now.
func (a Auth) RemainingTTL(claims dto.AuthClaims) time.Duration {
	if claims.ExpiresAt == nil {
		return 0
	}
	ttl := claims.ExpiresAt.Time.Sub(a.clock())
	if ttl < 0 {
		return 0
	}
	return ttl
}

func (a Auth) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (a Auth) SessionCookie(token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		Domain:   a.CookieDomain,
		MaxAge:   int(authCookieAge.Seconds()),
		Secure:   a.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}

func (a Auth) ClearedCookie() *fiber.Cookie {
	c := a.SessionCookie("")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}

// StripBearer accepts both "Bearer <token>" and a bare token.
func StripBearer(tokenString string) string {
	tokenString = strings.TrimSpace(tokenString)
	if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "bearer ") {
		return strings.TrimSpace(tokenString[7:])
	}
	if strings.EqualFold(tokenString, "bearer") {
		return ""
	}
	return tokenString
}

// ParseExpiry parses a token lifetime. Go durations are accepted, plus day
// ("7d") and week ("2w") suffixes.
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty expiry")
	}

	var d time.Duration
	switch unit := s[len(s)-1]; unit {
	case 'd', 'w':
		n, err := strconv.Atoi(s[:len(s)-1])
		if err != nil {
			return 0, fmt.Errorf("invalid expiry %q: %w", s, err)
		}
		d = time.Duration(n) * 24 * time.Hour
		if unit == 'w' {
			d *= 7
		}
	default:
		var err error
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid expiry %q: %w", s, err)
		}
	}

	if d <= 0 {
		return 0, fmt.Errorf("expiry %q must be positive", s)
	}
	return d, nil
}
