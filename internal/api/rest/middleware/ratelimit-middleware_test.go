package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLimiter struct {
	mu     sync.Mutex
	counts map[string]int
	keys   []string
	err    error
}

func (l *countingLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return true, l.err
	}
	if l.counts == nil {
		l.counts = make(map[string]int)
	}
	l.counts[key]++
	l.keys = append(l.keys, key)
	return l.counts[key] <= limit, nil
}

func limitedApp(limiter *countingLimiter, userID uint) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *helper.AppError
			if errors.As(err, &appErr) {
				return c.SendStatus(appErr.Status())
			}
			return c.SendStatus(http.StatusInternalServerError)
		},
	})
	app.Use(func(c *fiber.Ctx) error {
		if userID != 0 {
			c.Locals("userID", userID)
		}
		return c.Next()
	})

	var rl fiber.Handler
	if limiter == nil {
		rl = RateLimit(nil, "test", 2, time.Minute)
	} else {
		rl = RateLimit(limiter, "test", 2, time.Minute)
	}
	app.Get("/", rl, func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	return app
}

func hit(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	return resp
}

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	limiter := &countingLimiter{}
	app := limitedApp(limiter, 12)

	assert.Equal(t, http.StatusOK, hit(t, app).StatusCode)
	assert.Equal(t, http.StatusOK, hit(t, app).StatusCode)

	resp := hit(t, app)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get(fiber.HeaderRetryAfter))
	assert.Equal(t, "test:user:12", limiter.keys[0])
}

func TestRateLimitFailsOpen(t *testing.T) {
	assert.Equal(t, http.StatusOK, hit(t, limitedApp(nil, 0)).StatusCode)

	broken := &countingLimiter{err: errors.New("redis down")}
	app := limitedApp(broken, 0)
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(t, app).StatusCode)
	}
}
