package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RateLimit counts requests per caller in fixed windows. The caller is the
// authenticated user when known, else the client IP. A nil limiter lets
// everything through, as does a limiter error.
func RateLimit(limiter repository.RateLimiter, name string, limit int, window time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if limiter == nil {
			return ctx.Next()
		}

		caller := "ip:" + ctx.IP()
		if id, ok := ctx.Locals("userID").(uint); ok && id != 0 {
			caller = "user:" + strconv.FormatUint(uint64(id), 10)
		}
		key := fmt.Sprintf("%s:%s", name, caller)

		allowed, err := limiter.Allow(ctx.UserContext(), key, limit, window)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
			return ctx.Next()
		}
		if !allowed {
			ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(window.Seconds())))
			return helper.NewError(helper.KindRateLimited, "Too many requests, please try again later", nil)
		}
		return ctx.Next()
	}
}
