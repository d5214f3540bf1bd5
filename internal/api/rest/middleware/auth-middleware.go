package middleware

import (
	"strings"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

// TokenFromRequest reads the session cookie first, then the Authorization
// header ("Bearer <token>" or a bare token).
func TokenFromRequest(ctx *fiber.Ctx) string {
	if tokenStr := strings.TrimSpace(ctx.Cookies(helper.AuthCookieName)); tokenStr != "" {
		return helper.StripBearer(tokenStr)
	}
	return helper.StripBearer(ctx.Get(fiber.HeaderAuthorization))
}

// AuthMiddleware rejects requests without a valid, unrevoked token and
// stores the caller's claims in ctx.Locals.
func AuthMiddleware(authSvc services.AuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := TokenFromRequest(ctx)
		if tokenStr == "" {
			return helper.Unauthenticated("Authentication required")
		}

		claims, err := authSvc.Authenticate(ctx.UserContext(), tokenStr)
		if err != nil {
			return err
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("role", claims.Role)
		ctx.Locals("user", claims)
		return ctx.Next()
	}
}

// RequireRole must run after AuthMiddleware. A missing identity is a 401, a
// different role is a 403.
func RequireRole(role domain.Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, ok := ctx.Locals("user").(dto.AuthClaims)
		if !ok || claims.UserID == 0 {
			return helper.Unauthenticated("Authentication required")
		}
		if claims.Role != role {
			return helper.Forbidden("Access denied: " + strings.ToLower(string(role)) + " role required")
		}
		return ctx.Next()
	}
}

func StudentOnly(authSvc services.AuthService) []fiber.Handler {
	return []fiber.Handler{AuthMiddleware(authSvc), RequireRole(domain.RoleStudent)}
}

func CompanyOnly(authSvc services.AuthService) []fiber.Handler {
	return []fiber.Handler{AuthMiddleware(authSvc), RequireRole(domain.RoleCompany)}
}

// CurrentUserID returns the id stored by AuthMiddleware.
func CurrentUserID(ctx *fiber.Ctx) (uint, error) {
	id, ok := ctx.Locals("userID").(uint)
	if !ok || id == 0 {
		return 0, helper.Unauthenticated("Authentication required")
	}
	return id, nil
}
