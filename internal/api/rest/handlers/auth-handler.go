package handlers

import (
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/helper/utils"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
	"github.com/SundayYogurt/jobboard_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	loginLimit  = 10
	loginWindow = time.Minute
)

type AuthHandler struct {
	svc       services.AuthService
	auth      helper.Auth
	validator *helper.Validator
	limiter   repository.RateLimiter
}

func NewAuthHandler(svc services.AuthService, auth helper.Auth, v *helper.Validator, limiter repository.RateLimiter) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth, validator: v, limiter: limiter}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	loginGuard := middleware.RateLimit(h.limiter, "login", loginLimit, loginWindow)

	student := auth.Group("/student")
	student.Post("/register", h.RegisterStudent)
	student.Post("/login", loginGuard, h.LoginStudent)
	student.Get("/logout", h.Logout)

	company := auth.Group("/company")
	company.Post("/register", h.RegisterCompany)
	company.Post("/login", loginGuard, h.LoginCompany)
	company.Get("/logout", h.Logout)
}

// RegisterStudent godoc
// @Summary Register a student
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.StudentRegisterRequest true "student"
// @Success 201 {object} dto.APISuccessAny
// @Failure 400 {object} dto.APIError
// @Failure 409 {object} dto.APIError
// @Router /auth/student/register [post]
func (h *AuthHandler) RegisterStudent(ctx *fiber.Ctx) error {
	var req dto.StudentRegisterRequest
	if err := bind(ctx, h.validator, &req); err != nil {
		return err
	}

	student, err := h.svc.RegisterStudent(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "Student registered successfully", student)
}

// LoginStudent godoc
// @Summary Student login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "credentials"
// @Success 200 {object} dto.APISuccessLogin
// @Failure 401 {object} dto.APIError
// @Router /auth/student/login [post]
func (h *AuthHandler) LoginStudent(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bind(ctx, h.validator, &req); err != nil {
		return err
	}

	student, token, err := h.svc.LoginStudent(ctx.UserContext(), req)
	if err != nil {
		return err
	}

	ctx.Cookie(h.auth.SessionCookie(token))
	return utils.ResponseWithToken(ctx, fiber.StatusOK, "Login successful", student, token)
}

// RegisterCompany godoc
// @Summary Register a company
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.CompanyRegisterRequest true "company"
// @Success 201 {object} dto.APISuccessAny
// @Failure 400 {object} dto.APIError
// @Failure 409 {object} dto.APIError
// @Router /auth/company/register [post]
func (h *AuthHandler) RegisterCompany(ctx *fiber.Ctx) error {
	var req dto.CompanyRegisterRequest
	if err := bind(ctx, h.validator, &req); err != nil {
		return err
	}

	company, err := h.svc.RegisterCompany(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "Company registered successfully", company)
}

// LoginCompany godoc
// @Summary Company login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "credentials"
// @Success 200 {object} dto.APISuccessLogin
// @Failure 401 {object} dto.APIError
// @Router /auth/company/login [post]
func (h *AuthHandler) LoginCompany(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bind(ctx, h.validator, &req); err != nil {
		return err
	}

	company, token, err := h.svc.LoginCompany(ctx.UserContext(), req)
	if err != nil {
		return err
	}

	ctx.Cookie(h.auth.SessionCookie(token))
	return utils.ResponseWithToken(ctx, fiber.StatusOK, "Login successful", company, token)
}

// Logout godoc
// @Summary Clear the session cookie and revoke the token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APISuccessAny
// @Router /auth/student/logout [get]
// @Router /auth/company/logout [get]
func (h *AuthHandler) Logout(ctx *fiber.Ctx) error {
	if err := h.svc.Logout(ctx.UserContext(), middleware.TokenFromRequest(ctx)); err != nil {
		return err
	}
	ctx.Cookie(h.auth.ClearedCookie())
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Logged out successfully", nil)
}
