package handlers

import (
	"github.com/SundayYogurt/jobboard_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/helper/utils"
	"github.com/SundayYogurt/jobboard_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the public read side: jobs, the skill vocabulary and
// colleges.
type CatalogHandler struct {
	svcs      services.Services
	validator *helper.Validator
}

func NewCatalogHandler(svcs services.Services, v *helper.Validator) *CatalogHandler {
	return &CatalogHandler{svcs: svcs, validator: v}
}

func (h *CatalogHandler) SetupRoutes(app *fiber.App) {
	app.Get("/jobs", h.ListJobs)
	app.Get("/jobs/:id", h.GetJob)

	app.Get("/skills", h.ListSkills)

	app.Get("/colleges", h.ListColleges)
	app.Get("/colleges/:id", h.GetCollege)
	app.Post("/colleges", middleware.AuthMiddleware(h.svcs.Auth), h.CreateCollege)
}

// ListJobs godoc
// @Summary List all jobs, newest first
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.APISuccessAny
// @Router /jobs [get]
func (h *CatalogHandler) ListJobs(ctx *fiber.Ctx) error {
	jobs, err := h.svcs.Jobs.ListJobs(ctx.UserContext())
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Jobs fetched successfully", jobs)
}

// GetJob godoc
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Param id path int true "job id"
// @Success 200 {object} dto.APISuccessAny
// @Failure 404 {object} dto.APIError
// @Router /jobs/{id} [get]
func (h *CatalogHandler) GetJob(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	job, err := h.svcs.Jobs.GetJob(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Job fetched successfully", job)
}

// ListSkills godoc
// @Summary The skill vocabulary
// @Tags skills
// @Produce json
// @Success 200 {object} dto.APISuccessAny
// @Router /skills [get]
func (h *CatalogHandler) ListSkills(ctx *fiber.Ctx) error {
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Skills fetched successfully", domain.AllSkills())
}

// ListColleges godoc
// @Summary List colleges
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.APISuccessAny
// @Router /colleges [get]
func (h *CatalogHandler) ListColleges(ctx *fiber.Ctx) error {
	colleges, err := h.svcs.Colleges.ListColleges(ctx.UserContext())
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Colleges fetched successfully", colleges)
}

// GetCollege godoc
// @Summary Get a college
// @Tags colleges
// @Produce json
// @Param id path int true "college id"
// @Success 200 {object} dto.APISuccessAny
// @Failure 404 {object} dto.APIError
// @Router /colleges/{id} [get]
func (h *CatalogHandler) GetCollege(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	college, err := h.svcs.Colleges.GetCollege(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "College fetched successfully", college)
}

// CreateCollege godoc
// @Summary Add a college
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateCollegeRequest true "college"
// @Success 201 {object} dto.APISuccessAny
// @Failure 400 {object} dto.APIError
// @Router /colleges [post]
func (h *CatalogHandler) CreateCollege(ctx *fiber.Ctx) error {
	var req dto.CreateCollegeRequest
	if err := bind(ctx, h.validator, &req); err != nil {
		return err
	}
	college, err := h.svcs.Colleges.CreateCollege(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "College created successfully", college)
}
