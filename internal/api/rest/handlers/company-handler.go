package handlers

import (
	"github.com/SundayYogurt/jobboard_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/helper/utils"
	"github.com/SundayYogurt/jobboard_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CompanyHandler struct {
	svcs      services.Services
	validator *helper.Validator
}

func NewCompanyHandler(svcs services.Services, v *helper.Validator) *CompanyHandler {
	return &CompanyHandler{svcs: svcs, validator: v}
}

func (h *CompanyHandler) SetupRoutes(app *fiber.App) {
	company := middleware.CompanyOnly(h.svcs.Auth)
	companies := app.Group("/companies")

	companies.Get("/", h.ListCompanies)

	// static segments before /:id
	companies.Get("/jobs", with(company, h.ListMyJobs)...)
	companies.Post("/jobs", with(company, h.CreateJob)...)
	companies.Put("/jobs/id/:id", with(company, h.UpdateJob)...)
	companies.Delete("/jobs/id/:id", with(company, h.DeleteJob)...)
	companies.Get("/job/:jobId/applicants", with(company, h.ListApplicants)...)
	companies.Put("/application/:id/status", with(company, h.UpdateApplicationStatus)...)
	companies.Put("/update", with(company, h.UpdateCompany)...)

	companies.Get("/:id", h.GetCompany)
}

// ListCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {object} dto.APISuccessAny
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(ctx *fiber.Ctx) error {
	companies, err := h.svcs.Companies.ListCompanies(ctx.UserContext())
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Companies fetched successfully", companies)
}

// GetCompany godoc
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param id path int true "company id"
// @Success 200 {object} dto.APISuccessAny
// @Failure 404 {object} dto.APIError
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	company, err := h.svcs.Companies.GetCompany(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Company fetched successfully", company)
}

// UpdateCompany godoc
// @Summary Update the current company's profile
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateCompanyRequest true "fields to change"
// @Success 200 {object} dto.APISuccessAny
// @Failure 409 {object} dto.APIError
// @Router /companies/update [put]
func (h *CompanyHandler) UpdateCompany(ctx *fiber.Ctx) error {
	companyID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateCompanyRequest
	if err := bind(ctx, h.validator, &req); err != nil {
		return err
	}

	company, err := h.svcs.Companies.UpdateCompany(ctx.UserContext(), companyID, req)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Company updated successfully", company)
}

// ListMyJobs godoc
// @Summary Jobs posted by the current company
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APISuccessAny
// @Router /companies/jobs [get]
func (h *CompanyHandler) ListMyJobs(ctx *fiber.Ctx) error {
	companyID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	jobs, err := h.svcs.Jobs.ListCompanyJobs(ctx.UserContext(), companyID)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Jobs fetched successfully", jobs)
}

// CreateJob godoc
// @Summary Post a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateJobRequest true "job"
// @Success 201 {object} dto.APISuccessAny
// @Failure 400 {object} dto.APIError
// @Router /companies/jobs [post]
func (h *CompanyHandler) CreateJob(ctx *fiber.Ctx) error {
	companyID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateJobRequest
	if err := bind(ctx, h.validator, &req); err != nil {
		return err
	}

	job, err := h.svcs.Jobs.CreateJob(ctx.UserContext(), companyID, req)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "Job created successfully", job)
}

// UpdateJob godoc
// @Summary Update one of the current company's jobs
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "job id"
// @Param body body dto.UpdateJobRequest true "fields to change"
// @Success 200 {object} dto.APISuccessAny
// @Failure 403 {object} dto.APIError
// @Failure 404 {object} dto.APIError
// @Router /companies/jobs/id/{id} [put]
func (h *CompanyHandler) UpdateJob(ctx *fiber.Ctx) error {
	companyID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	jobID, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateJobRequest
	if err := bind(ctx, h.validator, &req); err != nil {
		return err
	}

	job, err := h.svcs.Jobs.UpdateJob(ctx.UserContext(), companyID, jobID, req)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Job updated successfully", job)
}

// DeleteJob godoc
// @Summary Delete one of the current company's jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "job id"
// @Success 200 {object} dto.APISuccessAny
// @Failure 403 {object} dto.APIError
// @Failure 404 {object} dto.APIError
// @Router /companies/jobs/id/{id} [delete]
func (h *CompanyHandler) DeleteJob(ctx *fiber.Ctx) error {
	companyID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	jobID, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	if err := h.svcs.Jobs.DeleteJob(ctx.UserContext(), companyID, jobID); err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Job deleted successfully", nil)
}

// ListApplicants godoc
// @Summary Applicants for one of the current company's jobs
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "job id"
// @Success 200 {object} dto.APISuccessAny
// @Failure 403 {object} dto.APIError
// @Failure 404 {object} dto.APIError
// @Router /companies/job/{jobId}/applicants [get]
func (h *CompanyHandler) ListApplicants(ctx *fiber.Ctx) error {
	companyID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	jobID, err := paramID(ctx, "jobId")
	if err != nil {
		return err
	}

	applicants, err := h.svcs.Applications.ListApplicantsForJob(ctx.UserContext(), companyID, jobID)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Applicants fetched successfully", applicants)
}

// UpdateApplicationStatus godoc
// @Summary Set an application's status
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "application id"
// @Param body body dto.UpdateStatusRequest true "status"
// @Success 200 {object} dto.APISuccessAny
// @Failure 400 {object} dto.APIError
// @Failure 404 {object} dto.APIError
// @Router /companies/application/{id}/status [put]
func (h *CompanyHandler) UpdateApplicationStatus(ctx *fiber.Ctx) error {
	companyID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	appID, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateStatusRequest
	if err := bind(ctx, h.validator, &req); err != nil {
		return err
	}

	app, err := h.svcs.Applications.UpdateStatus(ctx.UserContext(), companyID, appID, req.Status)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Application status updated", app)
}
