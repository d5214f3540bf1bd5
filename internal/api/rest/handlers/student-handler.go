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
	applyLimit  = 30
	applyWindow = time.Minute
)

type StudentHandler struct {
	svcs      services.Services
	validator *helper.Validator
	limiter   repository.RateLimiter
}

func NewStudentHandler(svcs services.Services, v *helper.Validator, limiter repository.RateLimiter) *StudentHandler {
	return &StudentHandler{svcs: svcs, validator: v, limiter: limiter}
}

func (h *StudentHandler) SetupRoutes(app *fiber.App) {
	student := middleware.StudentOnly(h.svcs.Auth)
	students := app.Group("/students")

	students.Get("/", h.ListStudents)
	students.Get("/id/:id", h.GetStudentByID)
	students.Get("/username/:username", h.GetStudentByUsername)

	students.Put("/update", with(student, h.UpdateStudent)...)

	students.Post("/skills", with(student, h.ReplaceSkills)...)
	students.Get("/skills", with(student, h.MySkills)...)
	students.Get("/:id/skills", h.StudentSkills)

	students.Get("/matching-jobs", with(student, h.MyMatchingJobs)...)
	students.Get("/:id/matching-jobs", h.StudentMatchingJobs)

	students.Post("/apply/:jobId", with(student,
		middleware.RateLimit(h.limiter, "apply", applyLimit, applyWindow),
		h.Apply,
	)...)
	students.Get("/applications", with(student, h.MyApplications)...)
}

// ListStudents godoc
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {object} dto.APISuccessAny
// @Router /students [get]
func (h *StudentHandler) ListStudents(ctx *fiber.Ctx) error {
	students, err := h.svcs.Students.ListStudents(ctx.UserContext())
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Students fetched successfully", students)
}

// GetStudentByID godoc
// @Summary Get a student by id
// @Tags students
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} dto.APISuccessAny
// @Failure 404 {object} dto.APIError
// @Router /students/id/{id} [get]
func (h *StudentHandler) GetStudentByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	student, err := h.svcs.Students.GetStudentByID(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Student fetched successfully", student)
}

// GetStudentByUsername godoc
// @Summary Get a student by username
// @Tags students
// @Produce json
// @Param username path string true "username"
// @Success 200 {object} dto.APISuccessAny
// @Failure 404 {object} dto.APIError
// @Router /students/username/{username} [get]
func (h *StudentHandler) GetStudentByUsername(ctx *fiber.Ctx) error {
	student, err := h.svcs.Students.GetStudentByUsername(ctx.UserContext(), ctx.Params("username"))
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Student fetched successfully", student)
}

// UpdateStudent godoc
// @Summary Update the current student's profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateStudentRequest true "fields to change"
// @Success 200 {object} dto.APISuccessAny
// @Failure 409 {object} dto.APIError
// @Router /students/update [put]
func (h *StudentHandler) UpdateStudent(ctx *fiber.Ctx) error {
	studentID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateStudentRequest
	if err := bind(ctx, h.validator, &req); err != nil {
		return err
	}

	student, err := h.svcs.Students.UpdateStudent(ctx.UserContext(), studentID, req)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Student updated successfully", student)
}

// ReplaceSkills godoc
// @Summary Replace the current student's skills
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SkillsRequest true "skills"
// @Success 200 {object} dto.APISuccessAny
// @Failure 400 {object} dto.APIError
// @Router /students/skills [post]
func (h *StudentHandler) ReplaceSkills(ctx *fiber.Ctx) error {
	studentID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.SkillsRequest
	if err := bind(ctx, h.validator, &req); err != nil {
		return err
	}

	skills, err := h.svcs.Students.ReplaceSkills(ctx.UserContext(), studentID, req.Skills)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Skills updated successfully", dto.SkillsResponse{
		StudentID: studentID,
		Skills:    skills,
	})
}

// MySkills godoc
// @Summary Current student's skills
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APISuccessAny
// @Router /students/skills [get]
func (h *StudentHandler) MySkills(ctx *fiber.Ctx) error {
	studentID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	return h.skills(ctx, studentID)
}

// StudentSkills godoc
// @Summary A student's skills
// @Tags skills
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} dto.APISuccessAny
// @Failure 404 {object} dto.APIError
// @Router /students/{id}/skills [get]
func (h *StudentHandler) StudentSkills(ctx *fiber.Ctx) error {
	studentID, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	return h.skills(ctx, studentID)
}

func (h *StudentHandler) skills(ctx *fiber.Ctx, studentID uint) error {
	skills, err := h.svcs.Students.GetSkills(ctx.UserContext(), studentID)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Skills fetched successfully", dto.SkillsResponse{
		StudentID: studentID,
		Skills:    skills,
	})
}

// MyMatchingJobs godoc
// @Summary Jobs ranked by skill overlap with the current student
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APISuccessAny
// @Router /students/matching-jobs [get]
func (h *StudentHandler) MyMatchingJobs(ctx *fiber.Ctx) error {
	studentID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	return h.matchingJobs(ctx, studentID)
}

// StudentMatchingJobs godoc
// @Summary Jobs ranked by skill overlap with a student
// @Tags matching
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} dto.APISuccessAny
// @Failure 404 {object} dto.APIError
// @Router /students/{id}/matching-jobs [get]
func (h *StudentHandler) StudentMatchingJobs(ctx *fiber.Ctx) error {
	studentID, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	return h.matchingJobs(ctx, studentID)
}

func (h *StudentHandler) matchingJobs(ctx *fiber.Ctx, studentID uint) error {
	jobs, err := h.svcs.Matching.ComputeMatches(ctx.UserContext(), studentID)
	if err != nil {
		return err
	}
	msg := "Matching jobs fetched successfully"
	if len(jobs) == 0 {
		msg = "No matching jobs found"
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, msg, jobs)
}

// Apply godoc
// @Summary Apply to a job
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "job id"
// @Success 201 {object} dto.APISuccessAny
// @Failure 404 {object} dto.APIError
// @Failure 409 {object} dto.APIError
// @Router /students/apply/{jobId} [post]
func (h *StudentHandler) Apply(ctx *fiber.Ctx) error {
	studentID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	jobID, err := paramID(ctx, "jobId")
	if err != nil {
		return err
	}

	app, err := h.svcs.Applications.Apply(ctx.UserContext(), studentID, jobID)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "Applied successfully", app)
}

// MyApplications godoc
// @Summary Current student's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APISuccessAny
// @Router /students/applications [get]
func (h *StudentHandler) MyApplications(ctx *fiber.Ctx) error {
	studentID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	apps, err := h.svcs.Applications.ListForStudent(ctx.UserContext(), studentID)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Applications fetched", apps)
}
