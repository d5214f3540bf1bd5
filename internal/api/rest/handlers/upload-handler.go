package handlers

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/SundayYogurt/jobboard_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/helper/utils"
	"github.com/SundayYogurt/jobboard_service/internal/services"
	pkgutils "github.com/SundayYogurt/jobboard_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const maxImageSize = 5 * 1024 * 1024 //5MB

var allowedImageExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

type UploadHandler struct {
	svcs services.Services
}

func NewUploadHandler(svcs services.Services) *UploadHandler {
	return &UploadHandler{svcs: svcs}
}

func (h *UploadHandler) SetupRoutes(app *fiber.App) {
	app.Put("/students/avatar", with(middleware.StudentOnly(h.svcs.Auth), h.UploadAvatar)...)
	app.Put("/companies/logo", with(middleware.CompanyOnly(h.svcs.Auth), h.UploadLogo)...)
}

func fileError(msg string) error {
	return helper.NewValidationError("Invalid file", helper.FieldError{Field: "file", Message: msg})
}

// readImage pulls the multipart "file" field and checks extension and size.
func readImage(ctx *fiber.Ctx) ([]byte, error) {
	file, err := ctx.FormFile("file")
	if err != nil {
		return nil, fileError("is required")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return nil, fileError("only jpg/jpeg/png/webp allowed")
	}
	if file.Size > maxImageSize {
		return nil, fileError("file too large (max 5MB)")
	}

	f, err := file.Open()
	if err != nil {
		return nil, helper.Internal("cannot open uploaded file", err)
	}
	defer f.Close()

	b, err := pkgutils.ReadAllLimit(f, maxImageSize)
	if err != nil {
		if errors.Is(err, pkgutils.ErrFileTooLarge) {
			return nil, fileError("file too large (max 5MB)")
		}
		return nil, helper.Internal("cannot read uploaded file", err)
	}
	return b, nil
}

// UploadAvatar godoc
// @Summary Upload the current student's avatar
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "jpg/png/webp, max 5MB"
// @Success 200 {object} dto.APISuccessAny
// @Failure 400 {object} dto.APIError
// @Failure 503 {object} dto.APIError
// @Router /students/avatar [put]
func (h *UploadHandler) UploadAvatar(ctx *fiber.Ctx) error {
	studentID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	img, err := readImage(ctx)
	if err != nil {
		return err
	}

	student, err := h.svcs.Media.UploadStudentAvatar(ctx.UserContext(), studentID, img)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Avatar updated successfully", student)
}

// UploadLogo godoc
// @Summary Upload the current company's logo
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "jpg/png/webp, max 5MB"
// @Success 200 {object} dto.APISuccessAny
// @Failure 400 {object} dto.APIError
// @Failure 503 {object} dto.APIError
// @Router /companies/logo [put]
func (h *UploadHandler) UploadLogo(ctx *fiber.Ctx) error {
	companyID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	img, err := readImage(ctx)
	if err != nil {
		return err
	}

	company, err := h.svcs.Media.UploadCompanyLogo(ctx.UserContext(), companyID, img)
	if err != nil {
		return err
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Logo updated successfully", company)
}
