package api

import (
	"errors"

	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/helper/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const internalErrorMessage = "Internal Server Error"

// ErrorHandler renders every error returned by a handler as an envelope.
// Internal details are logged, never sent.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var appErr *helper.AppError
	if errors.As(err, &appErr) {
		status := appErr.Status()
		msg := appErr.Message
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", ctx.Method()).
				Str("path", ctx.Path()).
				Int("status", status).
				Msg("request failed")
			if appErr.Kind == helper.KindInternal {
				msg = internalErrorMessage
			}
		}
		if len(appErr.Fields) > 0 {
			return utils.ResponseValidation(ctx, status, msg, appErr.Fields)
		}
		return utils.ResponseError(ctx, status, msg)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", ctx.Path()).Msg("request failed")
			return utils.ResponseError(ctx, fiberErr.Code, internalErrorMessage)
		}
		return utils.ResponseError(ctx, fiberErr.Code, fiberErr.Message)
	}

	log.Error().Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg("unhandled error")
	return utils.ResponseError(ctx, fiber.StatusInternalServerError, internalErrorMessage)
}

// NotFound is the catch-all for unknown routes.
func NotFound(ctx *fiber.Ctx) error {
	return utils.ResponseError(ctx, fiber.StatusNotFound, "Route not found")
}
