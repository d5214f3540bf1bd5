package handlers

import (
	"strconv"

	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/gofiber/fiber/v2"
)

// with returns guards followed by h, in a fresh slice.
func with(guards []fiber.Handler, h ...fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(guards)+len(h))
	out = append(out, guards...)
	return append(out, h...)
}

// paramID parses a positive numeric route parameter.
func paramID(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, helper.NewValidationError("Invalid "+name, helper.FieldError{
			Field:   name,
			Message: "must be a positive integer",
		})
	}
	return uint(id), nil
}

// bind parses the JSON body into dst and validates it.
func bind(ctx *fiber.Ctx, v *helper.Validator, dst interface{}) error {
	if err := ctx.BodyParser(dst); err != nil {
		return helper.NewValidationError("Please provide valid inputs")
	}
	return v.Validate(dst)
}
