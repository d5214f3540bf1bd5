package utils

import (
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/gofiber/fiber/v2"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data"`
	Token   string              `json:"token,omitempty"`
	Errors  []helper.FieldError `json:"errors,omitempty"`
}

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(Envelope{Message: msg})
}

func ResponseValidation(ctx *fiber.Ctx, status int, msg string, fields []helper.FieldError) error {
	return ctx.Status(status).JSON(Envelope{Message: msg, Errors: fields})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, msg string, data interface{}) error {
	return ctx.Status(status).JSON(Envelope{Success: true, Message: msg, Data: data})
}

// ResponseWithToken is the login response: the token is echoed at the top
// level next to the profile.
func ResponseWithToken(ctx *fiber.Ctx, status int, msg string, data interface{}, token string) error {
	return ctx.Status(status).JSON(Envelope{Success: true, Message: msg, Data: data, Token: token})
}
