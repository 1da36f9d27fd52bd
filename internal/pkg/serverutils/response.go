package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{Code: code, Message: message}
}

// ErrorHandlerMiddleware converts panics and unhandled fiber errors into a
// JSON error body so the webhook path never leaks a stack trace upstream.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "internal error"))
			}
		}()
		return ctx.Next()
	}
}
