package presenter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}

// ErrorHandler renders errors that escape handlers (unknown routes, oversized
// bodies, recovered panics) in the same JSON envelope. Anything that is not a
// *fiber.Error is an internal failure.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, http.StatusInternalServerError, InternalError(err))
}

// InternalError is the client-facing message for an unexpected failure.
func InternalError(err error) string {
	return fmt.Sprintf("An internal error occurred: %v", err)
}
