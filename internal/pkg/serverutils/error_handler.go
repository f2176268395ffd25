package serverutils

import (
	"errors"
	"fmt"

	"fleetrent-be/pkg/workflow/cancellation"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware recovers from panics so a single bad request
// cannot take down the server.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, fmt.Sprintf("internal error: %v", r)))
			}
		}()
		return ctx.Next()
	}
}

// StatusForError maps workflow errors onto HTTP status codes:
// bad input is 400, a stage violation is 409, missing aggregates are
// 404, anything else is treated as a persistence failure.
func StatusForError(err error) int {
	var validationErr *cancellation.ValidationError
	var stateErr *cancellation.StateError

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &stateErr):
		return fiber.StatusConflict
	case errors.Is(err, cancellation.ErrContractNotFound),
		errors.Is(err, cancellation.ErrReturnNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondError writes the standard error envelope for a failed operation
func RespondError(ctx *fiber.Ctx, err error) error {
	code := StatusForError(err)
	return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
}
