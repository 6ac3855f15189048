package serverutils

import (
	"errors"

	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return fiber.StatusBadRequest
	case apperror.KindConflict:
		return fiber.StatusConflict
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperror.KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders any error returned by a handler as the standard
// envelope. It is installed as fiber.Config.ErrorHandler.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}

		var ae *apperror.Error
		if errors.As(err, &ae) {
			code := statusFor(ae.Kind)
			if code >= fiber.StatusInternalServerError {
				log.Error("HTTP", ae.Message, map[string]interface{}{
					"error":  err.Error(),
					"path":   ctx.Path(),
					"method": ctx.Method(),
				})
			}
			return ctx.Status(code).JSON(ErrorResponse(code, ae.Message))
		}

		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"error":  err.Error(),
			"path":   ctx.Path(),
			"method": ctx.Method(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}

// ErrorHandlerMiddleware recovers panics into a 500 envelope. Returned
// errors are left to ErrorHandler.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("HTTP", "Recovered from panic", map[string]interface{}{
					"panic": r,
					"path":  ctx.Path(),
				})
				err = apperror.Internal("Internal server error", nil)
			}
		}()
		return ctx.Next()
	}
}

// BadBody is returned by controllers when the JSON body cannot be parsed.
func BadBody(err error) error {
	return apperror.Validation("invalid request body: %v", err)
}
