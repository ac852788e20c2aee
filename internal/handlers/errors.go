package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
)

func respondError(c *fiber.Ctx, err error) error {
	status := apperrors.StatusCode(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": apperrors.PublicMessage(err),
	})
}

// ErrorHandler renders every error that reaches Fiber as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	return respondError(c, err)
}
