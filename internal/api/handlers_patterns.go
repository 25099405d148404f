package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lunahq/luna/internal/services"
)

func (handler *Handler) GetPatterns(c *fiber.Ctx) error {
	summary, err := handler.predictions.AnalyzePatterns()
	if err != nil {
		if errors.Is(err, services.ErrInsufficientData) {
			return apiError(c, fiber.StatusUnprocessableEntity, "not enough logged cycles for pattern analysis")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to analyze patterns")
	}
	return c.JSON(summary)
}
