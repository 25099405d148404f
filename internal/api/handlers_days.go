package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lunahq/luna/internal/models"
	"github.com/lunahq/luna/internal/services"
)

func (handler *Handler) GetDays(c *fiber.Ctx) error {
	from, err := parseOptionalDayParam(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseOptionalDayParam(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if from != nil && to != nil && to.Before(*from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	toExclusive := to
	if to != nil {
		end := to.AddDate(0, 0, 1)
		toExclusive = &end
	}

	logs, err := handler.repositories.DailyLogs.ListRange(from, toExclusive)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}
	return c.JSON(logs)
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	entry, found, err := handler.repositories.DailyLogs.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch day")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no log for this day")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := dayInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if !models.IsValidFlow(input.Flow) {
		return apiError(c, fiber.StatusBadRequest, "unknown flow value")
	}
	if input.Mood < 0 || input.Mood > 10 {
		return apiError(c, fiber.StatusBadRequest, "mood must be between 0 and 10")
	}

	flow := input.Flow
	if flow == "" {
		flow = models.FlowNone
	}

	entry := models.DailyLog{
		Date:     services.DateAtLocation(day, handler.location),
		IsPeriod: input.IsPeriod,
		Flow:     flow,
		Mood:     input.Mood,
		Symptoms: input.Symptoms,
		Notes:    input.Notes,
	}

	saved, err := handler.repositories.DailyLogs.Upsert(entry)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save day")
	}
	return c.JSON(saved)
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	deleted, err := handler.repositories.DailyLogs.DeleteByDayRange(dayStart, dayEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete day")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "no log for this day")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
