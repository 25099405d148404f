package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lunahq/luna/internal/models"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, found, err := handler.repositories.Profiles.Get()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch profile")
	}
	if !found {
		profile = models.Profile{
			CycleLength:  models.DefaultCycleLength,
			PeriodLength: models.DefaultPeriodLength,
		}
	}
	return c.JSON(profile)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if input.CycleLength != 0 && !models.IsValidCycleLength(input.CycleLength) {
		return apiError(c, fiber.StatusBadRequest, "cycle length must be between 15 and 90 days")
	}
	if input.PeriodLength != 0 && !models.IsValidPeriodLength(input.PeriodLength) {
		return apiError(c, fiber.StatusBadRequest, "period length must be between 1 and 14 days")
	}
	if input.StressLevel < 0 || input.StressLevel > 10 {
		return apiError(c, fiber.StatusBadRequest, "stress level must be between 0 and 10")
	}
	if !models.IsValidExerciseFrequency(input.ExerciseFrequency) {
		return apiError(c, fiber.StatusBadRequest, "unknown exercise frequency")
	}

	profile := models.Profile{
		CycleLength:       input.CycleLength,
		PeriodLength:      input.PeriodLength,
		AgeYears:          input.AgeYears,
		StressLevel:       input.StressLevel,
		ExerciseFrequency: input.ExerciseFrequency,
		SleepHours:        input.SleepHours,
	}
	if profile.CycleLength == 0 {
		profile.CycleLength = models.DefaultCycleLength
	}
	if profile.PeriodLength == 0 {
		profile.PeriodLength = models.DefaultPeriodLength
	}

	if input.LastPeriodStart != "" {
		day, err := parseDayParam(input.LastPeriodStart, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid last period start date")
		}
		profile.LastPeriodStart = &day
	}

	saved, err := handler.repositories.Profiles.Upsert(profile)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}
	return c.JSON(saved)
}
