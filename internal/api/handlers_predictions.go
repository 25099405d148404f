package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lunahq/luna/internal/services"
)

func (handler *Handler) GetPredictions(c *fiber.Ctx) error {
	result, usedFallback, err := handler.predictions.Predict()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate predictions")
	}

	return c.JSON(fiber.Map{
		"prediction": result,
		"fallback":   usedFallback,
	})
}

// PreviewPrediction runs the engine over a posted profile without touching
// stored data; the SPA uses it for what-if edits.
func (handler *Handler) PreviewPrediction(c *fiber.Ctx) error {
	input := previewInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := handler.previewProfile(input)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	predictor := services.NewPredictor()
	result, err := predictor.PredictCycle(profile)
	if err != nil {
		if errors.Is(err, services.ErrPredictionFailed) {
			return c.JSON(fiber.Map{
				"prediction": predictor.FallbackPrediction(profile),
				"fallback":   true,
			})
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to generate predictions")
	}

	return c.JSON(fiber.Map{
		"prediction": result,
		"fallback":   false,
	})
}

func (handler *Handler) previewProfile(input previewInput) (services.CycleProfile, error) {
	profile := services.CycleProfile{
		CycleLength:  input.CycleLength,
		PeriodLength: input.PeriodLength,
		AgeYears:     input.AgeYears,
	}

	if input.LastPeriodStart != "" {
		day, err := parseDayParam(input.LastPeriodStart, handler.location)
		if err != nil {
			return services.CycleProfile{}, errors.New("invalid last period start date")
		}
		profile.LastPeriodStart = day
	}

	if input.Lifestyle != nil {
		profile.Lifestyle = &services.LifestyleFactors{
			StressLevel:       input.Lifestyle.StressLevel,
			ExerciseFrequency: input.Lifestyle.ExerciseFrequency,
			SleepHours:        input.Lifestyle.SleepHours,
		}
	}

	for _, entry := range input.History {
		day, err := parseDayParam(entry.Date, handler.location)
		if err != nil {
			return services.CycleProfile{}, errors.New("invalid history entry date")
		}
		profile.History = append(profile.History, services.CycleObservation{
			Date:     day,
			CycleDay: entry.CycleDay,
			Symptoms: entry.Symptoms,
			Mood:     entry.Mood,
			Flow:     entry.Flow,
		})
	}

	return profile, nil
}
