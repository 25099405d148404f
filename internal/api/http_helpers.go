package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dayFormat = "2006-01-02"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayFormat, strings.TrimSpace(raw), location)
}

func parseOptionalDayParam(raw string, location *time.Location) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	day, err := parseDayParam(raw, location)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
