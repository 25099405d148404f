package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	profile := api.Group("/profile")
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	days := api.Group("/days")
	days.Get("", handler.GetDays)
	days.Get("/:date", handler.GetDay)
	days.Put("/:date", handler.UpsertDay)
	days.Delete("/:date", handler.DeleteDay)

	predictions := api.Group("/predictions")
	predictions.Get("", handler.GetPredictions)
	predictions.Post("/preview", handler.PreviewPrediction)

	api.Get("/patterns", handler.GetPatterns)

	chat := api.Group("/chat")
	chat.Get("/messages", handler.GetChatMessages)
	chat.Post("/messages", handler.PostChatMessage)
}
