package api

import (
	"time"

	"github.com/lunahq/luna/internal/db"
	"github.com/lunahq/luna/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	location     *time.Location
	repositories *db.Repositories
	predictions  *services.PredictionService
	chat         *services.ChatService
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		location:     location,
		repositories: repositories,
		predictions:  services.NewPredictionService(repositories.Profiles, repositories.DailyLogs, services.NewPredictor()),
		chat:         services.NewChatService(repositories.ChatMessages),
	}
}
