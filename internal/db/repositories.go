package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles     *ProfileRepository
	DailyLogs    *DailyLogRepository
	ChatMessages *ChatMessageRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles:     NewProfileRepository(database),
		DailyLogs:    NewDailyLogRepository(database),
		ChatMessages: NewChatMessageRepository(database),
	}
}
