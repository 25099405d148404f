package db

import (
	"github.com/lunahq/luna/internal/models"
	"gorm.io/gorm"
)

type ChatMessageRepository struct {
	database *gorm.DB
}

func NewChatMessageRepository(database *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{database: database}
}

func (repo *ChatMessageRepository) Append(message models.ChatMessage) (models.ChatMessage, error) {
	if err := repo.database.Create(&message).Error; err != nil {
		return models.ChatMessage{}, err
	}
	return message, nil
}

// ListRecent returns the newest messages in chronological order.
func (repo *ChatMessageRepository) ListRecent(limit int) ([]models.ChatMessage, error) {
	newest := make([]models.ChatMessage, 0, limit)
	if err := repo.database.Order("id DESC").Limit(limit).Find(&newest).Error; err != nil {
		return nil, err
	}

	messages := make([]models.ChatMessage, 0, len(newest))
	for index := len(newest) - 1; index >= 0; index-- {
		messages = append(messages, newest[index])
	}
	return messages, nil
}

// TrimToNewest deletes everything but the newest limit messages.
func (repo *ChatMessageRepository) TrimToNewest(limit int) error {
	return repo.database.Exec(
		`DELETE FROM chat_messages WHERE id NOT IN (SELECT id FROM chat_messages ORDER BY id DESC LIMIT ?)`,
		limit,
	).Error
}
