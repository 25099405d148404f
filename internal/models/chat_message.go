package models

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatHistoryLimit caps how many messages the store retains; older
// messages are pruned after every insert.
const ChatHistoryLimit = 50

type ChatMessage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Role         string    `gorm:"not null" json:"role"`
	Content      string    `gorm:"not null" json:"content"`
	Category     string    `json:"category,omitempty"`
	QuickActions []string  `gorm:"serializer:json" json:"quick_actions,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
