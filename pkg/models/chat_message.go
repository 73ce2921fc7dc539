package models

import "time"

// ChatMessage is one row of a session transcript. Rows are append-only
// and ordered by timestamp; an exchange appends a user row followed by
// a bot row.
type ChatMessage struct {
	ID        int       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	SessionID string    `json:"sessionId" gorm:"column:session_id;not null;index"`
	Message   string    `json:"message" gorm:"column:message;not null"`
	IsBot     bool      `json:"isBot" gorm:"column:is_bot;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp"`
}

func (ChatMessage) TableName() string { return "chat_messages" }
