package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is a single chat turn embedded in a conversation. Messages have no
// row of their own; the whole ordered sequence lives in the conversation's
// jsonb column so append order is exactly insertion order.
type Message struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

// Valid reports whether the message carries a known sender role and non-empty content.
func (m Message) Valid() bool {
	return (m.Sender == SenderUser || m.Sender == SenderBot) && m.Content != ""
}

type Conversation struct {
	ID        uuid.UUID                    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID                    `json:"userId" gorm:"type:uuid;not null;index"`
	Messages  datatypes.JSONSlice[Message] `json:"messages" gorm:"type:jsonb;default:'[]'"`
	CreatedAt time.Time                    `json:"createdAt"`
	UpdatedAt time.Time                    `json:"updatedAt"`
}
