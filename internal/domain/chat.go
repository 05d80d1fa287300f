package domain

import (
	"context"
	"time"
)

// Conversation is a generic chat session. Mock interviews link to one and
// reuse its messages as the turn-by-turn transcript.
type Conversation struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is one chat turn. Audio carries a base64 payload for voice turns
// and is nulled by the retention sweeper once the message is older than the
// configured window.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Audio          *string   `json:"audio,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ChatRepository interface {
	CreateConversation(ctx context.Context, title string) (*Conversation, error)
	GetConversation(ctx context.Context, id int64) (*Conversation, error)
	// DeleteConversation removes the conversation and all of its messages.
	DeleteConversation(ctx context.Context, id int64) error
	CreateMessage(ctx context.Context, msg *Message) error
	// GetMessages returns a conversation's messages ordered oldest first.
	GetMessages(ctx context.Context, conversationID int64) ([]Message, error)
	// ClearAudioBefore nulls audio payloads on messages created before the
	// cutoff and returns how many rows were touched.
	ClearAudioBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type ChatUsecase interface {
	PostMessage(ctx context.Context, conversationID int64, role, content, audio string) (*Message, error)
	ListMessages(ctx context.Context, conversationID int64) ([]Message, error)
	DeleteConversation(ctx context.Context, id int64) error
}
