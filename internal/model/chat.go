package model

import "time"

// ChatMessage is one persisted message in a per-class chat room.
type ChatMessage struct {
	ID             int       `json:"id"`
	ClassName      string    `json:"class_name"`
	Content        string    `json:"content"`
	AuthorUsername string    `json:"author_username"`
	AuthorAvatar   string    `json:"author_avatar"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateChatMessageRequest is the payload for posting a chat message.
type CreateChatMessageRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}
