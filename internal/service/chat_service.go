package service

import (
	"context"

	"github.com/courselens/courselens-backend/internal/model"
	"github.com/courselens/courselens-backend/internal/repository"
	"github.com/rs/zerolog"
)

// chatHistoryLimit bounds how much transcript one fetch returns.
const chatHistoryLimit = 100

// ChatService handles per-class chat messages.
type ChatService struct {
	chatRepo *repository.ChatRepository
	log      zerolog.Logger
}

// NewChatService creates a new ChatService.
func NewChatService(chatRepo *repository.ChatRepository, log zerolog.Logger) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		log:      log.With().Str("component", "chat_service").Logger(),
	}
}

// Post persists a chat message with the author's profile denormalized in.
func (s *ChatService) Post(ctx context.Context, className string, req *model.CreateChatMessageRequest, author *Claims) (*model.ChatMessage, error) {
	msg := &model.ChatMessage{
		ClassName:      className,
		Content:        req.Content,
		AuthorUsername: author.Username,
		AuthorAvatar:   author.Avatar,
	}
	if err := s.chatRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// History returns the recent transcript for a class, oldest first.
func (s *ChatService) History(ctx context.Context, className string) ([]model.ChatMessage, error) {
	return s.chatRepo.ListByClass(ctx, className, chatHistoryLimit)
}
