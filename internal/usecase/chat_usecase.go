package usecase

import (
	"context"
	"errors"

	"riseup-backend/internal/domain"
	"riseup-backend/pkg/apperror"
)

type chatUsecase struct {
	chatRepo domain.ChatRepository
}

func NewChatUsecase(chatRepo domain.ChatRepository) domain.ChatUsecase {
	return &chatUsecase{chatRepo: chatRepo}
}

func (u *chatUsecase) PostMessage(ctx context.Context, conversationID int64, role, content, audio string) (*domain.Message, error) {
	if _, err := u.chatRepo.GetConversation(ctx, conversationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Conversation not found")
		}
		return nil, apperror.Internal(err)
	}

	msg := &domain.Message{
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
	}
	if audio != "" {
		msg.Audio = &audio
	}
	if err := u.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, apperror.Internal(err)
	}
	return msg, nil
}

func (u *chatUsecase) ListMessages(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	if _, err := u.chatRepo.GetConversation(ctx, conversationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Conversation not found")
		}
		return nil, apperror.Internal(err)
	}

	messages, err := u.chatRepo.GetMessages(ctx, conversationID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return messages, nil
}

func (u *chatUsecase) DeleteConversation(ctx context.Context, id int64) error {
	if err := u.chatRepo.DeleteConversation(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Conversation not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
