package service

import (
	"context"
	"log/slog"
	"time"

	"message_board/internal/common"
	"message_board/internal/domain/model"
	"message_board/internal/domain/repository"
)

type MessageService struct {
	messageRepo repository.MessageRepository
	listLimit   int64
}

func NewMessageService(messageRepo repository.MessageRepository, listLimit int64) *MessageService {
	return &MessageService{messageRepo: messageRepo, listLimit: listLimit}
}

type PostMessageRequest struct {
	Message  string `json:"message"`
	Author   string `json:"author"`
	ParentID string `json:"parentId"`
}

// ModifyMessageRequest is the delete/edit body. Ownership is decided by
// comparing the body's Author and UserID fields; the identity attached by
// the auth middleware is not consulted here.
type ModifyMessageRequest struct {
	Message  string `json:"message"`
	Author   string `json:"author"`
	ParentID string `json:"parentId"`
	UserID   string `json:"userId"`
}

func (s *MessageService) Post(ctx context.Context, req PostMessageRequest) (*model.Message, error) {
	if req.Message == "" {
		return nil, common.Errorf("message is required: %w", common.ErrValidation)
	}
	message := &model.Message{
		Message:   req.Message,
		ParentID:  req.ParentID,
		Author:    req.Author,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, common.Errorf("failed to save message: %w", err)
	}
	slog.Info("saved message", "id", message.ID, "author", message.Author)
	return message, nil
}

func (s *MessageService) List(ctx context.Context) ([]model.Message, error) {
	return s.messageRepo.FindRecent(ctx, s.listLimit)
}

func (s *MessageService) Delete(ctx context.Context, id string, req ModifyMessageRequest) (*model.Message, error) {
	if req.Author != req.UserID {
		return nil, common.ErrForbidden
	}
	deleted, err := s.messageRepo.FindOneAndDelete(ctx, id, req.Author)
	if err != nil {
		return nil, err
	}
	slog.Info("deleted message", "id", deleted.ID)
	return deleted, nil
}

func (s *MessageService) Edit(ctx context.Context, id string, req ModifyMessageRequest) (*model.Message, error) {
	if req.Author != req.UserID {
		return nil, common.ErrForbidden
	}
	updated, err := s.messageRepo.FindOneAndUpdate(ctx, id, repository.MessageUpdate{
		Message:  req.Message,
		ParentID: req.ParentID,
		Author:   req.Author,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("edited message", "id", updated.ID)
	return updated, nil
}
