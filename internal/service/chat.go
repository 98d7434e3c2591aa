package service

import (
	"context"
	"fmt"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/repo"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/usecase"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/logger"
)

// ChatService is the surrounding-application entry point: it owns message
// creation and hands processing to the pipeline. Each call is request-scoped
// and synchronous.
type ChatService struct {
	gw        repo.Gateway
	chatUC    *usecase.ChatUsecase
	recommend *usecase.RecommendUsecase
	composer  *usecase.Composer
}

// NewChatService creates a new chat service
func NewChatService(gw repo.Gateway, chatUC *usecase.ChatUsecase, recommend *usecase.RecommendUsecase, composer *usecase.Composer) *ChatService {
	return &ChatService{gw: gw, chatUC: chatUC, recommend: recommend, composer: composer}
}

// Send stores a user message and runs the processing pipeline on it
func (s *ChatService) Send(ctx context.Context, userID, text string) (*usecase.ProcessResult, error) {
	msg, err := s.gw.CreateMessage(ctx, userID, text, domain.DirectionUser)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	result, err := s.chatUC.ProcessMessage(ctx, msg.ID)
	if err != nil {
		logger.Logger.Error("message processing failed", "message_id", msg.ID, "err", err)
		if result != nil {
			// a failure reply was already persisted for the user
			return result, nil
		}
		return nil, err
	}
	if result.Drafts != nil {
		logger.Logger.Debug("message processed", "message_id", msg.ID, "drafts", result.Drafts.Count())
	}
	return result, nil
}

// Recommend runs the rule engine directly and persists a digest reply, the
// same outcome as a chat message asking for recommendations
func (s *ChatService) Recommend(ctx context.Context, userID string) ([]domain.Recommendation, *domain.Message, error) {
	recs, err := s.recommend.Generate(ctx, userID)
	if err != nil {
		logger.Logger.Error("recommendation generation failed", "user_id", userID, "err", err)
		reply, replyErr := s.gw.CreateMessage(ctx, userID, s.composer.RecommendFailure(), domain.DirectionSystem)
		if replyErr != nil {
			return nil, nil, fmt.Errorf("generate recommendations: %w", err)
		}
		return nil, reply, err
	}

	reply, err := s.gw.CreateMessage(ctx, userID, s.composer.RecommendationDigest(recs), domain.DirectionSystem)
	if err != nil {
		return recs, nil, fmt.Errorf("create digest reply: %w", err)
	}
	return recs, reply, nil
}

// History returns the recent chat transcript, most-recent-first
func (s *ChatService) History(ctx context.Context, userID string, limit int) ([]domain.Message, error) {
	return s.gw.ListMessages(ctx, userID, limit)
}
