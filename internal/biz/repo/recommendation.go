package repo

import (
	"context"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

// RecommendationRepo is the recommendation repository interface
type RecommendationRepo interface {
	// CreateRecommendation persists a draft, unread, assigning id and
	// creation time
	CreateRecommendation(ctx context.Context, userID string, draft domain.RecommendationDraft) (*domain.Recommendation, error)

	// ListRecommendations returns recommendations most-recent-first,
	// optionally restricted to unread ones
	ListRecommendations(ctx context.Context, userID string, unreadOnly bool) ([]domain.Recommendation, error)

	// MarkRecommendationRead flags a recommendation as read, or ErrNotFound
	MarkRecommendationRead(ctx context.Context, recommendationID string) error
}
