package data

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/repo"
)

// CreateRecommendation persists a recommendation draft, unread
func (s *Store) CreateRecommendation(ctx context.Context, userID string, draft domain.RecommendationDraft) (*domain.Recommendation, error) {
	rec := &domain.Recommendation{
		ID:          uuid.NewString(),
		UserID:      userID,
		Category:    draft.Category,
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		CreatedAt:   time.Now(),
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO recommendations (id, user_id, category, title, description, priority, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?)
	`, rec.ID, rec.UserID, string(rec.Category), rec.Title, rec.Description,
		string(rec.Priority), rec.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation: %w", err)
	}
	return rec, nil
}

// ListRecommendations returns recommendations most-recent-first
func (s *Store) ListRecommendations(ctx context.Context, userID string, unreadOnly bool) ([]domain.Recommendation, error) {
	query := `
		SELECT id, user_id, category, title, description, priority, is_read, created_at
		FROM recommendations
		WHERE user_id = ?
	`
	if unreadOnly {
		query += ` AND is_read = 0`
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := s.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	defer rows.Close()

	var records []domain.Recommendation
	for rows.Next() {
		var rec domain.Recommendation
		var category, priority string
		var createdAt int64
		if err := rows.Scan(&rec.ID, &rec.UserID, &category, &rec.Title,
			&rec.Description, &priority, &rec.Read, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		rec.Category = domain.Category(category)
		rec.Priority = domain.Priority(priority)
		rec.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// MarkRecommendationRead flags a recommendation as read
func (s *Store) MarkRecommendationRead(ctx context.Context, recommendationID string) error {
	result, err := s.q.ExecContext(ctx, `
		UPDATE recommendations SET is_read = 1 WHERE id = ?
	`, recommendationID)
	if err != nil {
		return fmt.Errorf("failed to mark recommendation read: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("recommendation %s: %w", recommendationID, repo.ErrNotFound)
	}
	return nil
}
