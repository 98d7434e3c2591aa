package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/repo"
)

// CreateMessage persists a chat message
func (s *Store) CreateMessage(ctx context.Context, userID, text string, direction domain.Direction) (*domain.Message, error) {
	msg := &domain.Message{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Direction: direction,
		CreatedAt: time.Now(),
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO messages (id, user_id, text, direction, extracted, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`, msg.ID, msg.UserID, msg.Text, string(msg.Direction), msg.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// GetMessage returns the message or repo.ErrNotFound
func (s *Store) GetMessage(ctx context.Context, messageID string) (*domain.Message, error) {
	row := s.q.QueryRowContext(ctx, `
		SELECT id, user_id, text, direction, extracted, created_at
		FROM messages
		WHERE id = ?
	`, messageID)

	msg, err := scanMessage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("message %s: %w", messageID, repo.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query message: %w", err)
	}
	return msg, nil
}

// ListMessages returns up to limit messages, most-recent-first
func (s *Store) ListMessages(ctx context.Context, userID string, limit int) ([]domain.Message, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, user_id, text, direction, extracted, created_at
		FROM messages
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		msg, err := scanMessage(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, *msg)
	}
	return messages, rows.Err()
}

// ClaimExtracted atomically sets the extracted flag; the conditional update
// only matches when the flag was previously false
func (s *Store) ClaimExtracted(ctx context.Context, messageID string) (bool, error) {
	result, err := s.q.ExecContext(ctx, `
		UPDATE messages SET extracted = 1 WHERE id = ? AND extracted = 0
	`, messageID)
	if err != nil {
		return false, fmt.Errorf("failed to claim message: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read claim result: %w", err)
	}
	return affected > 0, nil
}

func scanMessage(scan func(dest ...any) error) (*domain.Message, error) {
	var msg domain.Message
	var direction string
	var createdAt int64
	if err := scan(&msg.ID, &msg.UserID, &msg.Text, &direction, &msg.Extracted, &createdAt); err != nil {
		return nil, err
	}
	msg.Direction = domain.Direction(direction)
	msg.CreatedAt = time.Unix(createdAt, 0)
	return &msg, nil
}
