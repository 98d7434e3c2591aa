package repo

import (
	"context"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

// MessageRepo is the chat message repository interface
type MessageRepo interface {
	// CreateMessage persists a message, assigning id and creation time
	CreateMessage(ctx context.Context, userID, text string, direction domain.Direction) (*domain.Message, error)

	// GetMessage returns the message or ErrNotFound
	GetMessage(ctx context.Context, messageID string) (*domain.Message, error)

	// ListMessages returns up to limit messages, most-recent-first
	ListMessages(ctx context.Context, userID string, limit int) ([]domain.Message, error)

	// ClaimExtracted atomically sets the extracted flag. It only succeeds
	// when the flag was previously false; a false return means another
	// writer already claimed the message.
	ClaimExtracted(ctx context.Context, messageID string) (bool, error)
}
