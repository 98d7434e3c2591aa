package repo

import (
	"context"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

// UserRepo is the user profile repository interface
type UserRepo interface {
	// CreateUser persists a new profile, assigning id and creation time
	CreateUser(ctx context.Context, draft domain.UserDraft) (*domain.User, error)

	// GetUser returns the profile or ErrNotFound
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// UpdateUser applies the non-nil patch fields and returns the updated
	// profile, or ErrNotFound
	UpdateUser(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error)
}
