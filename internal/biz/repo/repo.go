package repo

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a referenced entity does not exist
var ErrNotFound = errors.New("not found")

// ErrAlreadyProcessed is returned when a message claim loses to a
// concurrent writer; the caller should treat the message as a no-op.
var ErrAlreadyProcessed = errors.New("message already processed")

// Gateway is the full persistence boundary the core calls into. Atomic runs
// fn against a gateway whose writes commit or roll back together.
type Gateway interface {
	UserRepo
	MessageRepo
	TrackerRepo
	RecommendationRepo

	Atomic(ctx context.Context, fn func(Gateway) error) error
}
