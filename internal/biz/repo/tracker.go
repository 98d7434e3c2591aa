package repo

import (
	"context"
	"time"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

// TrackerRepo is the per-domain wellness record repository interface.
// Creates assign id and creation time; recent reads are most-recent-first.
type TrackerRepo interface {
	CreateActivity(ctx context.Context, userID string, draft domain.ActivityDraft, recordedAt time.Time) (*domain.Activity, error)
	RecentActivities(ctx context.Context, userID string, limit int) ([]domain.Activity, error)

	CreateNutrition(ctx context.Context, userID string, draft domain.NutritionDraft, recordedAt time.Time) (*domain.Nutrition, error)
	RecentNutrition(ctx context.Context, userID string, limit int) ([]domain.Nutrition, error)

	CreateHydration(ctx context.Context, userID string, draft domain.HydrationDraft, recordedAt time.Time) (*domain.Hydration, error)
	RecentHydration(ctx context.Context, userID string, limit int) ([]domain.Hydration, error)

	CreateSleep(ctx context.Context, userID string, draft domain.SleepDraft, recordedAt time.Time) (*domain.Sleep, error)
	RecentSleep(ctx context.Context, userID string, limit int) ([]domain.Sleep, error)

	CreateWellbeing(ctx context.Context, userID string, draft domain.WellbeingDraft, recordedAt time.Time) (*domain.Wellbeing, error)
	RecentWellbeing(ctx context.Context, userID string, limit int) ([]domain.Wellbeing, error)
}
