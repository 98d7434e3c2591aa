package usecase

import (
	"context"
	"fmt"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/repo"
)

// Recent-history window sizes, per domain
const (
	activityWindow  = 10
	sleepWindow     = 7
	nutritionWindow = 21
	hydrationWindow = 14
	wellbeingWindow = 7
)

// Rule thresholds
const (
	minRecentActivities  = 3
	targetSleepHours     = 7.0
	poorSleepThreshold   = 3
	minMealsForBreakfast = 10
	breakfastShare       = 0.2
	targetDailyML        = 2000
	highStressThreshold  = 4
	lowEnergyThreshold   = 4
)

// RecentHistory is the aggregated per-domain input to the rule engine,
// each slice most-recent-first
type RecentHistory struct {
	User       *domain.User
	Activities []domain.Activity
	Sleep      []domain.Sleep
	Nutrition  []domain.Nutrition
	Hydration  []domain.Hydration
	Wellbeing  []domain.Wellbeing
}

// RecommendUsecase evaluates independent threshold rules over recent
// history and persists the resulting drafts in firing order
type RecommendUsecase struct {
	users   repo.UserRepo
	tracker repo.TrackerRepo
	recs    repo.RecommendationRepo
}

// NewRecommendUsecase creates a new recommendation usecase
func NewRecommendUsecase(users repo.UserRepo, tracker repo.TrackerRepo, recs repo.RecommendationRepo) *RecommendUsecase {
	return &RecommendUsecase{users: users, tracker: tracker, recs: recs}
}

// Generate evaluates all rules for the user and persists one
// recommendation per fired rule. Returns repo.ErrNotFound when the user
// does not exist.
func (uc *RecommendUsecase) Generate(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	history, err := uc.fetchHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	var saved []domain.Recommendation
	for _, draft := range Evaluate(history) {
		rec, err := uc.recs.CreateRecommendation(ctx, userID, draft)
		if err != nil {
			return nil, fmt.Errorf("create recommendation: %w", err)
		}
		saved = append(saved, *rec)
	}
	return saved, nil
}

func (uc *RecommendUsecase) fetchHistory(ctx context.Context, userID string) (*RecentHistory, error) {
	user, err := uc.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	h := &RecentHistory{User: user}
	if h.Activities, err = uc.tracker.RecentActivities(ctx, userID, activityWindow); err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}
	if h.Sleep, err = uc.tracker.RecentSleep(ctx, userID, sleepWindow); err != nil {
		return nil, fmt.Errorf("recent sleep: %w", err)
	}
	if h.Nutrition, err = uc.tracker.RecentNutrition(ctx, userID, nutritionWindow); err != nil {
		return nil, fmt.Errorf("recent nutrition: %w", err)
	}
	if h.Hydration, err = uc.tracker.RecentHydration(ctx, userID, hydrationWindow); err != nil {
		return nil, fmt.Errorf("recent hydration: %w", err)
	}
	if h.Wellbeing, err = uc.tracker.RecentWellbeing(ctx, userID, wellbeingWindow); err != nil {
		return nil, fmt.Errorf("recent wellbeing: %w", err)
	}
	return h, nil
}

// Evaluate runs every rule over the history and returns the fired drafts in
// rule order. Pure and deterministic for a fixed input.
func Evaluate(h *RecentHistory) []domain.RecommendationDraft {
	var drafts []domain.RecommendationDraft

	if len(h.Activities) < minRecentActivities {
		drafts = append(drafts, domain.RecommendationDraft{
			Category:    domain.CategoryActivity,
			Title:       "Start Regular Exercise",
			Description: "You haven't logged much physical activity recently. Try to incorporate at least 30 minutes of exercise into your daily routine.",
			Priority:    domain.PriorityHigh,
		})
	}

	if len(h.Sleep) > 0 {
		var total float64
		poor := 0
		for _, s := range h.Sleep {
			total += s.DurationHours
			if s.Quality != nil && *s.Quality == domain.SleepPoor {
				poor++
			}
		}
		avg := total / float64(len(h.Sleep))
		if avg < targetSleepHours {
			drafts = append(drafts, domain.RecommendationDraft{
				Category:    domain.CategorySleep,
				Title:       "Improve Sleep Duration",
				Description: fmt.Sprintf("Your average sleep duration is %.1f hours. Aim for 7-9 hours of sleep per night for optimal health.", avg),
				Priority:    domain.PriorityHigh,
			})
		}
		if poor >= poorSleepThreshold {
			drafts = append(drafts, domain.RecommendationDraft{
				Category:    domain.CategorySleep,
				Title:       "Enhance Sleep Quality",
				Description: "You've reported poor sleep quality multiple times recently. Consider establishing a consistent bedtime routine.",
				Priority:    domain.PriorityMedium,
			})
		}
	}

	if len(h.Nutrition) > minMealsForBreakfast {
		breakfasts := 0
		for _, n := range h.Nutrition {
			if n.Meal == domain.MealBreakfast {
				breakfasts++
			}
		}
		if float64(breakfasts)/float64(len(h.Nutrition)) < breakfastShare {
			drafts = append(drafts, domain.RecommendationDraft{
				Category:    domain.CategoryNutrition,
				Title:       "Don't Skip Breakfast",
				Description: "You've been missing breakfast frequently. A healthy breakfast can boost your energy and metabolism.",
				Priority:    domain.PriorityMedium,
			})
		}
	}

	if len(h.Hydration) > 0 {
		total := 0
		for _, entry := range h.Hydration {
			total += entry.AmountML
		}
		// the window approximates one week of entries
		if float64(total)/7 < targetDailyML {
			drafts = append(drafts, domain.RecommendationDraft{
				Category:    domain.CategoryHydration,
				Title:       "Increase Water Intake",
				Description: "Your daily water intake appears low. Aim for at least 8 glasses (2000ml) of water per day.",
				Priority:    domain.PriorityMedium,
			})
		}
	} else if len(h.Activities) > 0 || len(h.Sleep) > 0 || len(h.Nutrition) > 0 || len(h.Wellbeing) > 0 {
		drafts = append(drafts, domain.RecommendationDraft{
			Category:    domain.CategoryHydration,
			Title:       "Track Your Hydration",
			Description: "Start tracking your daily water intake to ensure you're staying properly hydrated.",
			Priority:    domain.PriorityLow,
		})
	}

	if len(h.Wellbeing) > 0 {
		highStress, lowEnergy := 0, 0
		for _, w := range h.Wellbeing {
			if w.Stress == domain.LevelHigh || w.Stress == domain.LevelVeryHigh {
				highStress++
			}
			if w.Energy == domain.LevelLow || w.Energy == domain.LevelVeryLow {
				lowEnergy++
			}
		}
		if highStress >= highStressThreshold {
			drafts = append(drafts, domain.RecommendationDraft{
				Category:    domain.CategoryWellbeing,
				Title:       "Manage Stress Levels",
				Description: "You've reported high stress levels frequently. Consider stress-reduction techniques like meditation or deep breathing exercises.",
				Priority:    domain.PriorityHigh,
			})
		}
		if lowEnergy >= lowEnergyThreshold {
			drafts = append(drafts, domain.RecommendationDraft{
				Category:    domain.CategoryWellbeing,
				Title:       "Boost Energy Levels",
				Description: "Your energy levels have been low recently. Ensure you're getting enough sleep, nutrition, and physical activity.",
				Priority:    domain.PriorityMedium,
			})
		}
	}

	if h.User != nil && h.User.HasGoals() {
		drafts = append(drafts, domain.RecommendationDraft{
			Category:    domain.CategoryGeneral,
			Title:       "Stay Focused on Your Goals",
			Description: fmt.Sprintf("Remember your goal: %q. Keep tracking your progress and stay consistent with healthy habits.", h.User.Goals),
			Priority:    domain.PriorityLow,
		})
	}

	if len(drafts) == 0 {
		drafts = append(drafts, domain.RecommendationDraft{
			Category:    domain.CategoryGeneral,
			Title:       "Keep Up the Good Work",
			Description: "Your health metrics look good! Continue maintaining your healthy lifestyle habits.",
			Priority:    domain.PriorityLow,
		})
	}

	return drafts
}
