package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/repo"
)

// Mock implementations

type mockGateway struct {
	users           map[string]*domain.User
	messages        map[string]*domain.Message
	activities      []domain.Activity
	nutrition       []domain.Nutrition
	hydration       []domain.Hydration
	sleep           []domain.Sleep
	wellbeing       []domain.Wellbeing
	recommendations []domain.Recommendation

	nextID int

	// failure knobs
	failCreateSleep  bool
	claimAlwaysFalse bool
}

func newMockGateway() *mockGateway {
	return &mockGateway{
		users:    make(map[string]*domain.User),
		messages: make(map[string]*domain.Message),
	}
}

func (m *mockGateway) id() string {
	m.nextID++
	return fmt.Sprintf("id-%d", m.nextID)
}

func (m *mockGateway) CreateUser(ctx context.Context, draft domain.UserDraft) (*domain.User, error) {
	user := &domain.User{ID: m.id(), Name: draft.Name, Email: draft.Email, Goals: draft.Goals, CreatedAt: time.Now()}
	m.users[user.ID] = user
	return user, nil
}

func (m *mockGateway) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", userID, repo.ErrNotFound)
}

func (m *mockGateway) UpdateUser(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	if patch.Goals != nil {
		u.Goals = *patch.Goals
	}
	if patch.Onboarded != nil {
		u.Onboarded = *patch.Onboarded
	}
	return u, nil
}

func (m *mockGateway) CreateMessage(ctx context.Context, userID, text string, direction domain.Direction) (*domain.Message, error) {
	msg := &domain.Message{ID: m.id(), UserID: userID, Text: text, Direction: direction, CreatedAt: time.Now()}
	m.messages[msg.ID] = msg
	return msg, nil
}

func (m *mockGateway) GetMessage(ctx context.Context, messageID string) (*domain.Message, error) {
	if msg, ok := m.messages[messageID]; ok {
		copied := *msg
		return &copied, nil
	}
	return nil, fmt.Errorf("message %s: %w", messageID, repo.ErrNotFound)
}

func (m *mockGateway) ListMessages(ctx context.Context, userID string, limit int) ([]domain.Message, error) {
	var result []domain.Message
	for _, msg := range m.messages {
		if msg.UserID == userID {
			result = append(result, *msg)
		}
	}
	return result, nil
}

func (m *mockGateway) ClaimExtracted(ctx context.Context, messageID string) (bool, error) {
	if m.claimAlwaysFalse {
		return false, nil
	}
	msg, ok := m.messages[messageID]
	if !ok || msg.Extracted {
		return false, nil
	}
	msg.Extracted = true
	return true, nil
}

func (m *mockGateway) CreateActivity(ctx context.Context, userID string, draft domain.ActivityDraft, recordedAt time.Time) (*domain.Activity, error) {
	rec := domain.Activity{ID: m.id(), UserID: userID, Type: draft.Type, DurationMinutes: draft.DurationMinutes,
		Calories: draft.Calories, Intensity: draft.Intensity, Note: draft.Note, RecordedAt: recordedAt, CreatedAt: time.Now()}
	m.activities = append(m.activities, rec)
	return &rec, nil
}

func (m *mockGateway) RecentActivities(ctx context.Context, userID string, limit int) ([]domain.Activity, error) {
	return capped(m.activities, limit), nil
}

func (m *mockGateway) CreateNutrition(ctx context.Context, userID string, draft domain.NutritionDraft, recordedAt time.Time) (*domain.Nutrition, error) {
	rec := domain.Nutrition{ID: m.id(), UserID: userID, Meal: draft.Meal, Food: draft.Food, Quantity: draft.Quantity,
		Calories: draft.Calories, Note: draft.Note, RecordedAt: recordedAt, CreatedAt: time.Now()}
	m.nutrition = append(m.nutrition, rec)
	return &rec, nil
}

func (m *mockGateway) RecentNutrition(ctx context.Context, userID string, limit int) ([]domain.Nutrition, error) {
	return capped(m.nutrition, limit), nil
}

func (m *mockGateway) CreateHydration(ctx context.Context, userID string, draft domain.HydrationDraft, recordedAt time.Time) (*domain.Hydration, error) {
	rec := domain.Hydration{ID: m.id(), UserID: userID, AmountML: draft.AmountML, Beverage: draft.Beverage,
		RecordedAt: recordedAt, CreatedAt: time.Now()}
	m.hydration = append(m.hydration, rec)
	return &rec, nil
}

func (m *mockGateway) RecentHydration(ctx context.Context, userID string, limit int) ([]domain.Hydration, error) {
	return capped(m.hydration, limit), nil
}

func (m *mockGateway) CreateSleep(ctx context.Context, userID string, draft domain.SleepDraft, recordedAt time.Time) (*domain.Sleep, error) {
	if m.failCreateSleep {
		return nil, errors.New("sleep store unavailable")
	}
	wake := domain.RollWake(draft.Bedtime, draft.WakeTime)
	rec := domain.Sleep{ID: m.id(), UserID: userID, Bedtime: draft.Bedtime, WakeTime: wake,
		DurationHours: wake.Sub(draft.Bedtime).Hours(), Quality: draft.Quality, Note: draft.Note,
		RecordedAt: recordedAt, CreatedAt: time.Now()}
	m.sleep = append(m.sleep, rec)
	return &rec, nil
}

func (m *mockGateway) RecentSleep(ctx context.Context, userID string, limit int) ([]domain.Sleep, error) {
	return capped(m.sleep, limit), nil
}

func (m *mockGateway) CreateWellbeing(ctx context.Context, userID string, draft domain.WellbeingDraft, recordedAt time.Time) (*domain.Wellbeing, error) {
	mood, stress, energy := draft.Levels()
	rec := domain.Wellbeing{ID: m.id(), UserID: userID, Mood: mood, Stress: stress, Energy: energy,
		Note: draft.Note, RecordedAt: recordedAt, CreatedAt: time.Now()}
	m.wellbeing = append(m.wellbeing, rec)
	return &rec, nil
}

func (m *mockGateway) RecentWellbeing(ctx context.Context, userID string, limit int) ([]domain.Wellbeing, error) {
	return capped(m.wellbeing, limit), nil
}

func (m *mockGateway) CreateRecommendation(ctx context.Context, userID string, draft domain.RecommendationDraft) (*domain.Recommendation, error) {
	rec := domain.Recommendation{ID: m.id(), UserID: userID, Category: draft.Category, Title: draft.Title,
		Description: draft.Description, Priority: draft.Priority, CreatedAt: time.Now()}
	m.recommendations = append(m.recommendations, rec)
	return &rec, nil
}

func (m *mockGateway) ListRecommendations(ctx context.Context, userID string, unreadOnly bool) ([]domain.Recommendation, error) {
	return m.recommendations, nil
}

func (m *mockGateway) MarkRecommendationRead(ctx context.Context, recommendationID string) error {
	for i := range m.recommendations {
		if m.recommendations[i].ID == recommendationID {
			m.recommendations[i].Read = true
			return nil
		}
	}
	return repo.ErrNotFound
}

// Atomic mirrors the sqlite store: state is snapshotted before fn and
// restored when fn fails, so partial writes roll back.
func (m *mockGateway) Atomic(ctx context.Context, fn func(repo.Gateway) error) error {
	snapshot := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(snapshot)
		return err
	}
	return nil
}

type gatewaySnapshot struct {
	messages        map[string]domain.Message
	activities      []domain.Activity
	nutrition       []domain.Nutrition
	hydration       []domain.Hydration
	sleep           []domain.Sleep
	wellbeing       []domain.Wellbeing
	recommendations []domain.Recommendation
}

func (m *mockGateway) snapshot() gatewaySnapshot {
	messages := make(map[string]domain.Message, len(m.messages))
	for id, msg := range m.messages {
		messages[id] = *msg
	}
	return gatewaySnapshot{
		messages:        messages,
		activities:      append([]domain.Activity(nil), m.activities...),
		nutrition:       append([]domain.Nutrition(nil), m.nutrition...),
		hydration:       append([]domain.Hydration(nil), m.hydration...),
		sleep:           append([]domain.Sleep(nil), m.sleep...),
		wellbeing:       append([]domain.Wellbeing(nil), m.wellbeing...),
		recommendations: append([]domain.Recommendation(nil), m.recommendations...),
	}
}

func (m *mockGateway) restore(s gatewaySnapshot) {
	m.messages = make(map[string]*domain.Message, len(s.messages))
	for id := range s.messages {
		msg := s.messages[id]
		m.messages[id] = &msg
	}
	m.activities = s.activities
	m.nutrition = s.nutrition
	m.hydration = s.hydration
	m.sleep = s.sleep
	m.wellbeing = s.wellbeing
	m.recommendations = s.recommendations
}

func capped[T any](records []T, limit int) []T {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
