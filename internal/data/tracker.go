package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

// CreateActivity persists an activity draft
func (s *Store) CreateActivity(ctx context.Context, userID string, draft domain.ActivityDraft, recordedAt time.Time) (*domain.Activity, error) {
	rec := &domain.Activity{
		ID:              uuid.NewString(),
		UserID:          userID,
		Type:            draft.Type,
		DurationMinutes: draft.DurationMinutes,
		Calories:        draft.Calories,
		Intensity:       draft.Intensity,
		Note:            draft.Note,
		RecordedAt:      recordedAt,
		CreatedAt:       time.Now(),
	}

	var intensity any
	if rec.Intensity != nil {
		intensity = string(*rec.Intensity)
	}
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO activities (id, user_id, activity_type, duration_minutes, calories, intensity, note, recorded_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.UserID, rec.Type, rec.DurationMinutes, nullFloat(rec.Calories), intensity,
		rec.Note, rec.RecordedAt.Unix(), rec.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return rec, nil
}

// RecentActivities returns up to limit activities, most-recent-first
func (s *Store) RecentActivities(ctx context.Context, userID string, limit int) ([]domain.Activity, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, user_id, activity_type, duration_minutes, calories, intensity, note, recorded_at, created_at
		FROM activities
		WHERE user_id = ?
		ORDER BY recorded_at DESC, rowid DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var records []domain.Activity
	for rows.Next() {
		var rec domain.Activity
		var calories sql.NullFloat64
		var intensity sql.NullString
		var recordedAt, createdAt int64
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Type, &rec.DurationMinutes,
			&calories, &intensity, &rec.Note, &recordedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		if calories.Valid {
			rec.Calories = &calories.Float64
		}
		if intensity.Valid {
			v := domain.Intensity(intensity.String)
			rec.Intensity = &v
		}
		rec.RecordedAt = time.Unix(recordedAt, 0)
		rec.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CreateNutrition persists a nutrition draft
func (s *Store) CreateNutrition(ctx context.Context, userID string, draft domain.NutritionDraft, recordedAt time.Time) (*domain.Nutrition, error) {
	quantity := draft.Quantity
	if quantity == "" {
		quantity = domain.DefaultQuantity
	}
	rec := &domain.Nutrition{
		ID:         uuid.NewString(),
		UserID:     userID,
		Meal:       draft.Meal,
		Food:       draft.Food,
		Quantity:   quantity,
		Calories:   draft.Calories,
		Note:       draft.Note,
		RecordedAt: recordedAt,
		CreatedAt:  time.Now(),
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO nutrition (id, user_id, meal, food, quantity, calories, note, recorded_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.UserID, string(rec.Meal), rec.Food, rec.Quantity, nullFloat(rec.Calories),
		rec.Note, rec.RecordedAt.Unix(), rec.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition: %w", err)
	}
	return rec, nil
}

// RecentNutrition returns up to limit meal entries, most-recent-first
func (s *Store) RecentNutrition(ctx context.Context, userID string, limit int) ([]domain.Nutrition, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, user_id, meal, food, quantity, calories, note, recorded_at, created_at
		FROM nutrition
		WHERE user_id = ?
		ORDER BY recorded_at DESC, rowid DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list nutrition: %w", err)
	}
	defer rows.Close()

	var records []domain.Nutrition
	for rows.Next() {
		var rec domain.Nutrition
		var meal string
		var calories sql.NullFloat64
		var recordedAt, createdAt int64
		if err := rows.Scan(&rec.ID, &rec.UserID, &meal, &rec.Food, &rec.Quantity,
			&calories, &rec.Note, &recordedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan nutrition: %w", err)
		}
		rec.Meal = domain.MealType(meal)
		if calories.Valid {
			rec.Calories = &calories.Float64
		}
		rec.RecordedAt = time.Unix(recordedAt, 0)
		rec.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CreateHydration persists a hydration draft
func (s *Store) CreateHydration(ctx context.Context, userID string, draft domain.HydrationDraft, recordedAt time.Time) (*domain.Hydration, error) {
	beverage := draft.Beverage
	if beverage == "" {
		beverage = domain.DefaultBeverage
	}
	rec := &domain.Hydration{
		ID:         uuid.NewString(),
		UserID:     userID,
		AmountML:   draft.AmountML,
		Beverage:   beverage,
		RecordedAt: recordedAt,
		CreatedAt:  time.Now(),
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO hydration (id, user_id, amount_ml, beverage, note, recorded_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.UserID, rec.AmountML, rec.Beverage, draft.Note,
		rec.RecordedAt.Unix(), rec.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create hydration: %w", err)
	}
	return rec, nil
}

// RecentHydration returns up to limit hydration entries, most-recent-first
func (s *Store) RecentHydration(ctx context.Context, userID string, limit int) ([]domain.Hydration, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, user_id, amount_ml, beverage, recorded_at, created_at
		FROM hydration
		WHERE user_id = ?
		ORDER BY recorded_at DESC, rowid DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list hydration: %w", err)
	}
	defer rows.Close()

	var records []domain.Hydration
	for rows.Next() {
		var rec domain.Hydration
		var recordedAt, createdAt int64
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.AmountML, &rec.Beverage,
			&recordedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan hydration: %w", err)
		}
		rec.RecordedAt = time.Unix(recordedAt, 0)
		rec.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CreateSleep persists a sleep draft. The wake time is rolled to the next
// day when it does not fall strictly after bedtime, and the stored duration
// is always derived from the pair.
func (s *Store) CreateSleep(ctx context.Context, userID string, draft domain.SleepDraft, recordedAt time.Time) (*domain.Sleep, error) {
	wake := domain.RollWake(draft.Bedtime, draft.WakeTime)
	rec := &domain.Sleep{
		ID:            uuid.NewString(),
		UserID:        userID,
		Bedtime:       draft.Bedtime,
		WakeTime:      wake,
		DurationHours: wake.Sub(draft.Bedtime).Hours(),
		Quality:       draft.Quality,
		Note:          draft.Note,
		RecordedAt:    recordedAt,
		CreatedAt:     time.Now(),
	}

	var quality any
	if rec.Quality != nil {
		quality = string(*rec.Quality)
	}
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO sleep (id, user_id, bedtime, wake_time, duration_hours, quality, note, recorded_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.UserID, rec.Bedtime.Unix(), rec.WakeTime.Unix(), rec.DurationHours,
		quality, rec.Note, rec.RecordedAt.Unix(), rec.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create sleep: %w", err)
	}
	return rec, nil
}

// RecentSleep returns up to limit sleep entries, most-recent-first
func (s *Store) RecentSleep(ctx context.Context, userID string, limit int) ([]domain.Sleep, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, user_id, bedtime, wake_time, duration_hours, quality, note, recorded_at, created_at
		FROM sleep
		WHERE user_id = ?
		ORDER BY recorded_at DESC, rowid DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sleep: %w", err)
	}
	defer rows.Close()

	var records []domain.Sleep
	for rows.Next() {
		var rec domain.Sleep
		var bedtime, wakeTime, recordedAt, createdAt int64
		var quality sql.NullString
		if err := rows.Scan(&rec.ID, &rec.UserID, &bedtime, &wakeTime, &rec.DurationHours,
			&quality, &rec.Note, &recordedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan sleep: %w", err)
		}
		rec.Bedtime = time.Unix(bedtime, 0)
		rec.WakeTime = time.Unix(wakeTime, 0)
		if quality.Valid {
			v := domain.SleepQuality(quality.String)
			rec.Quality = &v
		}
		rec.RecordedAt = time.Unix(recordedAt, 0)
		rec.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CreateWellbeing persists a wellbeing draft. Dimensions the draft leaves
// unset receive the middle value here, at the persistence boundary.
func (s *Store) CreateWellbeing(ctx context.Context, userID string, draft domain.WellbeingDraft, recordedAt time.Time) (*domain.Wellbeing, error) {
	mood, stress, energy := draft.Levels()
	rec := &domain.Wellbeing{
		ID:         uuid.NewString(),
		UserID:     userID,
		Mood:       mood,
		Stress:     stress,
		Energy:     energy,
		Note:       draft.Note,
		RecordedAt: recordedAt,
		CreatedAt:  time.Now(),
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO wellbeing (id, user_id, mood, stress, energy, note, recorded_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.UserID, string(rec.Mood), string(rec.Stress), string(rec.Energy),
		rec.Note, rec.RecordedAt.Unix(), rec.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create wellbeing: %w", err)
	}
	return rec, nil
}

// RecentWellbeing returns up to limit check-ins, most-recent-first
func (s *Store) RecentWellbeing(ctx context.Context, userID string, limit int) ([]domain.Wellbeing, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, user_id, mood, stress, energy, note, recorded_at, created_at
		FROM wellbeing
		WHERE user_id = ?
		ORDER BY recorded_at DESC, rowid DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list wellbeing: %w", err)
	}
	defer rows.Close()

	var records []domain.Wellbeing
	for rows.Next() {
		var rec domain.Wellbeing
		var mood, stress, energy string
		var recordedAt, createdAt int64
		if err := rows.Scan(&rec.ID, &rec.UserID, &mood, &stress, &energy,
			&rec.Note, &recordedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan wellbeing: %w", err)
		}
		rec.Mood = domain.Mood(mood)
		rec.Stress = domain.Level(stress)
		rec.Energy = domain.Level(energy)
		rec.RecordedAt = time.Unix(recordedAt, 0)
		rec.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}
