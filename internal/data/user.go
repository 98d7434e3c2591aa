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

// CreateUser persists a new profile
func (s *Store) CreateUser(ctx context.Context, draft domain.UserDraft) (*domain.User, error) {
	user := &domain.User{
		ID:            uuid.NewString(),
		Name:          draft.Name,
		Email:         draft.Email,
		Age:           draft.Age,
		Gender:        draft.Gender,
		HeightCm:      draft.HeightCm,
		WeightKg:      draft.WeightKg,
		ActivityLevel: draft.ActivityLevel,
		Goals:         draft.Goals,
		CreatedAt:     time.Now(),
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO users (id, name, email, age, gender, height_cm, weight_kg, activity_level, goals, onboarded, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)
	`,
		user.ID, user.Name, user.Email,
		nullInt(user.Age), nullString(user.Gender),
		nullFloat(user.HeightCm), nullFloat(user.WeightKg),
		nullString(user.ActivityLevel), user.Goals, user.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser returns the profile or repo.ErrNotFound
func (s *Store) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	row := s.q.QueryRowContext(ctx, `
		SELECT id, name, email, age, gender, height_cm, weight_kg, activity_level, goals, onboarded, created_at
		FROM users
		WHERE id = ?
	`, userID)

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", userID, repo.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// UpdateUser applies the non-nil patch fields
func (s *Store) UpdateUser(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Age != nil {
		user.Age = patch.Age
	}
	if patch.Gender != nil {
		user.Gender = patch.Gender
	}
	if patch.HeightCm != nil {
		user.HeightCm = patch.HeightCm
	}
	if patch.WeightKg != nil {
		user.WeightKg = patch.WeightKg
	}
	if patch.ActivityLevel != nil {
		user.ActivityLevel = patch.ActivityLevel
	}
	if patch.Goals != nil {
		user.Goals = *patch.Goals
	}
	if patch.Onboarded != nil {
		user.Onboarded = *patch.Onboarded
	}

	_, err = s.q.ExecContext(ctx, `
		UPDATE users
		SET name = ?, age = ?, gender = ?, height_cm = ?, weight_kg = ?, activity_level = ?, goals = ?, onboarded = ?
		WHERE id = ?
	`,
		user.Name, nullInt(user.Age), nullString(user.Gender),
		nullFloat(user.HeightCm), nullFloat(user.WeightKg),
		nullString(user.ActivityLevel), user.Goals, user.Onboarded, user.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var age sql.NullInt64
	var gender, activityLevel sql.NullString
	var heightCm, weightKg sql.NullFloat64
	var createdAt int64

	err := row.Scan(&user.ID, &user.Name, &user.Email, &age, &gender,
		&heightCm, &weightKg, &activityLevel, &user.Goals, &user.Onboarded, &createdAt)
	if err != nil {
		return nil, err
	}

	if age.Valid {
		v := int(age.Int64)
		user.Age = &v
	}
	if gender.Valid {
		user.Gender = &gender.String
	}
	if heightCm.Valid {
		user.HeightCm = &heightCm.Float64
	}
	if weightKg.Valid {
		user.WeightKg = &weightKg.Float64
	}
	if activityLevel.Valid {
		user.ActivityLevel = &activityLevel.String
	}
	user.CreatedAt = time.Unix(createdAt, 0)
	return &user, nil
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
