package domain

import "time"

// User represents a tracked user profile
type User struct {
	ID            string
	Name          string
	Email         string
	Age           *int
	Gender        *string
	HeightCm      *float64
	WeightKg      *float64
	ActivityLevel *string
	Goals         string // empty when the user has not stated goals
	Onboarded     bool
	CreatedAt     time.Time
}

// HasGoals reports whether the profile carries a non-empty goals statement
func (u *User) HasGoals() bool {
	return u.Goals != ""
}

// UserDraft holds the fields needed to create a profile
type UserDraft struct {
	Name          string
	Email         string
	Age           *int
	Gender        *string
	HeightCm      *float64
	WeightKg      *float64
	ActivityLevel *string
	Goals         string
}

// UserPatch describes a partial profile update; nil fields are left unchanged
type UserPatch struct {
	Name          *string
	Age           *int
	Gender        *string
	HeightCm      *float64
	WeightKg      *float64
	ActivityLevel *string
	Goals         *string
	Onboarded     *bool
}
