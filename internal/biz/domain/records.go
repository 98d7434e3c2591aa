package domain

import "time"

// Activity represents a persisted physical activity entry
type Activity struct {
	ID              string
	UserID          string
	Type            string
	DurationMinutes int
	Calories        *float64
	Intensity       *Intensity
	Note            string
	RecordedAt      time.Time
	CreatedAt       time.Time
}

// ActivityDraft is an activity entry before persistence assigns identity
type ActivityDraft struct {
	Type            string
	DurationMinutes int
	Calories        *float64
	Intensity       *Intensity
	Note            string
}

// Nutrition represents a persisted meal entry
type Nutrition struct {
	ID         string
	UserID     string
	Meal       MealType
	Food       string
	Quantity   string
	Calories   *float64
	Note       string
	RecordedAt time.Time
	CreatedAt  time.Time
}

// NutritionDraft is a meal entry before persistence
type NutritionDraft struct {
	Meal     MealType
	Food     string
	Quantity string
	Calories *float64
	Note     string
}

// DefaultQuantity is used when a meal phrase does not state an amount
const DefaultQuantity = "1 serving"

// Hydration represents a persisted fluid intake entry
type Hydration struct {
	ID         string
	UserID     string
	AmountML   int
	Beverage   string
	RecordedAt time.Time
	CreatedAt  time.Time
}

// HydrationDraft is a fluid intake entry before persistence
type HydrationDraft struct {
	AmountML int
	Beverage string
	Note     string
}

// DefaultBeverage is used when a hydration phrase does not name a drink
const DefaultBeverage = "water"

// Sleep represents a persisted sleep entry. DurationHours is always derived
// from the bedtime/wake pair, never input independently.
type Sleep struct {
	ID            string
	UserID        string
	Bedtime       time.Time
	WakeTime      time.Time
	DurationHours float64
	Quality       *SleepQuality
	Note          string
	RecordedAt    time.Time
	CreatedAt     time.Time
}

// SleepDraft is a sleep entry before persistence
type SleepDraft struct {
	Bedtime  time.Time
	WakeTime time.Time
	Quality  *SleepQuality
	Note     string
}

// DurationHours derives the sleep duration from the bedtime/wake pair
func (d SleepDraft) DurationHours() float64 {
	return d.WakeTime.Sub(d.Bedtime).Hours()
}

// RollWake returns the wake time, rolled to the next day when it does not
// fall strictly after bedtime (cross-midnight sleep).
func RollWake(bedtime, wake time.Time) time.Time {
	if !wake.After(bedtime) {
		return wake.AddDate(0, 0, 1)
	}
	return wake
}

// Wellbeing represents a persisted mood/stress/energy check-in. Persisted
// rows always carry all three dimensions.
type Wellbeing struct {
	ID         string
	UserID     string
	Mood       Mood
	Stress     Level
	Energy     Level
	Note       string
	RecordedAt time.Time
	CreatedAt  time.Time
}

// WellbeingDraft keeps each dimension optional through extraction so that
// "not mentioned" stays distinguishable from "reported neutral". At least
// one dimension must be set for a draft to exist.
type WellbeingDraft struct {
	Mood   *Mood
	Stress *Level
	Energy *Level
	Note   string
}

// Levels resolves the draft into the three persisted dimensions, applying
// the middle-value default to anything the message did not mention. This is
// the only place the default is applied.
func (d WellbeingDraft) Levels() (Mood, Level, Level) {
	mood, stress, energy := MoodNeutral, LevelModerate, LevelModerate
	if d.Mood != nil {
		mood = *d.Mood
	}
	if d.Stress != nil {
		stress = *d.Stress
	}
	if d.Energy != nil {
		energy = *d.Energy
	}
	return mood, stress, energy
}

// Recommendation represents a persisted recommendation
type Recommendation struct {
	ID          string
	UserID      string
	Category    Category
	Title       string
	Description string
	Priority    Priority
	Read        bool
	CreatedAt   time.Time
}

// RecommendationDraft is a recommendation before persistence; unread by default
type RecommendationDraft struct {
	Category    Category
	Title       string
	Description string
	Priority    Priority
}
