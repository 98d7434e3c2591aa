package domain

// MealType represents the meal slot of a nutrition entry
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Intensity represents activity intensity
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// SleepQuality represents subjective sleep quality
type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

// Mood is a 5-point ordinal mood scale
type Mood string

const (
	MoodVeryPoor  Mood = "very_poor"
	MoodPoor      Mood = "poor"
	MoodNeutral   Mood = "neutral"
	MoodGood      Mood = "good"
	MoodExcellent Mood = "excellent"
)

// Level is a 5-point ordinal scale shared by stress and energy
type Level string

const (
	LevelVeryLow  Level = "very_low"
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelVeryHigh Level = "very_high"
)

// Priority represents recommendation urgency
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Category represents a recommendation category
type Category string

const (
	CategoryActivity  Category = "activity"
	CategoryNutrition Category = "nutrition"
	CategoryHydration Category = "hydration"
	CategorySleep     Category = "sleep"
	CategoryWellbeing Category = "wellbeing"
	CategoryGeneral   Category = "general"
)
