package extract

import (
	"testing"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

func extractWellbeing(t *testing.T, text string) []domain.WellbeingDraft {
	t.Helper()
	out := &Drafts{}
	NewWellbeingExtractor().Extract(text, out)
	return out.Wellbeing
}

func TestWellbeingExtractor_MoodOnly_LeavesOtherDimensionsUnset(t *testing.T) {
	drafts := extractWellbeing(t, "I am feeling good today")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	d := drafts[0]
	if d.Mood == nil || *d.Mood != domain.MoodGood {
		t.Errorf("mood = %v, want good", d.Mood)
	}
	if d.Stress != nil || d.Energy != nil {
		t.Error("unmatched dimensions must stay unset on the draft")
	}

	// the middle-value default only appears at the persistence boundary
	mood, stress, energy := d.Levels()
	if mood != domain.MoodGood || stress != domain.LevelModerate || energy != domain.LevelModerate {
		t.Errorf("resolved levels = %s/%s/%s, want good/moderate/moderate", mood, stress, energy)
	}
}

func TestWellbeingExtractor_MoodKeywords(t *testing.T) {
	cases := []struct {
		text string
		want domain.Mood
	}{
		{"feeling terrible today", domain.MoodVeryPoor},
		{"I'm feeling sad", domain.MoodPoor},
		{"feeling okay I guess", domain.MoodNeutral},
		{"I am so happy", domain.MoodGood},
		{"feeling amazing right now", domain.MoodExcellent},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			drafts := extractWellbeing(t, tc.text)
			if len(drafts) != 1 {
				t.Fatalf("expected 1 draft, got %d", len(drafts))
			}
			if drafts[0].Mood == nil || *drafts[0].Mood != tc.want {
				t.Errorf("mood = %v, want %s", drafts[0].Mood, tc.want)
			}
		})
	}
}

func TestWellbeingExtractor_StressKeywords(t *testing.T) {
	cases := []struct {
		text string
		want domain.Level
	}{
		{"I'm completely stressed out", domain.LevelVeryHigh},
		{"been anxious all day", domain.LevelHigh},
		{"feeling relaxed after the walk", domain.LevelLow},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			drafts := extractWellbeing(t, tc.text)
			if len(drafts) != 1 {
				t.Fatalf("expected 1 draft, got %d", len(drafts))
			}
			if drafts[0].Stress == nil || *drafts[0].Stress != tc.want {
				t.Errorf("stress = %v, want %s", drafts[0].Stress, tc.want)
			}
		})
	}
}

func TestWellbeingExtractor_EnergyKeywords(t *testing.T) {
	cases := []struct {
		text string
		want domain.Level
	}{
		{"I'm exhausted", domain.LevelVeryLow},
		{"feeling tired this afternoon", domain.LevelLow},
		{"feeling energized after the gym", domain.LevelHigh},
		{"full of energy this morning", domain.LevelVeryHigh},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			drafts := extractWellbeing(t, tc.text)
			if len(drafts) != 1 {
				t.Fatalf("expected 1 draft, got %d", len(drafts))
			}
			if drafts[0].Energy == nil || *drafts[0].Energy != tc.want {
				t.Errorf("energy = %v, want %s", drafts[0].Energy, tc.want)
			}
		})
	}
}

func TestWellbeingExtractor_DirectLevelPhrasing(t *testing.T) {
	drafts := extractWellbeing(t, "my stress level is very high and energy level is low")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	d := drafts[0]
	if d.Stress == nil || *d.Stress != domain.LevelVeryHigh {
		t.Errorf("stress = %v, want very_high", d.Stress)
	}
	if d.Energy == nil || *d.Energy != domain.LevelLow {
		t.Errorf("energy = %v, want low", d.Energy)
	}
}

func TestWellbeingExtractor_CombinedDimensionsSingleDraft(t *testing.T) {
	drafts := extractWellbeing(t, "feeling happy but tired and a little anxious")

	if len(drafts) != 1 {
		t.Fatalf("all dimensions should share one draft, got %d", len(drafts))
	}
	d := drafts[0]
	if d.Mood == nil || d.Stress == nil || d.Energy == nil {
		t.Errorf("expected all three dimensions set, got %+v", d)
	}
}

func TestWellbeingExtractor_NoMatchEmitsNothing(t *testing.T) {
	if drafts := extractWellbeing(t, "I ran for 30 minutes"); len(drafts) != 0 {
		t.Errorf("expected no draft without an explicit dimension, got %d", len(drafts))
	}
}
