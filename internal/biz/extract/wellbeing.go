package extract

import (
	"regexp"
	"strings"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

// WellbeingExtractor recognizes mood, stress, and energy mentions. The
// three groups are evaluated independently; a single combined draft is
// emitted when at least one group matched. Unmatched dimensions stay unset
// on the draft; the middle-value default is applied at persistence time.
type WellbeingExtractor struct {
	moods    []moodKeyword
	stresses []levelKeyword
	energies []levelKeyword
}

type moodKeyword struct {
	re    *regexp.Regexp
	level domain.Mood
}

type levelKeyword struct {
	re    *regexp.Regexp
	level domain.Level
}

// NewWellbeingExtractor creates a wellbeing extractor with its keyword
// tables. Within a group the first matching entry wins, so multi-word
// keywords come before their substrings.
func NewWellbeingExtractor() *WellbeingExtractor {
	return &WellbeingExtractor{
		moods: []moodKeyword{
			{regexp.MustCompile(`\bmood (?:is|was) (very[ _]poor|poor|neutral|good|excellent)\b`), ""}, // level taken from capture
			{moodRe(`terrible|awful`), domain.MoodVeryPoor},
			{moodRe(`bad|sad|down`), domain.MoodPoor},
			{moodRe(`okay|fine|fair|neutral`), domain.MoodNeutral},
			{moodRe(`great|happy|good`), domain.MoodGood},
			{moodRe(`amazing|fantastic|excellent`), domain.MoodExcellent},
		},
		stresses: []levelKeyword{
			{regexp.MustCompile(`\bstress(?: level)? (?:is|was) (very[ _]low|very[ _]high|low|moderate|high)\b`), ""},
			{regexp.MustCompile(`\b(?:stressed out|very stressed|overwhelmed)\b`), domain.LevelVeryHigh},
			{regexp.MustCompile(`\b(?:stressed|anxious)\b`), domain.LevelHigh},
			{regexp.MustCompile(`\b(?:a bit of stress|some stress)\b`), domain.LevelModerate},
			{regexp.MustCompile(`\b(?:relaxed|calm)\b`), domain.LevelLow},
			{regexp.MustCompile(`\b(?:stress[- ]free|no stress)\b`), domain.LevelVeryLow},
		},
		energies: []levelKeyword{
			{regexp.MustCompile(`\benergy(?: level)? (?:is|was) (very[ _]low|very[ _]high|low|moderate|high)\b`), ""},
			{regexp.MustCompile(`\b(?:exhausted|drained|no energy)\b`), domain.LevelVeryLow},
			{regexp.MustCompile(`\b(?:tired|sluggish|low energy)\b`), domain.LevelLow},
			{regexp.MustCompile(`\b(?:full of energy|pumped)\b`), domain.LevelVeryHigh},
			{regexp.MustCompile(`\b(?:energetic|energized)\b`), domain.LevelHigh},
		},
	}
}

// moodRe anchors mood keywords to a feeling context so ordinary words like
// "down" or "fine" elsewhere in a sentence do not trigger a check-in
func moodRe(words string) *regexp.Regexp {
	return regexp.MustCompile(`\b(?:feel(?:ing)?|felt|i am|i'm) (?:really |very |so |pretty )?(` + words + `)\b`)
}

// normalizeLevel maps a spoken "very high" capture onto the stored scale value
func normalizeLevel(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}

// Extract emits a single combined draft when at least one dimension matched
func (e *WellbeingExtractor) Extract(text string, out *Drafts) {
	lower := strings.ToLower(text)

	draft := domain.WellbeingDraft{Note: provenance(text)}
	matched := false

	for _, k := range e.moods {
		m := k.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		level := k.level
		if level == "" {
			level = domain.Mood(normalizeLevel(m[1]))
		}
		draft.Mood = &level
		matched = true
		break
	}
	for _, k := range e.stresses {
		m := k.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		level := k.level
		if level == "" {
			level = domain.Level(normalizeLevel(m[1]))
		}
		draft.Stress = &level
		matched = true
		break
	}
	for _, k := range e.energies {
		m := k.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		level := k.level
		if level == "" {
			level = domain.Level(normalizeLevel(m[1]))
		}
		draft.Energy = &level
		matched = true
		break
	}

	if matched {
		out.Wellbeing = append(out.Wellbeing, draft)
	}
}
