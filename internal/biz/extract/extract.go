// Package extract turns free-form wellness messages into draft records.
//
// Each domain extractor holds an ordered list of (pattern, handler) rules.
// Rules are evaluated top-to-bottom and each rule that matches produces a
// draft independently; extractors never short-circuit each other, so one
// message can yield records in several domains at once.
package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

// Drafts collects everything extracted from a single message
type Drafts struct {
	Activities []domain.ActivityDraft
	Nutrition  []domain.NutritionDraft
	Hydration  []domain.HydrationDraft
	Sleep      []domain.SleepDraft
	Wellbeing  []domain.WellbeingDraft
}

// Empty reports whether nothing was extracted
func (d *Drafts) Empty() bool {
	return d.Count() == 0
}

// Count returns the total number of drafts across all domains
func (d *Drafts) Count() int {
	return len(d.Activities) + len(d.Nutrition) + len(d.Hydration) +
		len(d.Sleep) + len(d.Wellbeing)
}

// Extractor scans message text and appends any drafts it recognizes
type Extractor interface {
	Extract(text string, out *Drafts)
}

// All returns the five domain extractors in their standard order. The clock
// is used by the sleep extractor to anchor duration-only phrasings; nil
// means time.Now.
func All(now func() time.Time) []Extractor {
	if now == nil {
		now = time.Now
	}
	return []Extractor{
		NewActivityExtractor(),
		NewNutritionExtractor(),
		NewHydrationExtractor(),
		NewSleepExtractor(now),
		NewWellbeingExtractor(),
	}
}

// Run applies every extractor to the text and returns the combined drafts
func Run(extractors []Extractor, text string) *Drafts {
	out := &Drafts{}
	for _, e := range extractors {
		e.Extract(text, out)
	}
	return out
}

// provenance builds the note embedded in every draft, keeping the verbatim
// source text
func provenance(text string) string {
	return fmt.Sprintf("Extracted from: %q", text)
}

// trimTail strips surrounding whitespace and trailing punctuation from a
// captured phrase
func trimTail(s string) string {
	return strings.Trim(s, " \t.,!?")
}
