package usecase

import (
	"fmt"
	"strings"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/extract"
)

// maxDigestItems caps how many recommendations a digest reply shows
const maxDigestItems = 3

// ReplyTemplates contains the composer's configurable copy
type ReplyTemplates struct {
	AckHeader        string
	DigestHeader     string
	HelpIntro        string
	HelpExamples     []string
	RecommendFailure string
	ProcessFailure   string
}

// DefaultReplyTemplates returns the built-in composer copy
func DefaultReplyTemplates() ReplyTemplates {
	return ReplyTemplates{
		AckHeader:    "Got it! I've logged:",
		DigestHeader: "Here are your personalized recommendations:",
		HelpIntro:    "I couldn't find anything to track in that message. Try saying things like:",
		HelpExamples: []string{
			"I ran for 30 minutes this morning",
			"I had a chicken salad for lunch",
			"I drank 2 glasses of water",
			"I slept 8 hours last night",
			"I'm feeling great today",
		},
		RecommendFailure: "Sorry, I encountered an issue generating recommendations. Please try again.",
		ProcessFailure:   "Sorry, something went wrong while processing your message. Please try again.",
	}
}

// Composer renders system replies: a per-item acknowledgement, a
// recommendation digest, or a help message. Pure formatting.
type Composer struct {
	templates ReplyTemplates
}

// NewComposer creates a composer with the given templates
func NewComposer(templates ReplyTemplates) *Composer {
	return &Composer{templates: templates}
}

// Acknowledgement builds a bulleted line-per-item reply for extracted drafts
func (c *Composer) Acknowledgement(drafts *extract.Drafts) string {
	var b strings.Builder
	b.WriteString(c.templates.AckHeader)
	for _, a := range drafts.Activities {
		fmt.Fprintf(&b, "\n• %s for %d minutes", a.Type, a.DurationMinutes)
	}
	for _, n := range drafts.Nutrition {
		fmt.Fprintf(&b, "\n• %s: %s", n.Meal, n.Food)
	}
	for _, h := range drafts.Hydration {
		fmt.Fprintf(&b, "\n• %d ml of %s", h.AmountML, h.Beverage)
	}
	for _, s := range drafts.Sleep {
		fmt.Fprintf(&b, "\n• %.1f hours of sleep", s.DurationHours())
	}
	for _, w := range drafts.Wellbeing {
		fmt.Fprintf(&b, "\n• %s", wellbeingSummary(w))
	}
	return b.String()
}

func wellbeingSummary(w domain.WellbeingDraft) string {
	var parts []string
	if w.Mood != nil {
		parts = append(parts, fmt.Sprintf("mood %s", *w.Mood))
	}
	if w.Stress != nil {
		parts = append(parts, fmt.Sprintf("stress %s", *w.Stress))
	}
	if w.Energy != nil {
		parts = append(parts, fmt.Sprintf("energy %s", *w.Energy))
	}
	return "check-in: " + strings.Join(parts, ", ")
}

// RecommendationDigest builds a numbered top-3 summary of recommendations
func (c *Composer) RecommendationDigest(recs []domain.Recommendation) string {
	var b strings.Builder
	b.WriteString(c.templates.DigestHeader)
	for i, rec := range recs {
		if i == maxDigestItems {
			break
		}
		fmt.Fprintf(&b, "\n%d. %s: %s", i+1, rec.Title, rec.Description)
	}
	return b.String()
}

// Help builds the generic reply listing example phrasings
func (c *Composer) Help() string {
	var b strings.Builder
	b.WriteString(c.templates.HelpIntro)
	for _, example := range c.templates.HelpExamples {
		fmt.Fprintf(&b, "\n• %q", example)
	}
	return b.String()
}

// RecommendFailure is the user-visible reply when recommendation
// generation fails
func (c *Composer) RecommendFailure() string {
	return c.templates.RecommendFailure
}

// ProcessFailure is the user-visible reply when extraction persistence fails
func (c *Composer) ProcessFailure() string {
	return c.templates.ProcessFailure
}
