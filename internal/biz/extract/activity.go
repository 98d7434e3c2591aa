package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

// activityRule pairs a pattern with the handler that builds a draft from
// its captures
type activityRule struct {
	re     *regexp.Regexp
	handle func(text string, m []string, out *Drafts)
}

// ActivityExtractor recognizes exercise phrasings
type ActivityExtractor struct {
	rules []activityRule
}

// verb forms mapped to canonical activity types
var activityVerbs = map[string]string{
	"ran":        "running",
	"walked":     "walking",
	"cycled":     "cycling",
	"swam":       "swimming",
	"exercised":  "exercise",
	"worked out": "exercise",
}

// caloriesPerMinute is the burn rate assumed when a message only states
// calories, so duration can be estimated
const caloriesPerMinute = 10

// NewActivityExtractor creates an activity extractor with its rule table
func NewActivityExtractor() *ActivityExtractor {
	e := &ActivityExtractor{}
	e.rules = []activityRule{
		{
			// "ran for 30 minutes", "worked out for 45 minutes"
			re: regexp.MustCompile(`\b(ran|walked|cycled|swam|exercised|worked out) for (\d+) minutes?\b`),
			handle: func(text string, m []string, out *Drafts) {
				minutes, _ := strconv.Atoi(m[2])
				if minutes < 1 {
					return
				}
				intensity := domain.IntensityModerate
				out.Activities = append(out.Activities, domain.ActivityDraft{
					Type:            activityVerbs[m[1]],
					DurationMinutes: minutes,
					Intensity:       &intensity,
					Note:            provenance(text),
				})
			},
		},
		{
			// "cycled for 2 hours"
			re: regexp.MustCompile(`\bcycled for (\d+) hours?\b`),
			handle: func(text string, m []string, out *Drafts) {
				hours, _ := strconv.Atoi(m[1])
				if hours < 1 {
					return
				}
				intensity := domain.IntensityModerate
				out.Activities = append(out.Activities, domain.ActivityDraft{
					Type:            "cycling",
					DurationMinutes: domain.HoursToMinutes(hours),
					Intensity:       &intensity,
					Note:            provenance(text),
				})
			},
		},
		{
			// "30 minutes of yoga"
			re: regexp.MustCompile(`\b(\d+) minutes? of ([a-z][a-z ]*[a-z])`),
			handle: func(text string, m []string, out *Drafts) {
				minutes, _ := strconv.Atoi(m[1])
				if minutes < 1 {
					return
				}
				intensity := domain.IntensityModerate
				out.Activities = append(out.Activities, domain.ActivityDraft{
					Type:            trimTail(m[2]),
					DurationMinutes: minutes,
					Intensity:       &intensity,
					Note:            provenance(text),
				})
			},
		},
		{
			// "burned 300 calories playing basketball"
			re: regexp.MustCompile(`\bburned (\d+) calories (?:playing|doing) (.+)`),
			handle: func(text string, m []string, out *Drafts) {
				calories, _ := strconv.Atoi(m[1])
				if calories < 1 {
					return
				}
				minutes := calories / caloriesPerMinute
				if minutes < 1 {
					minutes = 1
				}
				kind, intensity := classifyActivity(trimTail(m[2]))
				cal := float64(calories)
				out.Activities = append(out.Activities, domain.ActivityDraft{
					Type:            kind,
					DurationMinutes: minutes,
					Calories:        &cal,
					Intensity:       &intensity,
					Note:            provenance(text),
				})
			},
		},
	}
	return e
}

// classifyActivity infers a canonical type and intensity from the free-text
// description of a calorie-only phrase
func classifyActivity(desc string) (string, domain.Intensity) {
	switch {
	case strings.Contains(desc, "basketball"),
		strings.Contains(desc, "tennis"),
		strings.Contains(desc, "soccer"):
		return "sports", domain.IntensityHigh
	case strings.Contains(desc, "walking"):
		return "walking", domain.IntensityLow
	case strings.Contains(desc, "running"):
		return "running", domain.IntensityHigh
	default:
		return "exercise", domain.IntensityModerate
	}
}

// Extract appends one activity draft per matching rule
func (e *ActivityExtractor) Extract(text string, out *Drafts) {
	lower := strings.ToLower(text)
	for _, r := range e.rules {
		if m := r.re.FindStringSubmatch(lower); m != nil {
			r.handle(text, m, out)
		}
	}
}
