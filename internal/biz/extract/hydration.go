package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

type hydrationRule struct {
	re     *regexp.Regexp
	handle func(text string, m []string, out *Drafts)
}

// HydrationExtractor recognizes fluid intake phrasings
type HydrationExtractor struct {
	rules    []hydrationRule
	fallback *regexp.Regexp
}

// NewHydrationExtractor creates a hydration extractor with its rule table
func NewHydrationExtractor() *HydrationExtractor {
	e := &HydrationExtractor{
		// bare "drank water" with no amount; fires only when no other
		// hydration rule produced a draft for this message
		fallback: regexp.MustCompile(`\bdrank (?:some )?water\b`),
	}
	e.rules = []hydrationRule{
		{
			// "drank 500ml of water", "consumed 250 ml water"
			re: regexp.MustCompile(`\b(?:drank|had|consumed) (\d+) ?ml (?:of )?(.+)`),
			handle: func(text string, m []string, out *Drafts) {
				amount, _ := strconv.Atoi(m[1])
				if amount < 1 {
					return
				}
				out.Hydration = append(out.Hydration, domain.HydrationDraft{
					AmountML: amount,
					Beverage: beverageOrDefault(m[2]),
					Note:     provenance(text),
				})
			},
		},
		{
			// "drank 2 liters of water", bare "1.5 liters of juice";
			// a single rule so the verb and bare forms cannot both fire on
			// the same phrase
			re: regexp.MustCompile(`\b(?:(?:drank|had|consumed) )?(\d+(?:\.\d+)?) liters? (?:of )?(.+)`),
			handle: func(text string, m []string, out *Drafts) {
				liters, _ := strconv.ParseFloat(m[1], 64)
				amount := domain.LitersToMilliliters(liters)
				if amount < 1 {
					return
				}
				out.Hydration = append(out.Hydration, domain.HydrationDraft{
					AmountML: amount,
					Beverage: beverageOrDefault(m[2]),
					Note:     provenance(text),
				})
			},
		},
		{
			// "drank 3 glasses of water"
			re: regexp.MustCompile(`\b(\d+) glass(?:es)? of (.+)`),
			handle: func(text string, m []string, out *Drafts) {
				glasses, _ := strconv.Atoi(m[1])
				if glasses < 1 {
					return
				}
				out.Hydration = append(out.Hydration, domain.HydrationDraft{
					AmountML: domain.GlassesToMilliliters(glasses),
					Beverage: beverageOrDefault(m[2]),
					Note:     provenance(text),
				})
			},
		},
	}
	return e
}

func beverageOrDefault(s string) string {
	if b := trimTail(s); b != "" {
		return b
	}
	return domain.DefaultBeverage
}

// Extract appends one hydration draft per matching rule, then tries the
// bare-water fallback only if nothing else matched
func (e *HydrationExtractor) Extract(text string, out *Drafts) {
	lower := strings.ToLower(text)
	before := len(out.Hydration)
	for _, r := range e.rules {
		if m := r.re.FindStringSubmatch(lower); m != nil {
			r.handle(text, m, out)
		}
	}
	if len(out.Hydration) == before && e.fallback.MatchString(lower) {
		out.Hydration = append(out.Hydration, domain.HydrationDraft{
			AmountML: domain.GlassMilliliters,
			Beverage: domain.DefaultBeverage,
			Note:     provenance(text),
		})
	}
}
