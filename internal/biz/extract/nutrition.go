package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

type nutritionRule struct {
	re     *regexp.Regexp
	handle func(text, lower string, m []string, out *Drafts)
}

// NutritionExtractor recognizes meal and calorie phrasings
type NutritionExtractor struct {
	rules []nutritionRule
}

// mealSlot canonicalizes meal words; supper is folded into dinner
func mealSlot(word string) domain.MealType {
	switch word {
	case "breakfast":
		return domain.MealBreakfast
	case "lunch":
		return domain.MealLunch
	case "dinner", "supper":
		return domain.MealDinner
	default:
		return domain.MealSnack
	}
}

// NewNutritionExtractor creates a nutrition extractor with its rule table
func NewNutritionExtractor() *NutritionExtractor {
	e := &NutritionExtractor{}
	e.rules = []nutritionRule{
		{
			// "had breakfast with eggs and toast"; the connector word
			// stays in the food description
			re: regexp.MustCompile(`\bhad (breakfast|lunch|dinner|supper) (.+)`),
			handle: func(text, lower string, m []string, out *Drafts) {
				out.Nutrition = append(out.Nutrition, domain.NutritionDraft{
					Meal:     mealSlot(m[1]),
					Food:     trimTail(m[2]),
					Quantity: domain.DefaultQuantity,
					Note:     provenance(text),
				})
			},
		},
		{
			// "ate a chicken salad for lunch"
			re: regexp.MustCompile(`\bate (.+?) for (breakfast|lunch|dinner|supper|snack)\b`),
			handle: func(text, lower string, m []string, out *Drafts) {
				out.Nutrition = append(out.Nutrition, domain.NutritionDraft{
					Meal:     mealSlot(m[2]),
					Food:     trimTail(m[1]),
					Quantity: domain.DefaultQuantity,
					Note:     provenance(text),
				})
			},
		},
		{
			// "breakfast: oatmeal", "dinner was pasta"
			re: regexp.MustCompile(`\b(breakfast|lunch|dinner|supper|snack)(?: was|:) (.+)`),
			handle: func(text, lower string, m []string, out *Drafts) {
				out.Nutrition = append(out.Nutrition, domain.NutritionDraft{
					Meal:     mealSlot(m[1]),
					Food:     trimTail(m[2]),
					Quantity: domain.DefaultQuantity,
					Note:     provenance(text),
				})
			},
		},
		{
			// "had a snack of almonds"
			re: regexp.MustCompile(`\bhad a snack(?: of)? (.+)`),
			handle: func(text, lower string, m []string, out *Drafts) {
				out.Nutrition = append(out.Nutrition, domain.NutritionDraft{
					Meal:     domain.MealSnack,
					Food:     trimTail(m[1]),
					Quantity: domain.DefaultQuantity,
					Note:     provenance(text),
				})
			},
		},
		{
			// "consumed 600 calories"; the meal slot is inferred from any
			// meal keyword elsewhere in the message, defaulting to snack
			re: regexp.MustCompile(`\bconsumed (\d+) calories\b`),
			handle: func(text, lower string, m []string, out *Drafts) {
				calories, _ := strconv.Atoi(m[1])
				if calories < 1 {
					return
				}
				meal := domain.MealSnack
				for _, word := range []string{"breakfast", "lunch", "dinner", "supper"} {
					if strings.Contains(lower, word) {
						meal = mealSlot(word)
						break
					}
				}
				cal := float64(calories)
				out.Nutrition = append(out.Nutrition, domain.NutritionDraft{
					Meal:     meal,
					Food:     "meal",
					Quantity: domain.DefaultQuantity,
					Calories: &cal,
					Note:     provenance(text),
				})
			},
		},
	}
	return e
}

// Extract appends one nutrition draft per matching rule
func (e *NutritionExtractor) Extract(text string, out *Drafts) {
	lower := strings.ToLower(text)
	for _, r := range e.rules {
		if m := r.re.FindStringSubmatch(lower); m != nil {
			r.handle(text, lower, m, out)
		}
	}
}
