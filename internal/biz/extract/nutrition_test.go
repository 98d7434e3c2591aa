package extract

import (
	"testing"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

func extractNutrition(t *testing.T, text string) []domain.NutritionDraft {
	t.Helper()
	out := &Drafts{}
	NewNutritionExtractor().Extract(text, out)
	return out.Nutrition
}

func TestNutritionExtractor_MealFirst_KeepsConnectorWord(t *testing.T) {
	drafts := extractNutrition(t, "I had breakfast with eggs and toast")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	d := drafts[0]
	if d.Meal != domain.MealBreakfast {
		t.Errorf("meal = %s, want breakfast", d.Meal)
	}
	// the connector word stays in the food description
	if d.Food != "with eggs and toast" {
		t.Errorf("food = %q, want %q", d.Food, "with eggs and toast")
	}
	if d.Quantity != domain.DefaultQuantity {
		t.Errorf("quantity = %q, want %q", d.Quantity, domain.DefaultQuantity)
	}
}

func TestNutritionExtractor_FoodThenMeal(t *testing.T) {
	drafts := extractNutrition(t, "I ate a chicken salad for lunch")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Meal != domain.MealLunch {
		t.Errorf("meal = %s, want lunch", drafts[0].Meal)
	}
	if drafts[0].Food != "a chicken salad" {
		t.Errorf("food = %q, want %q", drafts[0].Food, "a chicken salad")
	}
}

func TestNutritionExtractor_MealColonForms(t *testing.T) {
	cases := []struct {
		text     string
		wantMeal domain.MealType
		wantFood string
	}{
		{"breakfast: oatmeal and berries", domain.MealBreakfast, "oatmeal and berries"},
		{"dinner was grilled salmon", domain.MealDinner, "grilled salmon"},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			drafts := extractNutrition(t, tc.text)
			if len(drafts) != 1 {
				t.Fatalf("expected 1 draft, got %d", len(drafts))
			}
			if drafts[0].Meal != tc.wantMeal {
				t.Errorf("meal = %s, want %s", drafts[0].Meal, tc.wantMeal)
			}
			if drafts[0].Food != tc.wantFood {
				t.Errorf("food = %q, want %q", drafts[0].Food, tc.wantFood)
			}
		})
	}
}

func TestNutritionExtractor_SupperMapsToDinner(t *testing.T) {
	drafts := extractNutrition(t, "had supper of stew")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Meal != domain.MealDinner {
		t.Errorf("meal = %s, want dinner", drafts[0].Meal)
	}
}

func TestNutritionExtractor_SnackVariant(t *testing.T) {
	drafts := extractNutrition(t, "I had a snack of almonds")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Meal != domain.MealSnack {
		t.Errorf("meal = %s, want snack", drafts[0].Meal)
	}
	if drafts[0].Food != "almonds" {
		t.Errorf("food = %q, want almonds", drafts[0].Food)
	}
}

func TestNutritionExtractor_CalorieOnly_DefaultsToSnack(t *testing.T) {
	drafts := extractNutrition(t, "consumed 600 calories")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	d := drafts[0]
	if d.Meal != domain.MealSnack {
		t.Errorf("meal = %s, want snack", d.Meal)
	}
	if d.Calories == nil || *d.Calories != 600 {
		t.Errorf("calories = %v, want 600", d.Calories)
	}
}

func TestNutritionExtractor_CalorieOnly_InfersMealKeyword(t *testing.T) {
	drafts := extractNutrition(t, "consumed 450 calories at lunch")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Meal != domain.MealLunch {
		t.Errorf("meal = %s, want lunch", drafts[0].Meal)
	}
}
