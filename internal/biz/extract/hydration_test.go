package extract

import (
	"testing"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

func extractHydration(t *testing.T, text string) []domain.HydrationDraft {
	t.Helper()
	out := &Drafts{}
	NewHydrationExtractor().Extract(text, out)
	return out.Hydration
}

func TestHydrationExtractor_Milliliters(t *testing.T) {
	drafts := extractHydration(t, "I drank 500ml of water")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].AmountML != 500 {
		t.Errorf("amount = %d, want 500", drafts[0].AmountML)
	}
	if drafts[0].Beverage != "water" {
		t.Errorf("beverage = %q, want water", drafts[0].Beverage)
	}
}

func TestHydrationExtractor_MillilitersSpacedVerbVariants(t *testing.T) {
	cases := []struct {
		text       string
		wantAmount int
	}{
		{"had 250 ml of green tea", 250},
		{"consumed 330 ml water", 330},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			drafts := extractHydration(t, tc.text)
			if len(drafts) != 1 {
				t.Fatalf("expected 1 draft, got %d", len(drafts))
			}
			if drafts[0].AmountML != tc.wantAmount {
				t.Errorf("amount = %d, want %d", drafts[0].AmountML, tc.wantAmount)
			}
		})
	}
}

func TestHydrationExtractor_Liters(t *testing.T) {
	drafts := extractHydration(t, "drank 2 liters of water today")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d (liter phrase must produce a single draft)", len(drafts))
	}
	if drafts[0].AmountML != 2000 {
		t.Errorf("amount = %d, want 2000", drafts[0].AmountML)
	}
}

func TestHydrationExtractor_BareLiters(t *testing.T) {
	drafts := extractHydration(t, "1.5 liters of juice with dinner")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].AmountML != 1500 {
		t.Errorf("amount = %d, want 1500", drafts[0].AmountML)
	}
}

func TestHydrationExtractor_Glasses(t *testing.T) {
	drafts := extractHydration(t, "I drank 3 glasses of water")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].AmountML != 750 {
		t.Errorf("amount = %d, want 750", drafts[0].AmountML)
	}
}

func TestHydrationExtractor_BareWaterFallback(t *testing.T) {
	drafts := extractHydration(t, "I drank water after the run")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 fallback draft, got %d", len(drafts))
	}
	if drafts[0].AmountML != domain.GlassMilliliters {
		t.Errorf("amount = %d, want %d", drafts[0].AmountML, domain.GlassMilliliters)
	}
	if drafts[0].Beverage != domain.DefaultBeverage {
		t.Errorf("beverage = %q, want %q", drafts[0].Beverage, domain.DefaultBeverage)
	}
}

func TestHydrationExtractor_FallbackSuppressedByExplicitAmount(t *testing.T) {
	drafts := extractHydration(t, "I drank water and also had 500 ml of juice")

	if len(drafts) != 1 {
		t.Fatalf("expected only the explicit draft, got %d", len(drafts))
	}
	if drafts[0].AmountML != 500 {
		t.Errorf("amount = %d, want 500", drafts[0].AmountML)
	}
	if drafts[0].Beverage != "juice" {
		t.Errorf("beverage = %q, want juice", drafts[0].Beverage)
	}
}
