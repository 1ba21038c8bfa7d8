package extract

import (
	"strings"
	"testing"

	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/refdata"
)

func newTestExtractor(t *testing.T) *ClaimExtractor {
	t.Helper()
	data, err := refdata.Default()
	if err != nil {
		t.Fatalf("Expected default reference data to load, got %v", err)
	}
	return NewClaimExtractor(data.Taxonomy)
}

func TestClaimExtractor_BasicExtraction(t *testing.T) {
	extractor := newTestExtractor(t)

	text := "Bamboo Utensil Set. Our product is 100% eco-friendly and sustainably sourced from managed forests."

	result := extractor.Extract(text)

	if result.ClaimCount != len(result.Claims) {
		t.Errorf("Expected ClaimCount %d to match claims length %d", result.ClaimCount, len(result.Claims))
	}
	if len(result.Claims) == 0 {
		t.Fatal("Expected at least one claim")
	}

	foundAbsolute := false
	foundMisleading := false
	for _, claim := range result.Claims {
		if claim.Phrase == "100% eco-friendly" {
			foundAbsolute = true
			if claim.Type != model.ClaimTypeAbsolute {
				t.Errorf("Expected '100%% eco-friendly' to be absolute, got %s", claim.Type)
			}
		}
		if claim.Phrase == "sustainably sourced" {
			foundMisleading = true
			if claim.Type != model.ClaimTypeMisleading {
				t.Errorf("Expected 'sustainably sourced' to be misleading, got %s", claim.Type)
			}
		}
	}
	if !foundAbsolute {
		t.Error("Expected to find claim '100% eco-friendly'")
	}
	if !foundMisleading {
		t.Error("Expected to find claim 'sustainably sourced'")
	}
}

func TestClaimExtractor_PositionMatchesText(t *testing.T) {
	extractor := newTestExtractor(t)

	text := "Plain intro text without any eco words at the start. This product is 100% eco-friendly."
	result := extractor.Extract(text)

	for _, claim := range result.Claims {
		end := claim.Position + len(claim.Phrase)
		if end > len(text) {
			t.Fatalf("Claim %q position %d out of range", claim.Phrase, claim.Position)
		}
		got := strings.ToLower(text[claim.Position:end])
		if got != strings.ToLower(claim.Phrase) {
			t.Errorf("Expected text at position %d to be %q, got %q", claim.Position, claim.Phrase, got)
		}
	}
}

func TestClaimExtractor_TitleBoost(t *testing.T) {
	extractor := newTestExtractor(t)

	// Same phrase early and then in a text where it appears late
	early := extractor.Extract("100% eco-friendly bamboo utensils for your kitchen")
	late := extractor.Extract(strings.Repeat("Plain filler words here. ", 4) + "This set is 100% eco-friendly.")

	var earlyClaim, lateClaim *model.Claim
	for i := range early.Claims {
		if early.Claims[i].Phrase == "100% eco-friendly" {
			earlyClaim = &early.Claims[i]
		}
	}
	for i := range late.Claims {
		if late.Claims[i].Phrase == "100% eco-friendly" {
			lateClaim = &late.Claims[i]
		}
	}
	if earlyClaim == nil || lateClaim == nil {
		t.Fatal("Expected '100% eco-friendly' in both texts")
	}

	if earlyClaim.Confidence != 0.97 {
		t.Errorf("Expected boosted confidence 0.97, got %v", earlyClaim.Confidence)
	}
	if lateClaim.Confidence != 0.92 {
		t.Errorf("Expected base confidence 0.92, got %v", lateClaim.Confidence)
	}
}

func TestClaimExtractor_ConfidenceCapped(t *testing.T) {
	// A custom taxonomy with a base above the cap once boosted
	taxonomy := []refdata.TaxonomyGroup{
		{Type: model.ClaimTypeAbsolute, Phrases: []string{"zero emissions"}},
	}
	extractor := NewClaimExtractor(taxonomy)

	result := extractor.Extract("zero emissions delivery on all orders")
	if len(result.Claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(result.Claims))
	}
	if result.Claims[0].Confidence > 0.99 {
		t.Errorf("Expected confidence capped at 0.99, got %v", result.Claims[0].Confidence)
	}
}

func TestClaimExtractor_DuplicatePhraseReportedOnce(t *testing.T) {
	extractor := newTestExtractor(t)

	text := "Sustainable materials. Sustainable design. Sustainable everything."
	result := extractor.Extract(text)

	count := 0
	for _, claim := range result.Claims {
		if claim.Phrase == "sustainable" {
			count++
			if claim.Position != 0 {
				t.Errorf("Expected first occurrence at position 0, got %d", claim.Position)
			}
		}
	}
	if count != 1 {
		t.Errorf("Expected 'sustainable' reported once, got %d times", count)
	}
}

func TestClaimExtractor_ContextWindow(t *testing.T) {
	extractor := newTestExtractor(t)

	prefix := strings.Repeat("x", 60) + " "
	text := prefix + "100% eco-friendly " + strings.Repeat("y", 60)
	result := extractor.Extract(text)

	var claim *model.Claim
	for i := range result.Claims {
		if result.Claims[i].Phrase == "100% eco-friendly" {
			claim = &result.Claims[i]
		}
	}
	if claim == nil {
		t.Fatal("Expected to find '100% eco-friendly'")
	}

	if !strings.HasPrefix(claim.Context, "...") {
		t.Errorf("Expected leading ellipsis on truncated context, got %q", claim.Context)
	}
	if !strings.HasSuffix(claim.Context, "...") {
		t.Errorf("Expected trailing ellipsis, got %q", claim.Context)
	}
	if !strings.Contains(strings.ToLower(claim.Context), "100% eco-friendly") {
		t.Errorf("Expected context to contain the phrase, got %q", claim.Context)
	}
}

func TestClaimExtractor_ContextAtTextStart(t *testing.T) {
	extractor := newTestExtractor(t)

	result := extractor.Extract("100% eco-friendly bamboo")
	if len(result.Claims) == 0 {
		t.Fatal("Expected at least one claim")
	}
	claim := result.Claims[0]
	if strings.HasPrefix(claim.Context, "...") {
		t.Errorf("Expected no leading ellipsis at text start, got %q", claim.Context)
	}
}

func TestClaimExtractor_EmptyText(t *testing.T) {
	extractor := newTestExtractor(t)

	result := extractor.Extract("")
	if len(result.Claims) != 0 {
		t.Errorf("Expected no claims for empty text, got %d", len(result.Claims))
	}
	if len(result.RedFlags) != 0 {
		t.Errorf("Expected no red flags for empty text, got %d", len(result.RedFlags))
	}
	if result.HasProofMarkers {
		t.Error("Expected no proof markers for empty text")
	}
	if result.AIRisk.Risk != model.AIRiskLow || result.AIRisk.Score != 0 {
		t.Errorf("Expected low/0 AI risk for empty text, got %s/%d", result.AIRisk.Risk, result.AIRisk.Score)
	}
}

func TestClaimExtractor_CaseInsensitive(t *testing.T) {
	extractor := newTestExtractor(t)

	result := extractor.Extract("SUSTAINABLY SOURCED timber from our partners")
	found := false
	for _, claim := range result.Claims {
		if claim.Phrase == "sustainably sourced" {
			found = true
		}
	}
	if !found {
		t.Error("Expected case-insensitive match for 'sustainably sourced'")
	}
}
