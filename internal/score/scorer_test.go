package score

import (
	"testing"

	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/refdata"
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	data, err := refdata.Default()
	if err != nil {
		t.Fatalf("Expected default reference data to load, got %v", err)
	}
	return NewScorer(data.SDGTargets)
}

func TestScorer_EmptyInput(t *testing.T) {
	s := newTestScorer(t)

	result := s.Calculate(nil, nil, nil, false, model.AIRiskAssessment{Risk: model.AIRiskLow})

	if result.RiskScore != 0 {
		t.Errorf("Expected score 0, got %d", result.RiskScore)
	}
	if result.Verdict != model.VerdictVerified {
		t.Errorf("Expected VERIFIED, got %s", result.Verdict)
	}
	if len(result.ScoreBreakdown) != 0 {
		t.Errorf("Expected empty breakdown, got %d entries", len(result.ScoreBreakdown))
	}
}

func TestScorer_ClaimWeightWithSDGMultiplier(t *testing.T) {
	s := newTestScorer(t)

	// "sustainably sourced" is an SDG 15.2 keyword: 30 * 1.4 = 42
	claims := []model.Claim{
		{Phrase: "sustainably sourced", Type: model.ClaimTypeMisleading, Confidence: 0.85},
	}
	result := s.Calculate(claims, nil, nil, true, model.AIRiskAssessment{Risk: model.AIRiskLow})

	if result.RiskScore != 42 {
		t.Errorf("Expected score 42 (30 * 1.4), got %d", result.RiskScore)
	}
	if len(result.ScoreBreakdown) != 1 {
		t.Fatalf("Expected 1 breakdown entry, got %d", len(result.ScoreBreakdown))
	}
	entry := result.ScoreBreakdown[0]
	if entry.Kind != model.BreakdownClaim {
		t.Errorf("Expected claim entry, got %s", entry.Kind)
	}
	if entry.SDGTarget != "15.2" {
		t.Errorf("Expected SDG target 15.2, got %q", entry.SDGTarget)
	}
	if len(result.SDGTargetsAffected) != 1 || result.SDGTargetsAffected[0].Target != "15.2" {
		t.Errorf("Expected affected target 15.2, got %v", result.SDGTargetsAffected)
	}
}

func TestScorer_SDGTargetDeduplicated(t *testing.T) {
	s := newTestScorer(t)

	claims := []model.Claim{
		{Phrase: "sustainably sourced", Type: model.ClaimTypeMisleading},
		{Phrase: "forest friendly", Type: model.ClaimTypeVague},
	}
	result := s.Calculate(claims, nil, nil, true, model.AIRiskAssessment{Risk: model.AIRiskLow})

	if len(result.SDGTargetsAffected) != 1 {
		t.Errorf("Expected one deduplicated SDG target, got %v", result.SDGTargetsAffected)
	}
}

func TestScorer_UnmatchedClaimDefaultMultiplier(t *testing.T) {
	s := newTestScorer(t)

	claims := []model.Claim{
		{Phrase: "100% eco-friendly", Type: model.ClaimTypeAbsolute},
	}
	result := s.Calculate(claims, nil, nil, true, model.AIRiskAssessment{Risk: model.AIRiskLow})

	if result.RiskScore != 40 {
		t.Errorf("Expected plain weight 40 without SDG match, got %d", result.RiskScore)
	}
	if len(result.SDGTargetsAffected) != 0 {
		t.Errorf("Expected no affected targets, got %v", result.SDGTargetsAffected)
	}
}

func TestScorer_CertPenalties(t *testing.T) {
	s := newTestScorer(t)

	certs := []model.CertVerificationResult{
		{Cert: "FSC", Status: model.CertStatusNotFound},
		{Cert: "PEFC", Status: model.CertStatusExpired},
		{Cert: "CITES", Status: model.CertStatusScopeMismatch},
		{Cert: "Carbon Trust", Status: model.CertStatusVerified},
	}
	result := s.Calculate(nil, certs, nil, true, model.AIRiskAssessment{Risk: model.AIRiskLow})

	// 25 + 20 + 15, verified adds nothing
	if result.RiskScore != 60 {
		t.Errorf("Expected score 60, got %d", result.RiskScore)
	}
	if len(result.ScoreBreakdown) != 3 {
		t.Errorf("Expected 3 penalty entries, got %d", len(result.ScoreBreakdown))
	}
	if result.TotalCertFailures != 3 {
		t.Errorf("Expected 3 cert failures, got %d", result.TotalCertFailures)
	}
}

func TestScorer_MissingProofOnlyWithClaims(t *testing.T) {
	s := newTestScorer(t)

	// No claims: no missing-proof penalty even without markers
	noClaims := s.Calculate(nil, nil, nil, false, model.AIRiskAssessment{Risk: model.AIRiskLow})
	if noClaims.RiskScore != 0 {
		t.Errorf("Expected 0 without claims, got %d", noClaims.RiskScore)
	}

	claims := []model.Claim{{Phrase: "eco", Type: model.ClaimTypeVague}}
	withClaims := s.Calculate(claims, nil, nil, false, model.AIRiskAssessment{Risk: model.AIRiskLow})
	proofEntry := false
	for _, e := range withClaims.ScoreBreakdown {
		if e.Kind == model.BreakdownMissingProof {
			proofEntry = true
			if e.Points != 10 {
				t.Errorf("Expected missing-proof penalty 10, got %v", e.Points)
			}
		}
	}
	if !proofEntry {
		t.Error("Expected a missing-proof breakdown entry")
	}
}

func TestScorer_RedFlagPenaltyCapped(t *testing.T) {
	s := newTestScorer(t)

	flags := make([]model.RedFlag, 5)
	result := s.Calculate(nil, nil, flags, true, model.AIRiskAssessment{Risk: model.AIRiskLow})

	// min(5*5, 20) = 20
	if result.RiskScore != 20 {
		t.Errorf("Expected capped penalty 20, got %d", result.RiskScore)
	}
	if result.ScoreBreakdown[0].FlagCount != 5 {
		t.Errorf("Expected flag count 5, got %d", result.ScoreBreakdown[0].FlagCount)
	}
}

func TestScorer_AIRiskBoost(t *testing.T) {
	s := newTestScorer(t)

	high := s.Calculate(nil, nil, nil, true, model.AIRiskAssessment{Risk: model.AIRiskHigh})
	if high.RiskScore != 15 {
		t.Errorf("Expected high AI boost 15, got %d", high.RiskScore)
	}
	medium := s.Calculate(nil, nil, nil, true, model.AIRiskAssessment{Risk: model.AIRiskMedium})
	if medium.RiskScore != 8 {
		t.Errorf("Expected medium AI boost 8, got %d", medium.RiskScore)
	}
	low := s.Calculate(nil, nil, nil, true, model.AIRiskAssessment{Risk: model.AIRiskLow})
	if low.RiskScore != 0 {
		t.Errorf("Expected no boost for low risk, got %d", low.RiskScore)
	}
}

func TestScorer_ScoreClamped(t *testing.T) {
	s := newTestScorer(t)

	claims := []model.Claim{
		{Phrase: "100% eco-friendly", Type: model.ClaimTypeAbsolute},
		{Phrase: "zero emissions", Type: model.ClaimTypeAbsolute},
		{Phrase: "sustainably sourced", Type: model.ClaimTypeMisleading},
	}
	certs := []model.CertVerificationResult{
		{Cert: "FSC", Status: model.CertStatusNotFound},
		{Cert: "PEFC", Status: model.CertStatusNotFound},
	}
	result := s.Calculate(claims, certs, nil, false, model.AIRiskAssessment{Risk: model.AIRiskHigh})

	if result.RiskScore != 100 {
		t.Errorf("Expected score clamped to 100, got %d", result.RiskScore)
	}
	if result.Verdict != model.VerdictGreenwashed {
		t.Errorf("Expected GREENWASHED, got %s", result.Verdict)
	}
}

func TestClassifyVerdict_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  model.Verdict
	}{
		{0, model.VerdictVerified},
		{19, model.VerdictVerified},
		{20, model.VerdictReviewRequired},
		{49, model.VerdictReviewRequired},
		{50, model.VerdictGreenwashed},
		{100, model.VerdictGreenwashed},
	}
	for _, tt := range tests {
		if got := classifyVerdict(tt.score); got != tt.want {
			t.Errorf("classifyVerdict(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestVisibilityImpact_PerBucket(t *testing.T) {
	boost := visibilityImpact(10)
	if boost.Action != model.VisibilityBoost || boost.Badge != "Verified Green Product" {
		t.Errorf("Expected boost with verified badge, got %+v", boost)
	}
	hold := visibilityImpact(35)
	if hold.Action != model.VisibilityHold || hold.Badge != "Under Review" {
		t.Errorf("Expected hold with review badge, got %+v", hold)
	}
	demote := visibilityImpact(80)
	if demote.Action != model.VisibilityDemote || demote.Badge != "Unverified Claims" {
		t.Errorf("Expected demote with unverified badge, got %+v", demote)
	}
}
