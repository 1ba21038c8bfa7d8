package model

// Verdict is the final tri-state classification of a submission
type Verdict string

const (
	VerdictVerified       Verdict = "VERIFIED"
	VerdictReviewRequired Verdict = "REVIEW_REQUIRED"
	VerdictGreenwashed    Verdict = "GREENWASHED"
)

// BreakdownKind tags the variant of a score-breakdown entry
type BreakdownKind string

const (
	BreakdownClaim           BreakdownKind = "claim"
	BreakdownCertPenalty     BreakdownKind = "cert_penalty"
	BreakdownMissingProof    BreakdownKind = "missing_proof"
	BreakdownLinguisticFlags BreakdownKind = "linguistic_flags"
	BreakdownAIRisk          BreakdownKind = "ai_generated_risk"
)

// BreakdownEntry records one contribution to the risk score. Only the fields
// relevant to the entry's kind are set.
type BreakdownEntry struct {
	Kind   BreakdownKind `json:"kind"`
	Source string        `json:"source"` // Human-readable provenance
	Points float64       `json:"points"`

	ClaimType  ClaimType   `json:"claim_type,omitempty"`  // claim
	Phrase     string      `json:"phrase,omitempty"`      // claim
	SDGTarget  string      `json:"sdg_target,omitempty"`  // claim, when a target matched
	CertType   string      `json:"cert_type,omitempty"`   // cert_penalty
	CertStatus CertStatus  `json:"cert_status,omitempty"` // cert_penalty
	FlagCount  int         `json:"flag_count,omitempty"`  // linguistic_flags
	AIRisk     AIRiskLevel `json:"ai_risk,omitempty"`     // ai_generated_risk
}

// SDGTarget describes one impact target a claim maps to
type SDGTarget struct {
	Target   string  `json:"target"`
	Label    string  `json:"label"`
	Severity float64 `json:"severity"`
}

// VisibilityAction is the marketplace consequence of a verdict
type VisibilityAction string

const (
	VisibilityBoost  VisibilityAction = "BOOST"
	VisibilityHold   VisibilityAction = "HOLD"
	VisibilityDemote VisibilityAction = "DEMOTE"
)

// VisibilityImpact is the fixed ranking consequence attached to a verdict
type VisibilityImpact struct {
	Action      VisibilityAction `json:"action"`
	Adjustment  string           `json:"adjustment"`
	Badge       string           `json:"badge"`
	BadgeColor  string           `json:"badge_color"`
	Description string           `json:"description"`
}

// RiskAssessment is the scorer's complete output for one submission
type RiskAssessment struct {
	RiskScore          int              `json:"risk_score"` // 0..100
	Verdict            Verdict          `json:"verdict"`
	ScoreBreakdown     []BreakdownEntry `json:"score_breakdown"`
	SDGTargetsAffected []SDGTarget      `json:"sdg_targets_affected"`
	VisibilityImpact   VisibilityImpact `json:"visibility_impact"`
	TotalClaims        int              `json:"total_claims"`
	TotalCertFailures  int              `json:"total_cert_failures"` // Non-VERIFIED cert results
}
