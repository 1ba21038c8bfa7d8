package model

// Claim represents an environmental marketing claim detected in product text
type Claim struct {
	Phrase     string    `json:"phrase"`            // The matched taxonomy phrase
	Type       ClaimType `json:"type"`              // absolute, misleading, vague
	Confidence float64   `json:"confidence"`        // 0..1, rounded to 2 decimals
	Position   int       `json:"position"`          // First-occurrence offset in source text
	Context    string    `json:"context,omitempty"` // Surrounding text snippet
}

// ClaimType categorizes the strength of an environmental claim
type ClaimType string

const (
	ClaimTypeAbsolute   ClaimType = "absolute"   // Unqualified totality ("100% eco-friendly")
	ClaimTypeMisleading ClaimType = "misleading" // Sounds substantiated but is not
	ClaimTypeVague      ClaimType = "vague"      // Feel-good words with no referent
)

// RedFlag represents a linguistic pattern associated with greenwashing rhetoric
type RedFlag struct {
	Pattern     string `json:"pattern"`     // The matched text
	Description string `json:"description"` // Why the pattern is suspect
	Position    int    `json:"position"`    // Match offset in source text
}

// AIRiskLevel classifies how likely text is machine-generated marketing copy
type AIRiskLevel string

const (
	AIRiskLow    AIRiskLevel = "low"
	AIRiskMedium AIRiskLevel = "medium"
	AIRiskHigh   AIRiskLevel = "high"
)

// AIRiskAssessment is a stateless heuristic verdict over the analyzed text
type AIRiskAssessment struct {
	Risk       AIRiskLevel `json:"risk"`
	Score      int         `json:"score"`
	Indicators []string    `json:"indicators"` // Triggered heuristic descriptions, in check order
}

// ExtractionResult is the complete output of the claim extractor for one text
type ExtractionResult struct {
	Claims          []Claim          `json:"claims"`
	RedFlags        []RedFlag        `json:"red_flags"`
	HasProofMarkers bool             `json:"has_proof_markers"`
	ClaimCount      int              `json:"claim_count"`
	AIRisk          AIRiskAssessment `json:"ai_generated_risk"`
}

// LiveWarning is a typing-time hint for a single detected phrase
type LiveWarning struct {
	Phrase  string `json:"phrase"`
	Type    string `json:"type"` // Claim type or "linguistic_flag"
	Warning string `json:"warning"`
}
