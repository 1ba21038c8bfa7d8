package model

import "time"

// SubmissionEntry is one append-only ledger record, created once per analyzed
// submission and never mutated
type SubmissionEntry struct {
	Company      string    `json:"company"`
	Product      string    `json:"product"`
	Verdict      Verdict   `json:"verdict"`
	RiskScore    int       `json:"risk_score"`
	ClaimCount   int       `json:"claim_count"`
	Timestamp    time.Time `json:"timestamp"`
	ClaimPhrases []string  `json:"claim_phrases"`
}

// AlertLevel is a seller-level recidivism classification
type AlertLevel string

const (
	AlertLow    AlertLevel = "LOW"
	AlertMedium AlertLevel = "MEDIUM"
	AlertHigh   AlertLevel = "HIGH"
)

// SellerProfile is the per-company aggregate derived from all submissions.
// The ledger recomputes AlertLevel and AvgRiskScore on every update; they are
// never cached stale.
type SellerProfile struct {
	Company          string         `json:"company"`
	TotalSubmissions int            `json:"total_submissions"`
	GreenwashedCount int            `json:"greenwashed_count"`
	ReviewCount      int            `json:"review_count"`
	VerifiedCount    int            `json:"verified_count"`
	TotalRiskScore   int            `json:"total_risk_score"`
	AvgRiskScore     int            `json:"avg_risk_score"`
	RecurringPhrases map[string]int `json:"recurring_phrases,omitempty"`
	FirstSeen        time.Time      `json:"first_seen"`
	LastSeen         time.Time      `json:"last_seen"`
	AlertLevel       AlertLevel     `json:"alert_level"`
	Message          string         `json:"message,omitempty"` // Set on the no-history placeholder
}

// RecurringPattern is one repeated claim phrase in an early alert
type RecurringPattern struct {
	Phrase      string `json:"phrase"`
	Occurrences int    `json:"occurrences"`
}

// SellerAlert is one row of the regulator early-alert list
type SellerAlert struct {
	Company           string             `json:"company"`
	AlertLevel        AlertLevel         `json:"alert_level"`
	GreenwashedCount  int                `json:"greenwashed_count"`
	TotalSubmissions  int                `json:"total_submissions"`
	AvgRiskScore      int                `json:"avg_risk_score"`
	RecurringPatterns []RecurringPattern `json:"recurring_patterns"`
	RecommendedAction string             `json:"recommended_action"`
	LastSeen          time.Time          `json:"last_seen"`
}

// PlatformStats aggregates the whole ledger for the regulator overview
type PlatformStats struct {
	TotalScanned    int `json:"total_scanned"`
	Greenwashed     int `json:"greenwashed"`
	UnderReview     int `json:"under_review"`
	Verified        int `json:"verified"`
	HighRiskSellers int `json:"high_risk_sellers"`
	AvgRiskScore    int `json:"avg_risk_score"`
}
