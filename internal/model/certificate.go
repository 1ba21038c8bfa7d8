package model

import "time"

// CertificateRecord is one registry entry. Records are provisioned externally
// and never mutated by the core.
type CertificateRecord struct {
	Company              string   `json:"company" yaml:"company"`
	CertType             string   `json:"cert_type" yaml:"cert_type"`
	Expiry               string   `json:"expiry" yaml:"expiry"` // YYYY-MM-DD
	ApplicableCategories []string `json:"applicable_categories" yaml:"applicable_categories"`
	CertificateNumber    string   `json:"certificate_number" yaml:"certificate_number"`
	IssuingBody          string   `json:"issuing_body" yaml:"issuing_body"`

	// ExpiryDate is parsed from Expiry during reference-data validation.
	ExpiryDate time.Time `json:"-" yaml:"-"`
}

// CertStatus is the verification outcome for one claimed certificate
type CertStatus string

const (
	CertStatusNotFound      CertStatus = "NOT_FOUND"
	CertStatusExpired       CertStatus = "EXPIRED"
	CertStatusScopeMismatch CertStatus = "SCOPE_MISMATCH"
	CertStatusVerified      CertStatus = "VERIFIED"
)

// CertSeverity grades how damaging a verification outcome is
type CertSeverity string

const (
	CertSeverityNone   CertSeverity = "none"
	CertSeverityMedium CertSeverity = "medium"
	CertSeverityHigh   CertSeverity = "high"
)

// CertGuidance is the remediation pathway for obtaining a certificate type
type CertGuidance struct {
	FullName    string   `json:"full_name" yaml:"full_name"`
	URL         string   `json:"url" yaml:"url"`
	Timeline    string   `json:"timeline" yaml:"timeline"`
	CostTier    string   `json:"cost_tier" yaml:"cost_tier"`
	Description string   `json:"description" yaml:"description"`
	Steps       []string `json:"steps,omitempty" yaml:"steps,omitempty"`

	// Action is a situational instruction (renewal, scope extension) attached
	// by the verifier; it is not part of the static guidance table.
	Action string `json:"action,omitempty" yaml:"-"`
}

// CertVerificationResult is computed fresh per claimed certificate
type CertVerificationResult struct {
	Cert              string        `json:"cert"`
	Status            CertStatus    `json:"status"`
	Severity          CertSeverity  `json:"severity"`
	Reason            string        `json:"reason"`
	CertificateNumber string        `json:"certificate_number,omitempty"`
	IssuingBody       string        `json:"issuing_body,omitempty"`
	Expiry            string        `json:"expiry,omitempty"`
	ExpiryWarning     string        `json:"expiry_warning,omitempty"`
	Remediation       *CertGuidance `json:"remediation,omitempty"`
	RegistryChecked   bool          `json:"registry_checked"`
}

// MissingCert reports a certificate recommended for the product category but
// absent from the claimed list
type MissingCert struct {
	Cert     string        `json:"cert"`
	Reason   string        `json:"reason"`
	Guidance *CertGuidance `json:"guidance,omitempty"`
}

// OverallCertStatus summarizes all verification results for one submission
type OverallCertStatus string

const (
	CertOverallNoCertsClaimed OverallCertStatus = "NO_CERTS_CLAIMED"
	CertOverallAllVerified    OverallCertStatus = "ALL_VERIFIED"
	CertOverallFailed         OverallCertStatus = "FAILED"
	CertOverallPartial        OverallCertStatus = "PARTIAL"
)

// CertAnalysis is the complete output of the certificate verifier
type CertAnalysis struct {
	VerificationResults []CertVerificationResult `json:"verification_results"`
	MissingRecommended  []MissingCert            `json:"missing_recommended"`
	OverallCertStatus   OverallCertStatus        `json:"overall_cert_status"`
}
