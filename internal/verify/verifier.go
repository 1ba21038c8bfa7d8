// Package verify cross-checks claimed certifications against the certificate
// registry: existence, expiry, and product-category scope. It never mutates
// the registry; every call is a pure read-and-compare.
package verify

import (
	"fmt"
	"strings"
	"time"

	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/refdata"
)

// expiryWarningDays is the window before expiry in which a VERIFIED result
// carries a renewal warning
const expiryWarningDays = 90

// Verifier checks certificate claims against the registry and the
// category-recommendation table
type Verifier struct {
	registry        []model.CertificateRecord
	recommendations map[string][]string
	guidance        map[string]model.CertGuidance

	// now is injectable for expiry tests
	now func() time.Time
}

// NewVerifier creates a verifier over the given reference data
func NewVerifier(data *refdata.Set) *Verifier {
	recs := make(map[string][]string, len(data.Recommendations))
	for _, r := range data.Recommendations {
		recs[strings.ToLower(r.Category)] = r.Certs
	}

	return &Verifier{
		registry:        data.Registry,
		recommendations: recs,
		guidance:        data.Guidance,
		now:             time.Now,
	}
}

// Verify checks every claimed certificate for a company and product category
// and reports recommended certificates missing from the claimed list.
// Unknown companies, certificate types, and categories degrade to NOT_FOUND
// and empty recommendations; they are never errors.
func (v *Verifier) Verify(company string, claimedCerts []string, category string) model.CertAnalysis {
	results := make([]model.CertVerificationResult, 0, len(claimedCerts))
	for _, certType := range claimedCerts {
		results = append(results, v.verifySingle(company, certType, category))
	}

	return model.CertAnalysis{
		VerificationResults: results,
		MissingRecommended:  v.missingRecommended(category, claimedCerts),
		OverallCertStatus:   overallStatus(results),
	}
}

// verifySingle checks one claimed certificate. Company and type matching is
// case-insensitive; the first matching registry record wins.
func (v *Verifier) verifySingle(company, certType, category string) model.CertVerificationResult {
	record := v.lookup(company, certType)
	if record == nil {
		return model.CertVerificationResult{
			Cert:            certType,
			Status:          model.CertStatusNotFound,
			Severity:        model.CertSeverityHigh,
			Reason:          fmt.Sprintf("No %s certificate found in registry for %s", certType, company),
			Remediation:     v.remediation(certType, ""),
			RegistryChecked: true,
		}
	}

	today := dateOf(v.now().UTC())
	daysUntilExpiry := int(record.ExpiryDate.Sub(today).Hours() / 24)

	if record.ExpiryDate.Before(today) {
		return model.CertVerificationResult{
			Cert:     certType,
			Status:   model.CertStatusExpired,
			Severity: model.CertSeverityHigh,
			Reason: fmt.Sprintf("Certificate expired on %s (%d days ago)",
				record.Expiry, -daysUntilExpiry),
			CertificateNumber: record.CertificateNumber,
			Remediation:       v.remediation(certType, "Renew your existing certificate through your certifying body"),
			RegistryChecked:   true,
		}
	}

	if !coversCategory(record, category) {
		return model.CertVerificationResult{
			Cert:     certType,
			Status:   model.CertStatusScopeMismatch,
			Severity: model.CertSeverityMedium,
			Reason: fmt.Sprintf("Certificate covers %s; does not extend to '%s'",
				strings.Join(record.ApplicableCategories, ", "), category),
			CertificateNumber: record.CertificateNumber,
			Expiry:            record.Expiry,
			Remediation: v.remediation(certType, fmt.Sprintf(
				"Contact %s to extend scope to cover %s products", record.IssuingBody, category)),
			RegistryChecked: true,
		}
	}

	result := model.CertVerificationResult{
		Cert:              certType,
		Status:            model.CertStatusVerified,
		Severity:          model.CertSeverityNone,
		Reason:            fmt.Sprintf("Valid until %s", record.Expiry),
		CertificateNumber: record.CertificateNumber,
		IssuingBody:       record.IssuingBody,
		RegistryChecked:   true,
	}
	if daysUntilExpiry > 0 && daysUntilExpiry < expiryWarningDays {
		result.ExpiryWarning = fmt.Sprintf("Certificate expires in %d days; plan renewal soon", daysUntilExpiry)
	}
	return result
}

// lookup finds the first registry record for a company and cert type
func (v *Verifier) lookup(company, certType string) *model.CertificateRecord {
	for i := range v.registry {
		rec := &v.registry[i]
		if strings.EqualFold(rec.Company, company) && strings.EqualFold(rec.CertType, certType) {
			return rec
		}
	}
	return nil
}

// remediation returns a copy of the guidance entry for a cert type with the
// situational action attached, or nil when the type is unknown
func (v *Verifier) remediation(certType, action string) *model.CertGuidance {
	guidance, ok := v.guidance[certType]
	if !ok {
		return nil
	}
	guidance.Action = action
	return &guidance
}

// missingRecommended reports recommended certificates for a category that do
// not appear in the claimed list
func (v *Verifier) missingRecommended(category string, claimed []string) []model.MissingCert {
	recommended := v.recommendations[strings.ToLower(category)]

	claimedSet := make(map[string]bool, len(claimed))
	for _, c := range claimed {
		claimedSet[c] = true
	}

	missing := make([]model.MissingCert, 0, len(recommended))
	for _, cert := range recommended {
		if claimedSet[cert] {
			continue
		}
		var guidance *model.CertGuidance
		if g, ok := v.guidance[cert]; ok {
			guidance = &g
		}
		missing = append(missing, model.MissingCert{
			Cert:     cert,
			Reason:   fmt.Sprintf("Recommended for %s products", category),
			Guidance: guidance,
		})
	}
	return missing
}

// overallStatus folds per-certificate outcomes into one submission status
func overallStatus(results []model.CertVerificationResult) model.OverallCertStatus {
	if len(results) == 0 {
		return model.CertOverallNoCertsClaimed
	}

	allVerified := true
	for _, r := range results {
		switch r.Status {
		case model.CertStatusNotFound, model.CertStatusExpired:
			return model.CertOverallFailed
		case model.CertStatusVerified:
		default:
			allVerified = false
		}
	}
	if allVerified {
		return model.CertOverallAllVerified
	}
	return model.CertOverallPartial
}

// coversCategory checks category scope case-insensitively
func coversCategory(record *model.CertificateRecord, category string) bool {
	for _, c := range record.ApplicableCategories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// dateOf truncates a time to its calendar date
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
