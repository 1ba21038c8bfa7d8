// Package score turns extractor and verifier output into a bounded risk
// score, a verdict, and a marketplace visibility decision. Every point added
// to the score gets a breakdown entry, so a verdict is always explainable
// from its parts.
package score

import (
	"fmt"
	"math"

	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/refdata"
)

// Base weight per claim type
var claimWeights = map[model.ClaimType]float64{
	model.ClaimTypeAbsolute:   40,
	model.ClaimTypeMisleading: 30,
	model.ClaimTypeVague:      15,
}

const defaultClaimWeight = 10

// Penalty per failed certificate status. NO_CERTS_CLAIMED is reserved: the
// verifier only emits per-claimed-cert statuses, so it is never applied; the
// zero-certs signal reaches the verdict through the missing-proof penalty
// and the missing-recommended report instead.
var certPenalties = map[model.CertStatus]float64{
	model.CertStatusNotFound:             25,
	model.CertStatusExpired:              20,
	model.CertStatusScopeMismatch:        15,
	model.CertStatus("NO_CERTS_CLAIMED"): 10,
}

const (
	missingProofPenalty = 10
	redFlagUnitPenalty  = 5
	redFlagPenaltyCap   = 20
)

// Boost per AI-generated-content risk level
var aiRiskBoosts = map[model.AIRiskLevel]float64{
	model.AIRiskHigh:   15,
	model.AIRiskMedium: 8,
	model.AIRiskLow:    0,
}

// Verdict bucket boundaries
const (
	reviewThreshold      = 20
	greenwashedThreshold = 50
)

// Scorer computes risk assessments. It holds only the read-only SDG target
// table and is safe for concurrent use.
type Scorer struct {
	sdg *sdgTable
}

// NewScorer creates a scorer over the given SDG target table
func NewScorer(targets []refdata.SDGEntry) *Scorer {
	return &Scorer{sdg: newSDGTable(targets)}
}

// Calculate aggregates all analysis signals into one risk assessment.
// Pure function of its inputs; called fresh per submission.
func (s *Scorer) Calculate(
	claims []model.Claim,
	certResults []model.CertVerificationResult,
	redFlags []model.RedFlag,
	hasProofMarkers bool,
	aiRisk model.AIRiskAssessment,
) model.RiskAssessment {
	var score float64
	var breakdown []model.BreakdownEntry
	var affected []model.SDGTarget
	seenTargets := make(map[string]bool)

	// 1. Claim weights, scaled by SDG target severity
	for _, claim := range claims {
		base, ok := claimWeights[claim.Type]
		if !ok {
			base = defaultClaimWeight
		}

		multiplier := 1.0
		targetID := ""
		if hit := s.sdg.match(claim.Phrase); hit != nil {
			multiplier = hit.Severity
			targetID = hit.Target
			if !seenTargets[hit.Target] {
				seenTargets[hit.Target] = true
				affected = append(affected, model.SDGTarget{
					Target:   hit.Target,
					Label:    hit.Label,
					Severity: hit.Severity,
				})
			}
		}

		points := base * multiplier
		score += points
		breakdown = append(breakdown, model.BreakdownEntry{
			Kind:      model.BreakdownClaim,
			Source:    fmt.Sprintf("Claim: '%s'", claim.Phrase),
			Points:    math.Round(points*10) / 10,
			ClaimType: claim.Type,
			Phrase:    claim.Phrase,
			SDGTarget: targetID,
		})
	}

	// 2. Certificate failure penalties
	for _, cert := range certResults {
		penalty := certPenalties[cert.Status]
		if penalty <= 0 {
			continue
		}
		score += penalty
		breakdown = append(breakdown, model.BreakdownEntry{
			Kind:       model.BreakdownCertPenalty,
			Source:     fmt.Sprintf("Certificate: %s (%s)", cert.Cert, cert.Status),
			Points:     penalty,
			CertType:   cert.Cert,
			CertStatus: cert.Status,
		})
	}

	// 3. Claims without any proof marker in the description
	if !hasProofMarkers && len(claims) > 0 {
		score += missingProofPenalty
		breakdown = append(breakdown, model.BreakdownEntry{
			Kind:   model.BreakdownMissingProof,
			Source: "No verifiable proof markers found in description",
			Points: missingProofPenalty,
		})
	}

	// 4. Linguistic red flags, capped
	if len(redFlags) > 0 {
		penalty := math.Min(float64(len(redFlags)*redFlagUnitPenalty), redFlagPenaltyCap)
		score += penalty
		breakdown = append(breakdown, model.BreakdownEntry{
			Kind:      model.BreakdownLinguisticFlags,
			Source:    fmt.Sprintf("%d linguistic red flag(s) detected", len(redFlags)),
			Points:    penalty,
			FlagCount: len(redFlags),
		})
	}

	// 5. AI-generated content boost
	if boost := aiRiskBoosts[aiRisk.Risk]; boost > 0 {
		score += boost
		breakdown = append(breakdown, model.BreakdownEntry{
			Kind:   model.BreakdownAIRisk,
			Source: "Possible AI-generated greenwashing content detected",
			Points: boost,
			AIRisk: aiRisk.Risk,
		})
	}

	finalScore := int(math.Round(score))
	if finalScore > 100 {
		finalScore = 100
	}

	certFailures := 0
	for _, cert := range certResults {
		if cert.Status != model.CertStatusVerified {
			certFailures++
		}
	}

	return model.RiskAssessment{
		RiskScore:          finalScore,
		Verdict:            classifyVerdict(finalScore),
		ScoreBreakdown:     breakdown,
		SDGTargetsAffected: affected,
		VisibilityImpact:   visibilityImpact(finalScore),
		TotalClaims:        len(claims),
		TotalCertFailures:  certFailures,
	}
}

// classifyVerdict buckets a final score: below 20 VERIFIED, below 50
// REVIEW_REQUIRED, otherwise GREENWASHED
func classifyVerdict(score int) model.Verdict {
	switch {
	case score < reviewThreshold:
		return model.VerdictVerified
	case score < greenwashedThreshold:
		return model.VerdictReviewRequired
	default:
		return model.VerdictGreenwashed
	}
}

// visibilityImpact is the fixed marketplace consequence per verdict bucket
func visibilityImpact(score int) model.VisibilityImpact {
	switch {
	case score < reviewThreshold:
		return model.VisibilityImpact{
			Action:      model.VisibilityBoost,
			Adjustment:  "+25% search ranking",
			Badge:       "Verified Green Product",
			BadgeColor:  "green",
			Description: "Product eligible for verified sustainability badge and search promotion",
		}
	case score < greenwashedThreshold:
		return model.VisibilityImpact{
			Action:      model.VisibilityHold,
			Adjustment:  "No ranking change, pending review",
			Badge:       "Under Review",
			BadgeColor:  "amber",
			Description: "Product listing held pending seller clarification or certification submission",
		}
	default:
		return model.VisibilityImpact{
			Action:      model.VisibilityDemote,
			Adjustment:  "-40% search ranking",
			Badge:       "Unverified Claims",
			BadgeColor:  "red",
			Description: "Product demoted in search results until claims are verified or removed",
		}
	}
}
