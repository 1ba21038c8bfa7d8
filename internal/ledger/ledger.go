// Package ledger tracks sellers across submissions: an append-only
// submission log plus a derived per-seller risk profile, recomputed on every
// record. The ledger is an explicitly owned store, not a process-wide
// singleton; tests and batch runs each instantiate their own.
package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/greenlens/greenlens/internal/model"
)

// Alert-level thresholds over a seller's greenwash history
const (
	highRate    = 0.6
	highCount   = 3
	mediumRate  = 0.3
	mediumCount = 2
)

// Ledger owns all seller-history state. A single RWMutex serializes
// profile read-modify-write; the counter and phrase-count increments are not
// atomic compositions and must not interleave. Profile keys are
// case-sensitive exactly as submitted, deliberately unlike the registry's
// case-insensitive company matching: the ledger tracks display identities.
type Ledger struct {
	mu          sync.RWMutex
	submissions []model.SubmissionEntry
	profiles    map[string]*model.SellerProfile

	// now is injectable for timestamp tests
	now func() time.Time
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{
		profiles: make(map[string]*model.SellerProfile),
		now:      time.Now,
	}
}

// Record appends one submission and updates the seller's profile. This is
// the only state transition in the package.
func (l *Ledger) Record(company, product string, verdict model.Verdict, riskScore int, claims []model.Claim) {
	phrases := make([]string, len(claims))
	for i, c := range claims {
		phrases[i] = c.Phrase
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := model.SubmissionEntry{
		Company:      company,
		Product:      product,
		Verdict:      verdict,
		RiskScore:    riskScore,
		ClaimCount:   len(claims),
		Timestamp:    l.now(),
		ClaimPhrases: phrases,
	}
	l.submissions = append(l.submissions, entry)

	profile, ok := l.profiles[company]
	if !ok {
		profile = &model.SellerProfile{
			Company:          company,
			RecurringPhrases: make(map[string]int),
			FirstSeen:        entry.Timestamp,
			AlertLevel:       model.AlertLow,
		}
		l.profiles[company] = profile
	}

	profile.TotalSubmissions++
	profile.TotalRiskScore += riskScore
	profile.LastSeen = entry.Timestamp

	switch verdict {
	case model.VerdictGreenwashed:
		profile.GreenwashedCount++
	case model.VerdictReviewRequired:
		profile.ReviewCount++
	default:
		profile.VerifiedCount++
	}

	for _, phrase := range phrases {
		profile.RecurringPhrases[phrase]++
	}

	profile.AvgRiskScore = roundDiv(profile.TotalRiskScore, profile.TotalSubmissions)
	profile.AlertLevel = alertLevel(profile)
}

// Profile returns a copy of a seller's profile, or a no-history placeholder
// for unknown companies. Unknown sellers are not an error.
func (l *Ledger) Profile(company string) model.SellerProfile {
	l.mu.RLock()
	defer l.mu.RUnlock()

	profile, ok := l.profiles[company]
	if !ok {
		return model.SellerProfile{
			Company:    company,
			AlertLevel: model.AlertLow,
			Message:    "No prior submission history found",
		}
	}
	return copyProfile(profile)
}

// EarlyAlerts lists every seller at MEDIUM or HIGH, each with its most
// repeated claim phrases and a recommended regulatory action. HIGH sorts
// before MEDIUM, then by greenwashed count descending.
func (l *Ledger) EarlyAlerts() []model.SellerAlert {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var alerts []model.SellerAlert
	for _, profile := range l.profiles {
		if profile.AlertLevel != model.AlertHigh && profile.AlertLevel != model.AlertMedium {
			continue
		}
		alerts = append(alerts, model.SellerAlert{
			Company:           profile.Company,
			AlertLevel:        profile.AlertLevel,
			GreenwashedCount:  profile.GreenwashedCount,
			TotalSubmissions:  profile.TotalSubmissions,
			AvgRiskScore:      profile.AvgRiskScore,
			RecurringPatterns: topRecurring(profile.RecurringPhrases, 3),
			RecommendedAction: recommendedAction(profile.AlertLevel),
			LastSeen:          profile.LastSeen,
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].AlertLevel != alerts[j].AlertLevel {
			return alerts[i].AlertLevel == model.AlertHigh
		}
		if alerts[i].GreenwashedCount != alerts[j].GreenwashedCount {
			return alerts[i].GreenwashedCount > alerts[j].GreenwashedCount
		}
		return alerts[i].Company < alerts[j].Company
	})
	return alerts
}

// Submissions returns the full audit log, most recent first
func (l *Ledger) Submissions() []model.SubmissionEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.SubmissionEntry, len(l.submissions))
	for i, entry := range l.submissions {
		out[len(l.submissions)-1-i] = entry
	}
	return out
}

// Stats aggregates the whole ledger; zeroed when empty
func (l *Ledger) Stats() model.PlatformStats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.submissions) == 0 {
		return model.PlatformStats{}
	}

	stats := model.PlatformStats{TotalScanned: len(l.submissions)}
	totalRisk := 0
	for _, entry := range l.submissions {
		totalRisk += entry.RiskScore
		switch entry.Verdict {
		case model.VerdictGreenwashed:
			stats.Greenwashed++
		case model.VerdictReviewRequired:
			stats.UnderReview++
		case model.VerdictVerified:
			stats.Verified++
		}
	}
	for _, profile := range l.profiles {
		if profile.AlertLevel == model.AlertHigh {
			stats.HighRiskSellers++
		}
	}
	stats.AvgRiskScore = roundDiv(totalRisk, len(l.submissions))
	return stats
}

// alertLevel is a pure function of the current counters, recomputed on every
// update and never cached stale
func alertLevel(profile *model.SellerProfile) model.AlertLevel {
	rate := float64(profile.GreenwashedCount) / float64(profile.TotalSubmissions)
	switch {
	case rate >= highRate || profile.GreenwashedCount >= highCount:
		return model.AlertHigh
	case rate >= mediumRate || profile.GreenwashedCount >= mediumCount:
		return model.AlertMedium
	default:
		return model.AlertLow
	}
}

// recommendedAction maps an alert level to regulator guidance
func recommendedAction(level model.AlertLevel) string {
	switch level {
	case model.AlertHigh:
		return "Escalate for formal investigation: pattern of repeated greenwashing detected"
	case model.AlertMedium:
		return "Issue warning notice and require certification submission within 14 days"
	default:
		return "Monitor and flag for review if next submission is also non-compliant"
	}
}

// topRecurring returns up to limit phrases seen more than once, by
// descending occurrence count then phrase for determinism
func topRecurring(phrases map[string]int, limit int) []model.RecurringPattern {
	patterns := make([]model.RecurringPattern, 0, len(phrases))
	for phrase, count := range phrases {
		if count > 1 {
			patterns = append(patterns, model.RecurringPattern{Phrase: phrase, Occurrences: count})
		}
	}
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Occurrences != patterns[j].Occurrences {
			return patterns[i].Occurrences > patterns[j].Occurrences
		}
		return patterns[i].Phrase < patterns[j].Phrase
	})
	if len(patterns) > limit {
		patterns = patterns[:limit]
	}
	return patterns
}

// copyProfile deep-copies a profile so callers never share the live map
func copyProfile(profile *model.SellerProfile) model.SellerProfile {
	out := *profile
	out.RecurringPhrases = make(map[string]int, len(profile.RecurringPhrases))
	for phrase, count := range profile.RecurringPhrases {
		out.RecurringPhrases[phrase] = count
	}
	return out
}

// roundDiv rounds total/n to the nearest integer
func roundDiv(total, n int) int {
	if n == 0 {
		return 0
	}
	half := n / 2
	if total >= 0 {
		return (total + half) / n
	}
	return (total - half) / n
}
