package extract

import (
	"math"
	"strings"

	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/refdata"
)

// contextWindow is how many characters of surrounding text are kept on each
// side of a matched phrase
const contextWindow = 40

// titleZone is the offset under which a match earns the title-position
// confidence boost
const titleZone = 50

// Base confidence per claim type; stronger wording is easier to classify
var baseConfidence = map[model.ClaimType]float64{
	model.ClaimTypeAbsolute:   0.92,
	model.ClaimTypeMisleading: 0.85,
	model.ClaimTypeVague:      0.78,
}

const defaultConfidence = 0.75

// ClaimExtractor scans product text against the claim-phrase taxonomy and
// runs the linguistic red-flag and AI-generated-text heuristics. It holds
// only read-only reference data and is safe for concurrent use.
type ClaimExtractor struct {
	taxonomy []refdata.TaxonomyGroup
}

// NewClaimExtractor creates an extractor over the given taxonomy
func NewClaimExtractor(taxonomy []refdata.TaxonomyGroup) *ClaimExtractor {
	return &ClaimExtractor{taxonomy: taxonomy}
}

// Extract analyzes one text. Deterministic, no side effects: the same text
// always yields the same result.
func (e *ClaimExtractor) Extract(text string) model.ExtractionResult {
	lower := strings.ToLower(text)

	claims := e.matchClaims(text, lower)
	flags := detectRedFlags(lower)

	return model.ExtractionResult{
		Claims:          claims,
		RedFlags:        flags,
		HasProofMarkers: hasProofMarkers(lower),
		ClaimCount:      len(claims),
		AIRisk:          assessAIRisk(text),
	}
}

// matchClaims records one claim per taxonomy phrase present in the text,
// first occurrence wins. Taxonomy phrases are ASCII, so offsets into the
// lower-cased text are valid offsets into the original.
func (e *ClaimExtractor) matchClaims(text, lower string) []model.Claim {
	var claims []model.Claim
	seen := make(map[string]bool)

	for _, group := range e.taxonomy {
		base, ok := baseConfidence[group.Type]
		if !ok {
			base = defaultConfidence
		}

		for _, phrase := range group.Phrases {
			if seen[phrase] {
				continue
			}
			pos := strings.Index(lower, strings.ToLower(phrase))
			if pos < 0 {
				continue
			}
			seen[phrase] = true

			confidence := base
			if pos < titleZone {
				confidence += 0.05
			}
			confidence = math.Round(math.Min(confidence, 0.99)*100) / 100

			claims = append(claims, model.Claim{
				Phrase:     phrase,
				Type:       group.Type,
				Confidence: confidence,
				Position:   pos,
				Context:    claimContext(text, pos, len(phrase)),
			})
		}
	}

	return claims
}

// claimContext extracts up to contextWindow characters around a match, with a
// leading ellipsis when the snippet is truncated at the start
func claimContext(text string, start, length int) string {
	ctxStart := start - contextWindow
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := start + length + contextWindow
	if ctxEnd > len(text) {
		ctxEnd = len(text)
	}

	snippet := text[ctxStart:ctxEnd]
	if ctxStart > 0 {
		return "..." + snippet + "..."
	}
	return snippet + "..."
}
