package extract

import (
	"regexp"
	"strings"

	"github.com/greenlens/greenlens/internal/model"
)

// redFlagPattern pairs one compiled greenwashing-rhetoric pattern with its
// description. The list is ordered; at most the first match per pattern is
// reported.
type redFlagPattern struct {
	re          *regexp.Regexp
	description string
}

var redFlagPatterns = []redFlagPattern{
	{
		re:          regexp.MustCompile(`\b(our commitment to|we are committed to|we strive to|we aim to)\b`),
		description: "Vague pledge without measurable target",
	},
	{
		re:          regexp.MustCompile(`\b(up to|as much as|can be|may be)\b`),
		description: "Hedging language undermining claim strength",
	},
	{
		re:          regexp.MustCompile(`\b(greener|more sustainable|better for|cleaner than)\b`),
		description: "Unqualified comparative with no reference point given",
	},
	{
		re:          regexp.MustCompile(`\b(designed with|made with|crafted with|inspired by) nature\b`),
		description: "Nature-association language without substance",
	},
	{
		re:          regexp.MustCompile(`\b(responsibly|thoughtfully|carefully) (made|sourced|crafted)\b`),
		description: "Adverb-washing: adverb not backed by a standard",
	},
}

// detectRedFlags scans lower-cased text for the fixed pattern set
func detectRedFlags(lower string) []model.RedFlag {
	var flags []model.RedFlag
	for _, p := range redFlagPatterns {
		loc := p.re.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		flags = append(flags, model.RedFlag{
			Pattern:     lower[loc[0]:loc[1]],
			Description: p.description,
			Position:    loc[0],
		})
	}
	return flags
}

// proofMarkers are substrings indicating a claim might be substantiated
// somewhere: certificates, auditors, standard bodies, registration numbers
var proofMarkers = []string{
	"certificate", "certified", "certification", "verified by",
	"audited by", "third-party", "third party", "iso ", "fsc",
	"pefc", "rainforest alliance", "carbon trust", "cites",
	"registration number", "cert no", "license no",
}

// hasProofMarkers reports whether lower-cased text contains any proof marker
func hasProofMarkers(lower string) bool {
	for _, marker := range proofMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
