package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/greenlens/greenlens/internal/model"
)

// greenVocabulary is the word set whose density suggests machine-optimized
// copy
var greenVocabulary = map[string]bool{
	"sustainable":   true,
	"eco":           true,
	"green":         true,
	"natural":       true,
	"organic":       true,
	"biodegradable": true,
	"renewable":     true,
	"ethical":       true,
	"responsible":   true,
	"conscious":     true,
}

// measurementRe matches concrete measurements: percentages or number+unit
var measurementRe = regexp.MustCompile(`\d+%|\d+\s*(kg|tonnes|hectares|km)`)

// assessAIRisk is a statistical heuristic for machine-generated greenwashing
// copy: over-optimized keyword density, uniform sentence lengths, and an
// absence of concrete measurements.
func assessAIRisk(text string) model.AIRiskAssessment {
	words := strings.Fields(text)
	if len(words) == 0 {
		return model.AIRiskAssessment{Risk: model.AIRiskLow, Score: 0, Indicators: []string{}}
	}

	indicators := []string{}
	score := 0

	greenCount := 0
	for _, w := range words {
		if greenVocabulary[strings.ToLower(w)] {
			greenCount++
		}
	}
	density := float64(greenCount) / float64(len(words))
	if density > 0.08 {
		score += 30
		indicators = append(indicators, fmt.Sprintf("High green keyword density (%.1f%%)", density*100))
	}

	sentences := strings.Split(text, ".")
	totalWords := 0
	for _, s := range sentences {
		totalWords += len(strings.Fields(s))
	}
	avgLen := float64(totalWords) / float64(len(sentences))
	if avgLen > 15 && avgLen < 22 {
		score += 20
		indicators = append(indicators, "Unusually uniform sentence length pattern")
	}

	if !measurementRe.MatchString(text) && len(words) > 30 {
		score += 25
		indicators = append(indicators, "No specific measurements or data points found")
	}

	risk := model.AIRiskLow
	switch {
	case score >= 50:
		risk = model.AIRiskHigh
	case score >= 25:
		risk = model.AIRiskMedium
	}

	return model.AIRiskAssessment{Risk: risk, Score: score, Indicators: indicators}
}
