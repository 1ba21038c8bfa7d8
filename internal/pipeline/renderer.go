package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/greenlens/greenlens/internal/model"
)

// Renderer writes analysis reports as JSON, Markdown, and terminal summaries
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// Render writes the report to the requested outputs and prints a terminal
// summary
func (r *Renderer) Render(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := r.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := r.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	r.RenderSummary(report)
	return nil
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// RenderMarkdown writes the report as a human-readable Markdown document
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return os.WriteFile(path, []byte(r.Markdown(report)), 0o644)
}

// Markdown builds the Markdown body for a report
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Greenwashing Analysis: %s\n\n", report.Product.Title)
	fmt.Fprintf(&b, "**Company:** %s  \n", report.Product.Company)
	if report.Product.Category != "" {
		fmt.Fprintf(&b, "**Category:** %s  \n", report.Product.Category)
	}
	if report.SourceURL != "" {
		fmt.Fprintf(&b, "**Source:** %s  \n", report.SourceURL)
	}
	fmt.Fprintf(&b, "**Analyzed:** %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04 UTC"))

	risk := report.RiskAssessment
	fmt.Fprintf(&b, "## Verdict: %s\n\n", risk.Verdict)
	fmt.Fprintf(&b, "**Risk score:** %d/100\n\n", risk.RiskScore)
	if risk.VisibilityImpact.Badge != "" {
		fmt.Fprintf(&b, "**Badge:** %s\n\n", risk.VisibilityImpact.Badge)
	}
	fmt.Fprintf(&b, "%s\n\n", risk.VisibilityImpact.Description)

	if len(report.NLPAnalysis.Claims) > 0 {
		b.WriteString("## Environmental Claims\n\n")
		b.WriteString("| Phrase | Type | Confidence | Context |\n")
		b.WriteString("|--------|------|-----------:|---------|\n")
		for _, c := range report.NLPAnalysis.Claims {
			fmt.Fprintf(&b, "| %s | %s | %.2f | %s |\n", c.Phrase, c.Type, c.Confidence, c.Context)
		}
		b.WriteString("\n")
	}

	if len(report.NLPAnalysis.RedFlags) > 0 {
		b.WriteString("## Linguistic Red Flags\n\n")
		for _, f := range report.NLPAnalysis.RedFlags {
			fmt.Fprintf(&b, "- **%s**: %s\n", f.Pattern, f.Description)
		}
		b.WriteString("\n")
	}

	ai := report.NLPAnalysis.AIRisk
	if ai.Risk != model.AIRiskLow {
		fmt.Fprintf(&b, "## AI-Generated Text Risk: %s (%d)\n\n", strings.ToUpper(string(ai.Risk)), ai.Score)
		for _, ind := range ai.Indicators {
			fmt.Fprintf(&b, "- %s\n", ind)
		}
		b.WriteString("\n")
	}

	certs := report.CertAnalysis
	fmt.Fprintf(&b, "## Certifications: %s\n\n", certs.OverallCertStatus)
	if len(certs.VerificationResults) > 0 {
		b.WriteString("| Certificate | Status | Details |\n")
		b.WriteString("|-------------|--------|---------|\n")
		for _, v := range certs.VerificationResults {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", v.Cert, v.Status, v.Reason)
		}
		b.WriteString("\n")
	}
	for _, m := range certs.MissingRecommended {
		fmt.Fprintf(&b, "- Missing recommended: **%s** (%s)\n", m.Cert, m.Reason)
	}
	if len(certs.MissingRecommended) > 0 {
		b.WriteString("\n")
	}

	if len(risk.SDGTargetsAffected) > 0 {
		b.WriteString("## SDG Targets Affected\n\n")
		for _, t := range risk.SDGTargetsAffected {
			fmt.Fprintf(&b, "- **SDG %s** (%s), severity %.1f\n", t.Target, t.Label, t.Severity)
		}
		b.WriteString("\n")
	}

	if len(risk.ScoreBreakdown) > 0 {
		b.WriteString("## Score Breakdown\n\n")
		b.WriteString("| Factor | Points | Source |\n")
		b.WriteString("|--------|-------:|--------|\n")
		for _, e := range risk.ScoreBreakdown {
			fmt.Fprintf(&b, "| %s | %.1f | %s |\n", e.Kind, e.Points, e.Source)
		}
		b.WriteString("\n")
	}

	history := report.SellerHistory
	if history.PriorSubmissions > 0 {
		b.WriteString("## Seller History\n\n")
		fmt.Fprintf(&b, "Prior submissions: %d, greenwashed: %d, alert level: %s\n\n",
			history.PriorSubmissions, history.PriorGreenwashedCount, history.AlertLevel)
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("*Generated by Greenlens. Risk scores are heuristic and transparent; ")
		b.WriteString("every point in the breakdown above traces to a specific claim, ")
		b.WriteString("certificate check, or linguistic pattern.*\n")
	}

	return b.String()
}

// RenderSummary prints a short terminal summary of the report
func (r *Renderer) RenderSummary(report *model.Report) {
	risk := report.RiskAssessment

	fmt.Println()
	fmt.Printf("═══ %s ═══\n", report.Product.Title)
	fmt.Printf("Company:    %s\n", report.Product.Company)
	fmt.Printf("Verdict:    %s (risk %d/100)\n", risk.Verdict, risk.RiskScore)
	fmt.Printf("Claims:     %d environmental claims, %d red flags\n",
		report.NLPAnalysis.ClaimCount, len(report.NLPAnalysis.RedFlags))
	fmt.Printf("Certs:      %s\n", report.CertAnalysis.OverallCertStatus)
	if len(report.CertAnalysis.MissingRecommended) > 0 {
		missing := make([]string, 0, len(report.CertAnalysis.MissingRecommended))
		for _, m := range report.CertAnalysis.MissingRecommended {
			missing = append(missing, m.Cert)
		}
		fmt.Printf("Missing:    %s\n", strings.Join(missing, ", "))
	}
	if report.SellerHistory.PriorSubmissions > 0 {
		fmt.Printf("History:    %d prior submissions (%d greenwashed, alert %s)\n",
			report.SellerHistory.PriorSubmissions,
			report.SellerHistory.PriorGreenwashedCount,
			report.SellerHistory.AlertLevel)
	}
	fmt.Printf("Action:     %s\n", risk.VisibilityImpact.Description)
	fmt.Println()
}
