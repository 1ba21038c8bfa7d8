package model

import "time"

// ProductSubmission is one seller submission entering the pipeline
type ProductSubmission struct {
	CompanyName           string   `json:"company_name" yaml:"company"`
	ProductTitle          string   `json:"product_title" yaml:"product"`
	ProductDescription    string   `json:"product_description" yaml:"description"`
	ProductCategory       string   `json:"product_category" yaml:"category"`
	ClaimedCertifications []string `json:"claimed_certifications" yaml:"certifications"`
}

// FullText is the text the extractor analyzes: title and description joined
// the way listings render them.
func (s ProductSubmission) FullText() string {
	if s.ProductTitle == "" {
		return s.ProductDescription
	}
	return s.ProductTitle + ". " + s.ProductDescription
}

// ProductInfo identifies the analyzed product in a report
type ProductInfo struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Category string `json:"category"`
}

// SellerHistory is the recidivism context captured before the submission was
// recorded
type SellerHistory struct {
	AlertLevel            AlertLevel `json:"alert_level"`
	PriorSubmissions      int        `json:"prior_submissions"`
	PriorGreenwashedCount int        `json:"prior_greenwashed_count"`
}

// Report is the complete analysis output for one submission
type Report struct {
	Product        ProductInfo      `json:"product"`
	AnalyzedAt     time.Time        `json:"analyzed_at"`
	SourceURL      string           `json:"source_url,omitempty"` // Set in listing-scan mode
	NLPAnalysis    ExtractionResult `json:"nlp_analysis"`
	CertAnalysis   CertAnalysis     `json:"certificate_analysis"`
	RiskAssessment RiskAssessment   `json:"risk_assessment"`
	SellerHistory  SellerHistory    `json:"seller_history"`
}
