// Package pipeline wires the three analysis stages together: claim
// extraction, certificate verification, and risk scoring, with the seller
// ledger recording every analyzed submission. Scan mode adds a fetch stage
// that pulls a live listing page and strips it to visible text.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/greenlens/greenlens/internal/cache"
	"github.com/greenlens/greenlens/internal/extract"
	"github.com/greenlens/greenlens/internal/ledger"
	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/refdata"
	"github.com/greenlens/greenlens/internal/score"
	"github.com/greenlens/greenlens/internal/util"
	"github.com/greenlens/greenlens/internal/verify"
)

// Pipeline orchestrates the complete analysis of a product submission
type Pipeline struct {
	extractor *extract.ClaimExtractor
	verifier  *verify.Verifier
	scorer    *score.Scorer
	store     *ledger.Ledger
	fetcher   *Fetcher
	robots    *util.RobotsChecker
	renderer  *Renderer

	pageCache     cache.Cache
	analysisCache cache.Cache

	config *model.Config
}

// NewPipeline creates a pipeline over the given configuration, reference
// data, and ledger. The ledger is injected so callers (and tests) control
// its lifetime; the pipeline itself holds no global state.
func NewPipeline(cfg *model.Config, data *refdata.Set, store *ledger.Ledger) *Pipeline {
	p := &Pipeline{
		extractor: extract.NewClaimExtractor(data.Taxonomy),
		verifier:  verify.NewVerifier(data),
		scorer:    score.NewScorer(data.SDGTargets),
		store:     store,
		fetcher: NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.InsecureTLS, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
		robots:   util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		config:   cfg,
	}

	if cfg.Cache.Enabled {
		p.analysisCache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		if cfg.Cache.Dir != "" {
			p.pageCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			p.pageCache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	return p
}

// Analyze runs the full pipeline for one submission: extract claims, verify
// certificates, score risk, then record the outcome in the ledger. The
// seller history in the report reflects the state before this submission was
// recorded.
func (p *Pipeline) Analyze(sub model.ProductSubmission) *model.Report {
	extraction := p.extractor.Extract(sub.FullText())

	certAnalysis := p.verifier.Verify(sub.CompanyName, sub.ClaimedCertifications, sub.ProductCategory)

	risk := p.scorer.Calculate(
		extraction.Claims,
		certAnalysis.VerificationResults,
		extraction.RedFlags,
		extraction.HasProofMarkers,
		extraction.AIRisk,
	)

	prior := p.store.Profile(sub.CompanyName)
	p.store.Record(sub.CompanyName, sub.ProductTitle, risk.Verdict, risk.RiskScore, extraction.Claims)

	return &model.Report{
		Product: model.ProductInfo{
			Title:    sub.ProductTitle,
			Company:  sub.CompanyName,
			Category: sub.ProductCategory,
		},
		AnalyzedAt:     time.Now().UTC(),
		NLPAnalysis:    extraction,
		CertAnalysis:   certAnalysis,
		RiskAssessment: risk,
		SellerHistory: model.SellerHistory{
			AlertLevel:            prior.AlertLevel,
			PriorSubmissions:      prior.TotalSubmissions,
			PriorGreenwashedCount: prior.GreenwashedCount,
		},
	}
}

// AnalyzeText runs extraction only, for the live-typing path. Results are
// cached by text hash since a seller's editor may re-send the same draft.
func (p *Pipeline) AnalyzeText(text string) model.ExtractionResult {
	key := cache.AnalysisKey(text)

	if p.analysisCache != nil {
		if raw, found := p.analysisCache.Get(key); found {
			var cached model.ExtractionResult
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached
			}
		}
	}

	result := p.extractor.Extract(text)

	if p.analysisCache != nil {
		if raw, err := json.Marshal(result); err == nil {
			_ = p.analysisCache.Set(key, raw, 0)
		}
	}

	return result
}

// LiveWarnings converts an extraction result into typing-time warnings
func LiveWarnings(result model.ExtractionResult) []model.LiveWarning {
	warnings := make([]model.LiveWarning, 0, len(result.Claims)+len(result.RedFlags))
	for _, claim := range result.Claims {
		warnings = append(warnings, model.LiveWarning{
			Phrase:  claim.Phrase,
			Type:    string(claim.Type),
			Warning: liveWarningMessage(claim.Type),
		})
	}
	for _, flag := range result.RedFlags {
		warnings = append(warnings, model.LiveWarning{
			Phrase:  flag.Pattern,
			Type:    "linguistic_flag",
			Warning: flag.Description,
		})
	}
	return warnings
}

func liveWarningMessage(claimType model.ClaimType) string {
	switch claimType {
	case model.ClaimTypeVague:
		return "Vague claim: consider adding a specific certified standard"
	case model.ClaimTypeAbsolute:
		return "Absolute claim: requires third-party certification to substantiate"
	case model.ClaimTypeMisleading:
		return "Potentially misleading: must be backed by a recognized eco-label"
	default:
		return "Environmental claim detected: verification recommended"
	}
}

// ScanListing fetches a live listing page, strips it to visible text, and
// runs the full pipeline with the page text as the product description. The
// fetch respects robots.txt, including crawl delay.
func (p *Pipeline) ScanListing(ctx context.Context, rawURL string, sub model.ProductSubmission) (*model.Report, error) {
	html, finalURL, err := p.fetchPage(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	text, err := extract.VisibleText(html)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	sub.ProductDescription = text
	report := p.Analyze(sub)
	report.SourceURL = finalURL
	return report, nil
}

// fetchPage retrieves a listing page through the cache and robots checks
func (p *Pipeline) fetchPage(ctx context.Context, rawURL string) (html, finalURL string, err error) {
	key := cache.PageKey(rawURL)
	if p.pageCache != nil {
		if raw, found := p.pageCache.Get(key); found {
			return string(raw), rawURL, nil
		}
	}

	allowed, crawlDelay, err := p.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return "", "", fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return "", "", fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}
	if crawlDelay > 0 {
		select {
		case <-ctx.Done():
			return "", "", ctx.Err()
		case <-time.After(crawlDelay):
		}
	}

	result, err := p.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return "", "", err
	}

	if p.pageCache != nil {
		_ = p.pageCache.Set(key, []byte(result.HTML), 0)
	}
	return result.HTML, result.FinalURL, nil
}

// Store exposes the ledger for query commands
func (p *Pipeline) Store() *ledger.Ledger {
	return p.store
}

// RenderReport writes the report to the configured outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	return p.renderer.Render(report, jsonPath, mdPath, verbose)
}
