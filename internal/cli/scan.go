package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenlens/greenlens/internal/ledger"
	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/pipeline"
)

var (
	scanTimeout time.Duration
	userAgent   string
	maxBytes    int64
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch a live listing page and analyze it for greenwashing",
	Long: `Scan fetches a product listing page, strips it to visible text, and
runs the full analysis pipeline on it:
- robots.txt is honored, including crawl delay
- fetched pages are cached
- the page text is analyzed exactly like a submitted description

Example:
  greenlens scan https://marketplace.example/listing/123 --company "EcoCo" --category timber
  greenlens scan https://marketplace.example/listing/123 --json report.json --md report.md`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Submission context flags
	scanCmd.Flags().StringVar(&company, "company", "", "seller company name (required)")
	scanCmd.Flags().StringVar(&product, "product", "", "product title")
	scanCmd.Flags().StringVar(&category, "category", "", "product category")
	scanCmd.Flags().StringSliceVar(&certs, "cert", nil, "claimed certification (repeatable)")

	// Output flags
	scanCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	scanCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// HTTP flags
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 30*time.Second, "overall scan timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", "Greenlens/0.1 (+https://github.com/greenlens/greenlens)", "HTTP User-Agent")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	scanCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	scanCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	scanCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	scanCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	_ = scanCmd.MarkFlagRequired("company")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", scanTimeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = scanTimeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	data, err := loadReferenceData(cfg)
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg, data, ledger.New())

	sub := model.ProductSubmission{
		CompanyName:           company,
		ProductTitle:          product,
		ProductCategory:       category,
		ClaimedCertifications: certs,
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Fetching listing...\n")
	}

	report, err := p.ScanListing(ctx, url, sub)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Found %d environmental claims\n", report.NLPAnalysis.ClaimCount)
		fmt.Fprintf(os.Stderr, "✓ Checked %d certifications\n", len(report.CertAnalysis.VerificationResults))
		fmt.Fprintf(os.Stderr, "✓ Risk score: %d/100 (%s)\n", report.RiskAssessment.RiskScore, report.RiskAssessment.Verdict)
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
