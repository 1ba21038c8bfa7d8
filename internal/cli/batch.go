package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenlens/greenlens/internal/ledger"
	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/pipeline"
	"github.com/greenlens/greenlens/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	rps          float64
	burst        int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple submissions from a YAML file in parallel",
	Long: `Batch processes a YAML file of product submissions concurrently:
- Each entry is analyzed by the full pipeline
- Entries with a listing_url are fetched live, rate-limited per domain
- Individual JSON and Markdown reports are written per submission
- All submissions feed one seller ledger; the regulator early-alert
  list and platform statistics are printed at the end

Example:
  greenlens batch submissions.yaml
  greenlens batch submissions.yaml --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./greenlens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&rps, "rps", 2, "max listing fetches per second per domain")
	batchCmd.Flags().IntVar(&burst, "burst", 5, "listing fetch burst size per domain")

	// Inherit flags from scan command
	batchCmd.Flags().DurationVar(&scanTimeout, "scan-timeout", 30*time.Second, "timeout for individual listing fetches")
	batchCmd.Flags().StringVar(&userAgent, "ua", "Greenlens/0.1 (+https://github.com/greenlens/greenlens)", "HTTP User-Agent")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Greenlens Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = scanTimeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.Workers = concurrency
	cfg.RateLimit.RequestsPerSecond = rps
	cfg.RateLimit.BurstSize = burst
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	data, err := loadReferenceData(cfg)
	if err != nil {
		return err
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// One ledger for the whole batch: the regulator views at the end
	// aggregate every submission
	store := ledger.New()
	p := pipeline.NewPipeline(cfg, data, store)

	// Create batch processor
	processor := worker.NewBatchProcessor(p, concurrency, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize)

	// Process submissions
	fmt.Fprintf(os.Stderr, "⚙️  Reading submissions from file...\n")
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d submissions\n", len(results))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Analyzing with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	// Process results
	successCount := 0
	failureCount := 0

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	for _, result := range results {
		label := result.Company + "/" + result.Product
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", label, result.Error)
			continue
		}

		successCount++

		// Generate output file names
		slug := sanitizeFilename(result.Company + "-" + result.Product)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		// Render report
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", label, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", label, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (risk: %d/100, %s)\n", label,
			result.Report.RiskAssessment.RiskScore, result.Report.RiskAssessment.Verdict)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d submissions\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	printAlerts(store.EarlyAlerts())
	printStats(store.Stats())

	return nil
}

// printAlerts prints the regulator early-alert list
func printAlerts(alerts []model.SellerAlert) {
	if len(alerts) == 0 {
		fmt.Println("No sellers at MEDIUM or HIGH alert level.")
		fmt.Println()
		return
	}

	fmt.Printf("Early alerts (%d):\n\n", len(alerts))
	for _, a := range alerts {
		fmt.Printf("  [%s] %s\n", a.AlertLevel, a.Company)
		fmt.Printf("        %d/%d submissions greenwashed, avg risk %d\n",
			a.GreenwashedCount, a.TotalSubmissions, a.AvgRiskScore)
		for _, rp := range a.RecurringPatterns {
			fmt.Printf("        recurring: %q (%d times)\n", rp.Phrase, rp.Occurrences)
		}
		fmt.Printf("        action: %s\n", a.RecommendedAction)
		fmt.Println()
	}
}

// printStats prints the platform-wide overview
func printStats(stats model.PlatformStats) {
	fmt.Println("Platform statistics:")
	fmt.Printf("  Scanned:           %d\n", stats.TotalScanned)
	fmt.Printf("  Greenwashed:       %d\n", stats.Greenwashed)
	fmt.Printf("  Under review:      %d\n", stats.UnderReview)
	fmt.Printf("  Verified:          %d\n", stats.Verified)
	fmt.Printf("  High-risk sellers: %d\n", stats.HighRiskSellers)
	fmt.Printf("  Avg risk score:    %d\n", stats.AvgRiskScore)
	fmt.Println()
}

// sanitizeFilename sanitizes a string for use as a filename
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(s)

	// Limit length
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
