package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenlens/greenlens/internal/ledger"
	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/pipeline"
	"github.com/greenlens/greenlens/internal/worker"
)

var regulatorJSON bool

// alertsCmd lists sellers at MEDIUM or HIGH alert level
var alertsCmd = &cobra.Command{
	Use:   "alerts <file>",
	Short: "List sellers flagged for repeated greenwashing",
	Long: `Alerts analyzes a YAML submissions file and prints the regulator
early-alert list: sellers whose greenwashing rate or count crossed the
MEDIUM or HIGH threshold, with their recurring claim phrases and a
recommended enforcement action.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := buildLedgerFromFile(args[0])
		if err != nil {
			return err
		}
		alerts := store.EarlyAlerts()
		if regulatorJSON {
			return printJSON(alerts)
		}
		printAlerts(alerts)
		return nil
	},
}

// auditCmd prints the full submission log, most recent first
var auditCmd = &cobra.Command{
	Use:   "audit <file>",
	Short: "Print the full submission audit log",
	Long: `Audit analyzes a YAML submissions file and prints every ledger
entry, most recent first: company, product, verdict, risk score, and
the claim phrases that were detected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := buildLedgerFromFile(args[0])
		if err != nil {
			return err
		}
		entries := store.Submissions()
		if regulatorJSON {
			return printJSON(entries)
		}
		fmt.Printf("%d submission(s):\n\n", len(entries))
		for _, e := range entries {
			fmt.Printf("  %s  %-15s  %3d/100  %s / %s\n",
				e.Timestamp.Format(time.RFC3339), e.Verdict, e.RiskScore, e.Company, e.Product)
		}
		return nil
	},
}

// statsCmd prints platform-wide statistics
var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Print platform-wide analysis statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := buildLedgerFromFile(args[0])
		if err != nil {
			return err
		}
		stats := store.Stats()
		if regulatorJSON {
			return printJSON(stats)
		}
		printStats(stats)
		return nil
	},
}

// sellerCmd shows one company's profile
var sellerCmd = &cobra.Command{
	Use:   "seller <company> <file>",
	Short: "Show one seller's submission history and alert level",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := buildLedgerFromFile(args[1])
		if err != nil {
			return err
		}
		profile := store.Profile(args[0])
		if regulatorJSON {
			return printJSON(profile)
		}
		printProfile(profile)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{alertsCmd, auditCmd, statsCmd, sellerCmd} {
		cmd.Flags().BoolVar(&regulatorJSON, "json", false, "print as JSON")
		rootCmd.AddCommand(cmd)
	}
}

// buildLedgerFromFile analyzes every submission in the file and returns the
// resulting ledger. Listing-URL entries are fetched live, so the regulator
// views see the same verdicts a batch run would produce.
func buildLedgerFromFile(file string) (*ledger.Ledger, error) {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose

	data, err := loadReferenceData(cfg)
	if err != nil {
		return nil, err
	}

	store := ledger.New()
	p := pipeline.NewPipeline(cfg, data, store)

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers,
		cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("process file: %w", err)
	}
	for _, result := range results {
		if result.Error != nil {
			return nil, fmt.Errorf("analyze %s/%s: %w", result.Company, result.Product, result.Error)
		}
	}
	return store, nil
}

func printProfile(profile model.SellerProfile) {
	fmt.Printf("Seller: %s\n", profile.Company)
	if profile.Message != "" {
		fmt.Printf("  %s\n", profile.Message)
		return
	}
	fmt.Printf("  Alert level:   %s\n", profile.AlertLevel)
	fmt.Printf("  Submissions:   %d (greenwashed %d, review %d, verified %d)\n",
		profile.TotalSubmissions, profile.GreenwashedCount, profile.ReviewCount, profile.VerifiedCount)
	fmt.Printf("  Avg risk:      %d/100\n", profile.AvgRiskScore)
	fmt.Printf("  First seen:    %s\n", profile.FirstSeen.Format(time.RFC3339))
	fmt.Printf("  Last seen:     %s\n", profile.LastSeen.Format(time.RFC3339))
	if len(profile.RecurringPhrases) > 0 {
		fmt.Println("  Claim phrases:")
		for phrase, count := range profile.RecurringPhrases {
			fmt.Printf("    %q: %d\n", phrase, count)
		}
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
