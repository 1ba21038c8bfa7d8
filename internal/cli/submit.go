package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/greenlens/greenlens/internal/ledger"
	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	noCache     bool
	noFooter    bool
	company     string
	product     string
	description string
	category    string
	certs       []string
	submitFile  string
)

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Analyze a single product submission for greenwashing",
	Long: `Submit runs the full analysis pipeline on one product:
- Extract environmental claims against the taxonomy
- Verify claimed certifications against the registry
- Detect linguistic red flags and AI-generated marketing copy
- Calculate a transparent risk score and verdict

The submission comes from flags or from a YAML file.

Example:
  greenlens submit --company "EcoCo" --description "100% eco-friendly bamboo" --category timber
  greenlens submit --file submission.yaml --json report.json --md report.md`,
	Args: cobra.NoArgs,
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	// Submission flags
	submitCmd.Flags().StringVar(&company, "company", "", "seller company name")
	submitCmd.Flags().StringVar(&product, "product", "", "product title")
	submitCmd.Flags().StringVar(&description, "description", "", "product description text")
	submitCmd.Flags().StringVar(&category, "category", "", "product category (timber, textiles, food, ...)")
	submitCmd.Flags().StringSliceVar(&certs, "cert", nil, "claimed certification (repeatable)")
	submitCmd.Flags().StringVar(&submitFile, "file", "", "read the submission from a YAML file instead of flags")

	// Output flags
	submitCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	submitCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path")
	submitCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis cache")
	submitCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	sub, err := readSubmission()
	if err != nil {
		return err
	}

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	data, err := loadReferenceData(cfg)
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg, data, ledger.New())

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing submission from %s...\n", sub.CompanyName)
	}

	report := p.Analyze(sub)

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

func readSubmission() (model.ProductSubmission, error) {
	var sub model.ProductSubmission

	if submitFile != "" {
		data, err := os.ReadFile(submitFile)
		if err != nil {
			return sub, fmt.Errorf("read submission file: %w", err)
		}
		if err := yaml.Unmarshal(data, &sub); err != nil {
			return sub, fmt.Errorf("parse submission file: %w", err)
		}
	} else {
		sub = model.ProductSubmission{
			CompanyName:           company,
			ProductTitle:          product,
			ProductDescription:    description,
			ProductCategory:       category,
			ClaimedCertifications: certs,
		}
	}

	if strings.TrimSpace(sub.CompanyName) == "" {
		return sub, fmt.Errorf("company name is required")
	}
	if strings.TrimSpace(sub.ProductDescription) == "" {
		return sub, fmt.Errorf("product description is required")
	}
	return sub, nil
}
