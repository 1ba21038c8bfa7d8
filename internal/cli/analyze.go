package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greenlens/greenlens/internal/ledger"
	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/pipeline"
)

var (
	analyzeFile string
	analyzeJSON bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Check draft listing text for greenwashing warnings",
	Long: `Analyze runs claim extraction only, without certificate checks or
scoring. It is the typing-time path: sellers get immediate warnings
about vague, absolute, or misleading phrases while drafting a listing.

Example:
  greenlens analyze "Our 100% eco-friendly bamboo utensils"
  greenlens analyze --file draft.txt --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "read the text from a file instead of the argument")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print warnings as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var text string
	switch {
	case analyzeFile != "":
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return fmt.Errorf("read text file: %w", err)
		}
		text = string(data)
	case len(args) == 1:
		text = args[0]
	default:
		return fmt.Errorf("provide text as an argument or via --file")
	}

	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is empty")
	}

	cfg := model.DefaultConfig()
	data, err := loadReferenceData(cfg)
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg, data, ledger.New())
	result := p.AnalyzeText(text)
	warnings := pipeline.LiveWarnings(result)

	if analyzeJSON {
		out, err := json.MarshalIndent(warnings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal warnings: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(warnings) == 0 {
		fmt.Println("No greenwashing indicators detected.")
		return nil
	}

	fmt.Printf("%d warning(s):\n\n", len(warnings))
	for _, w := range warnings {
		fmt.Printf("  [%s] %q\n", w.Type, w.Phrase)
		fmt.Printf("        %s\n", w.Warning)
	}
	if result.AIRisk.Risk != model.AIRiskLow {
		fmt.Printf("\nAI-generated text risk: %s (%d)\n", result.AIRisk.Risk, result.AIRisk.Score)
		for _, ind := range result.AIRisk.Indicators {
			fmt.Printf("  - %s\n", ind)
		}
	}
	return nil
}
