// Package cli implements the greenlens command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenlens/greenlens/internal/model"
	"github.com/greenlens/greenlens/internal/refdata"
)

var (
	cfgFile     string
	refdataFile string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "greenlens",
	Short: "Greenlens - Greenwashing claim detection for marketplace listings",
	Long: `Greenlens analyzes product listings for greenwashing: environmental
claims that sound substantiated but are not.

It cross-references every claimed certification against a registry,
flags vague and absolute eco-claims, detects suspicious marketing
language, and produces a transparent risk score where every point
traces to a specific claim, certificate check, or linguistic pattern.

Greenlens scores substantiation, not environmental impact.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Greenlens.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("greenlens v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.greenlens/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&refdataFile, "refdata", "", "reference data override file (taxonomy, registry, SDG table)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("reference.file", rootCmd.PersistentFlags().Lookup("refdata"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.greenlens")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match GREENLENS_*
	viper.SetEnvPrefix("GREENLENS")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadReferenceData loads the claim taxonomy, certificate registry, and SDG
// tables, applying the override file when one is configured. Malformed
// reference data is a fatal error.
func loadReferenceData(cfg *model.Config) (*refdata.Set, error) {
	path := refdataFile
	if path == "" {
		path = cfg.Reference.File
	}
	if path == "" {
		path = viper.GetString("reference.file")
	}

	data, err := refdata.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}
	if verbose && path != "" {
		fmt.Fprintf(os.Stderr, "Using reference data: %s\n", path)
	}
	return data, nil
}
