package cmd

import (
	"github.com/spf13/cobra"

	"loan-compare/config"
)

var rootCmd = &cobra.Command{
	Use:   "loancmp",
	Short: "Compare a regular home loan with an overdraft-linked home loan",
	Long: `loancmp prices an Indian home loan two ways: a regular EMI loan, and an
overdraft (offset) loan where surplus money parked in the linked account
cuts the interest charged.

It provides tools for:
  - Side by side comparison with fees, tax benefit and prepayments
  - Pricing the same loan at every bank in the rate table
  - Showing how much a larger initial deposit saves
  - Personalized rates from a borrower profile
  - An HTTP API with a free trial and payment wall`,
	SilenceUsage: true,
}

var (
	configPath string
	logLevel   string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (YAML or JSON); defaults are used when empty")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level")
}

// loadConfig reads the config file, applies .env and environment overrides
// and then the command line.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(configPath); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
