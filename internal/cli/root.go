// Package cli wires the cobra command tree for the newsproc binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Mountain311/business-news-processor/internal/config"
	"github.com/Mountain311/business-news-processor/internal/logger"
)

var (
	cfgFile  string
	logLevel string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "newsproc",
	Short: "newsproc classifies business news from syndicated feeds",
	Long: `newsproc ingests RSS/Atom news items and decides, per item, whether it
is business-relevant, which tracked companies it concerns, which topical
alerts it matches, what its sentiment is, and which keywords summarize it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.App.LogLevel = logLevel
		}
		logger.Init(cfg.App.LogLevel)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./newsproc.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}
