package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "Print the configured company and topic catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Companies (%d):\n", len(cfg.Catalogs.Companies))
		for _, name := range cfg.Catalogs.Companies {
			fmt.Printf("  %s\n", name)
		}
		fmt.Printf("\nTopics (%d):\n", len(cfg.Catalogs.Topics))
		for _, label := range cfg.Catalogs.Topics {
			fmt.Printf("  %s\n", label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogsCmd)
}
