package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mountain311/business-news-processor/internal/core"
	"github.com/Mountain311/business-news-processor/internal/feeds"
	"github.com/Mountain311/business-news-processor/internal/pipeline"
	"github.com/Mountain311/business-news-processor/internal/render"
	"github.com/Mountain311/business-news-processor/internal/tui"
)

var (
	inputFile   string
	outputJSON  bool
	interactive bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Fetch, classify, and tag news items",
	Long: `Fetch items from the configured feeds (or read them from a JSON file),
run the classification pipeline, and print the surviving items.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Catalogs and models are built fully before any item is
		// processed; a failure here aborts the run.
		processor, err := pipeline.New(pipeline.Config{
			Companies: cfg.Catalogs.Companies,
			Topics:    cfg.Catalogs.Topics,
			Workers:   cfg.Pipeline.Workers,
		})
		if err != nil {
			return fmt.Errorf("initialize pipeline: %w", err)
		}

		ctx := cmd.Context()

		var items []core.RawItem
		if inputFile != "" {
			items, err = readItems(inputFile)
			if err != nil {
				return err
			}
		} else {
			fetcher := feeds.NewFetcher(time.Duration(cfg.Feeds.TimeoutSeconds) * time.Second)
			items = fetcher.FetchAll(ctx, cfg.Feeds.URLs)
		}

		processed, err := processor.ProcessAll(ctx, items)
		if err != nil {
			return err
		}

		switch {
		case outputJSON:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(processed)
		case interactive:
			return tui.Run(processed)
		default:
			fmt.Print(render.Items(processed))
			return nil
		}
	},
}

// readItems loads raw items from a JSON array file.
func readItems(path string) ([]core.RawItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}
	var items []core.RawItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse items file %s: %w", path, err)
	}
	return items, nil
}

func init() {
	processCmd.Flags().StringVar(&inputFile, "file", "", "read raw items from a JSON file instead of fetching feeds")
	processCmd.Flags().BoolVar(&outputJSON, "json", false, "emit processed items as JSON")
	processCmd.Flags().BoolVar(&interactive, "tui", false, "browse results interactively")
	rootCmd.AddCommand(processCmd)
}
