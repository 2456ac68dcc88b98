package main

import (
	"os"

	"github.com/Mountain311/business-news-processor/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
