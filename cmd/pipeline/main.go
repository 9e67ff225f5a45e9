package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "translate-flow",
		Short:        "Chunked document translation with bounded concurrency",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")

	root.AddCommand(
		newWatchCmd(&configPath),
		newTranslateCmd(&configPath),
		newTonesCmd(&configPath),
	)
	return root
}
