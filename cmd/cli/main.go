package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	pricesPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "fundplanner",
		Short:        "Pick low risk, high growth instruments from closing prices and project a monthly investment plan",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to the yaml config")
	root.PersistentFlags().StringVar(&opts.pricesPath, "prices", "", "closing prices csv, overrides the config")

	root.AddCommand(
		newAnalyzeCommand(opts),
		newExportCommand(opts),
		newChartCommand(opts),
		newShowAllocationCommand(opts),
	)
	return root
}
