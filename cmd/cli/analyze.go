package main

import (
	"fundplanner/cmd"
	"fundplanner/internal/renderer"

	"github.com/spf13/cobra"
)

func newAnalyzeCommand(opts *rootOptions) *cobra.Command {
	flags := &planFlags{}
	c := &cobra.Command{
		Use:   "analyze",
		Short: "Print statistics, the selected group, allocation weights and projected values",
		RunE: func(c *cobra.Command, args []string) error {
			handler, result, err := loadAndPlan(c, opts, flags)
			if handler != nil {
				defer cmd.CloseDependencies(handler)
			}
			if err != nil {
				return err
			}

			renderer.New(c.OutOrStdout(), handler.Config.Plan.Currency).Plan(result)
			return nil
		},
	}
	flags.register(c)
	return c
}
