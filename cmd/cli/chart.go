package main

import (
	"fmt"

	"fundplanner/cmd"

	"github.com/spf13/cobra"
)

func newChartCommand(opts *rootOptions) *cobra.Command {
	flags := &planFlags{}
	var dir string
	c := &cobra.Command{
		Use:   "chart",
		Short: "Render price trends, the selected group and projected values as png",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := initialize(opts)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			if dir == "" {
				dir = handler.Config.Export.ChartDir
			}
			params, err := flags.params(c, handler)
			if err != nil {
				return err
			}

			ctx := commandContext(c, handler)
			dataset, err := handler.DatasetService.Load(ctx)
			if err != nil {
				return err
			}
			result, err := runPlan(ctx, handler, *params)
			if err != nil {
				return err
			}

			charts := map[string]func() ([]byte, error){
				"price_trends.png": func() ([]byte, error) { return handler.ChartRepository.PriceTrends(*dataset) },
			}
			if !result.Selection.IsEmpty() {
				charts["selection.png"] = func() ([]byte, error) {
					return handler.ChartRepository.SelectionComparison(result.Selection)
				}
			}
			if result.Projection != nil {
				charts["projection.png"] = func() ([]byte, error) {
					return handler.ChartRepository.Projection(*result.Projection)
				}
			} else {
				handler.Logger.Warnw("skipping projection chart", "reason", *result.ProjectionError)
			}

			for name, render := range charts {
				png, err := render()
				if err != nil {
					return err
				}
				path, err := handler.ChartRepository.Save(dir, name, png)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), path)
			}
			return nil
		},
	}
	flags.register(c)
	c.Flags().StringVar(&dir, "dir", "", "output directory, overrides the config")
	return c
}
