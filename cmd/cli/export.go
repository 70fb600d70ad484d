package main

import (
	"fmt"
	"os"

	"fundplanner/cmd"
	"fundplanner/internal/renderer"

	"github.com/spf13/cobra"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	flags := &planFlags{}
	var allocationPath, statisticsPath string
	c := &cobra.Command{
		Use:   "export",
		Short: "Write the allocation weights and instrument statistics as csv",
		RunE: func(c *cobra.Command, args []string) error {
			handler, result, err := loadAndPlan(c, opts, flags)
			if handler != nil {
				defer cmd.CloseDependencies(handler)
			}
			if err != nil {
				return err
			}

			if allocationPath == "" {
				allocationPath = handler.Config.Export.AllocationPath
			}
			if statisticsPath == "" {
				statisticsPath = handler.Config.Export.StatisticsPath
			}

			if err := handler.ExportRepository.SaveAllocation(allocationPath, result.Allocation); err != nil {
				return err
			}
			handler.Logger.Infow("investment ratios saved successfully", "path", allocationPath, "instruments", len(result.Allocation.Weights))

			if err := handler.ExportRepository.SaveStatistics(statisticsPath, result.Statistics); err != nil {
				return err
			}
			handler.Logger.Infow("instrument statistics saved successfully", "path", statisticsPath)

			fmt.Fprintf(c.OutOrStdout(), "wrote %s and %s\n", allocationPath, statisticsPath)
			return nil
		},
	}
	flags.register(c)
	c.Flags().StringVar(&allocationPath, "allocation-out", "", "allocation csv path, overrides the config")
	c.Flags().StringVar(&statisticsPath, "statistics-out", "", "statistics csv path, overrides the config")
	return c
}

func newShowAllocationCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show-allocation [file]",
		Short: "Print a previously exported allocation csv",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := initialize(opts)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			path := handler.Config.Export.AllocationPath
			if len(args) == 1 {
				path = args[0]
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer f.Close()

			plan, err := handler.ExportRepository.ReadAllocation(f)
			if err != nil {
				return err
			}
			renderer.New(c.OutOrStdout(), handler.Config.Plan.Currency).Allocation(*plan)
			return nil
		},
	}
}
