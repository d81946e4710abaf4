package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mindcube/mindcube/benchmark"
)

func benchmarkCmd(configPath *string) *cobra.Command {
	var skipCharts bool

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Time the OLAP query catalog against the generated graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runBenchmark(cmd.Context(), cfg.Output.TBox, cfg.Output.ABox,
				cfg.Benchmark.Sizes,
				cfg.Benchmark.EfficiencyChart, cfg.Benchmark.ScalabilityChart,
				skipCharts)
		},
	}

	cmd.Flags().BoolVar(&skipCharts, "no-charts", false, "Print the report without rendering chart images")

	return cmd
}

func runBenchmark(ctx context.Context, tboxPath, aboxPath string, sizes []int, efficiencyChart, scalabilityChart string, skipCharts bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	slog.Info("loading graph", "tbox", tboxPath, "abox", aboxPath)
	g, err := benchmark.Load(tboxPath, aboxPath)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}
	slog.Info("graph loaded", "triples", len(g.Triples))

	runner := benchmark.NewRunner(sizes, slog.Default())
	report, err := runner.Run(ctx, g)
	if err != nil {
		return err
	}

	if err := report.Write(os.Stdout); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if skipCharts {
		return nil
	}

	if err := benchmark.RenderEfficiency(efficiencyChart, report.Full); err != nil {
		return fmt.Errorf("render efficiency chart: %w", err)
	}
	if err := benchmark.RenderScalability(scalabilityChart, report); err != nil {
		return fmt.Errorf("render scalability chart: %w", err)
	}
	slog.Info("charts written", "efficiency", efficiencyChart, "scalability", scalabilityChart)

	return nil
}
