package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindcube/mindcube/dataset"
	"github.com/mindcube/mindcube/graph"
)

func generateCmd(configPath *string) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate TBox and ABox Turtle files from the survey CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if inputPath != "" {
				cfg.Input.Path = inputPath
			}
			return runGenerate(cfg.Input.Path, cfg.Output.TBox, cfg.Output.ABox)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Survey CSV path or glob pattern (overrides config)")

	return cmd
}

func runGenerate(inputPattern, tboxPath, aboxPath string) error {
	start := time.Now()

	input, err := dataset.Resolve(inputPattern)
	if err != nil {
		return err
	}

	slog.Info("reading dataset", "path", input)
	records, err := dataset.ReadFile(input)
	if err != nil {
		return err
	}
	slog.Info("dataset loaded", "records", len(records))

	// TBox is data-independent; build and write it first.
	if err := graph.WriteTurtleFile(tboxPath, graph.Schema()); err != nil {
		return fmt.Errorf("write tbox: %w", err)
	}
	slog.Info("schema graph written", "path", tboxPath)

	builder := graph.NewInstanceBuilder()
	builder.AddAll(records)

	triples := builder.Triples()
	if err := graph.WriteTurtleFile(aboxPath, triples); err != nil {
		return fmt.Errorf("write abox: %w", err)
	}
	slog.Info("instance graph written",
		"path", aboxPath,
		"triples", len(triples),
		"countries", builder.Countries().Len(),
		"elapsed", time.Since(start))

	return nil
}
