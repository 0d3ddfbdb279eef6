// Package commands wires the CLI subcommands around the calculation
// engine.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/avelis/bom/pkg/application/services/calc"
	"github.com/avelis/bom/pkg/interfaces/cli/data"
)

type options struct {
	input   string
	output  string
	format  string
	verbose bool
}

// NewRootCommand builds the bom CLI command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "bom",
		Short:         "BOM calculation engine",
		Long:          "Explode multi-level bills of materials, roll up costs, and run where-used queries over a component graph loaded from JSON or CSV.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	root.PersistentFlags().StringVarP(&opts.input, "input", "i", "", "input file (JSON or CSV)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "output file (prints to stdout if not specified)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "table", "output format: table, json, csv")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	_ = root.MarkPersistentFlagRequired("input")

	root.AddCommand(
		newExplodeCommand(opts),
		newCostCommand(opts),
		newWhereUsedCommand(opts),
		newValidateCommand(opts),
	)

	return root
}

// loadEngine loads the input dataset into a fresh engine instance.
func (o *options) loadEngine() (*calc.Engine, error) {
	slog.Debug("loading dataset", "path", o.input)

	repo, err := data.Load(o.input)
	if err != nil {
		return nil, err
	}

	engine, err := calc.NewEngine(repo, calc.Config{CacheSize: 256})
	if err != nil {
		return nil, err
	}

	slog.Debug("dataset loaded",
		"components", len(repo.Components()),
		"bom_lines", len(repo.AllItems()))
	return engine, nil
}

// emit renders a result to stdout or to the --output file.
func (o *options) emit(render func(w io.Writer) error) error {
	if o.output == "" {
		return render(os.Stdout)
	}

	file, err := os.Create(o.output)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", o.output, err)
	}
	defer file.Close()

	if err := render(file); err != nil {
		return err
	}
	slog.Debug("result written", "path", o.output)
	return nil
}
