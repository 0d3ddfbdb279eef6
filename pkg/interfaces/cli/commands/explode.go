package commands

import (
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/avelis/bom/pkg/application/services/calc"
	"github.com/avelis/bom/pkg/domain/entities"
	"github.com/avelis/bom/pkg/interfaces/cli/output"
)

func newExplodeCommand(opts *options) *cobra.Command {
	var quantityText string
	var singleLevel bool

	cmd := &cobra.Command{
		Use:   "explode COMPONENT",
		Short: "Explode a BOM into total descendant quantities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := entities.ParseQuantity(quantityText)
			if err != nil {
				return err
			}

			engine, err := opts.loadEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			rootID := entities.ComponentID(args[0])

			var result *calc.ExplosionResult
			if singleLevel {
				items, err := engine.ExplodeSingleLevel(rootID, quantity)
				if err != nil {
					return err
				}
				result = singleLevelResult(rootID, quantity, items)
			} else {
				result, err = engine.Explode(rootID, quantity)
				if err != nil {
					return err
				}
			}

			return opts.emit(func(w io.Writer) error {
				return output.WriteExplosion(w, result, opts.format)
			})
		},
	}

	cmd.Flags().StringVarP(&quantityText, "quantity", "q", "1", "quantity to manufacture")
	cmd.Flags().BoolVar(&singleLevel, "single-level", false, "expand direct children only")
	return cmd
}

func singleLevelResult(rootID entities.ComponentID, quantity decimal.Decimal, items []calc.ExplosionItem) *calc.ExplosionResult {
	maxDepth := 0
	if len(items) > 0 {
		maxDepth = 1
	}
	return &calc.ExplosionResult{
		RootID:       rootID,
		RequestedQty: quantity,
		Items:        items,
		MaxDepth:     maxDepth,
	}
}
