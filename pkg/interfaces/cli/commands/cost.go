package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/avelis/bom/pkg/domain/entities"
	"github.com/avelis/bom/pkg/interfaces/cli/output"
)

func newCostCommand(opts *options) *cobra.Command {
	var quantityText string
	var drivers bool

	cmd := &cobra.Command{
		Use:   "cost COMPONENT",
		Short: "Roll up a component's total cost",
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

			id := entities.ComponentID(args[0])
			total, err := engine.TotalCost(id, quantity)
			if err != nil {
				return err
			}

			report := &output.CostReport{
				ComponentID: id,
				Quantity:    quantity,
				TotalCost:   total,
			}
			if drivers {
				costDrivers, err := engine.CostDrivers(id)
				if err != nil {
					return err
				}
				report.Drivers = costDrivers
			}
			return opts.emit(func(w io.Writer) error {
				return output.WriteCost(w, report, opts.format)
			})
		},
	}

	cmd.Flags().StringVarP(&quantityText, "quantity", "q", "1", "quantity to manufacture")
	cmd.Flags().BoolVar(&drivers, "drivers", false, "include per-component cost drivers")
	return cmd
}
