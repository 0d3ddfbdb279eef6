package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/avelis/bom/pkg/domain/entities"
	"github.com/avelis/bom/pkg/interfaces/cli/output"
)

func newWhereUsedCommand(opts *options) *cobra.Command {
	var transitive bool
	var rootsOnly bool

	cmd := &cobra.Command{
		Use:   "where-used COMPONENT",
		Short: "List the assemblies that consume a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.loadEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			id := entities.ComponentID(args[0])

			var usedIn []entities.ComponentID
			switch {
			case rootsOnly:
				usedIn, err = engine.RootAssemblies(id)
			case transitive:
				usedIn, err = engine.WhereUsedTransitive(id)
			default:
				usedIn, err = engine.WhereUsed(id)
			}
			if err != nil {
				return err
			}

			report := &output.WhereUsedReport{
				ComponentID: id,
				Transitive:  transitive || rootsOnly,
				UsedIn:      usedIn,
			}
			return opts.emit(func(w io.Writer) error {
				return output.WriteWhereUsed(w, report, opts.format)
			})
		},
	}

	cmd.Flags().BoolVar(&transitive, "transitive", false, "walk up to every ancestor, not just direct parents")
	cmd.Flags().BoolVar(&rootsOnly, "roots", false, "report only top-level assemblies")
	return cmd
}
