package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the loaded BOM for cycles, duplicates, and dangling references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.loadEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			result := engine.Validate()
			if len(result.Errors) == 0 {
				return opts.emit(func(w io.Writer) error {
					_, err := fmt.Fprintln(w, "BOM structure is valid")
					return err
				})
			}

			if err := opts.emit(func(w io.Writer) error {
				for _, message := range result.Errors {
					if _, err := fmt.Fprintln(w, message); err != nil {
						return err
					}
				}
				return nil
			}); err != nil {
				return err
			}
			return fmt.Errorf("BOM validation failed with %d errors", len(result.Errors))
		},
	}
}
