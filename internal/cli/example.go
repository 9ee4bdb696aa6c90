package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ympay/payroll-calculator/internal/config"
)

func newExampleCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print or write an example timesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			ts := parser.CreateExampleTimesheet()

			if outputFile != "" {
				if err := parser.SaveTimesheet(ts, outputFile); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "example timesheet written to %s\n", outputFile)
				return nil
			}

			data, err := parser.MarshalTimesheet(ts)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
