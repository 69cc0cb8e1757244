package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/output"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var pretty bool

	cmd := &cobra.Command{
		Use:   "inspect <report.xlsx>",
		Short: "Print the channel matrix of a generated report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", args[0])
			}

			report, err := output.ReadXLSX(args[0])
			if err != nil {
				return fmt.Errorf("read report: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := output.ToJSON(report, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "%s %s\n", report.Identity.Provider, report.Identity.Year)
			fmt.Fprintln(out, renderMatrix(report.Matrix, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
