package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chansynth-go/pkg/chansynth"
	"github.com/ukaji3/chansynth-go/pkg/chansynth/output"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var catalogPath string
	var outputPath string
	var asJSON bool
	var pretty bool

	cmd := &cobra.Command{
		Use:   "render <document.tsv>",
		Short: "Build the report for a single lineup document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := ctx.options()
			if err != nil {
				return err
			}

			pair := opts.Naming.Pair(args[0])
			if catalogPath != "" {
				pair.CatalogPath = catalogPath
			}
			if outputPath != "" {
				pair.OutputPath = outputPath
			}

			report, err := chansynth.ProcessPair(pair, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !asJSON {
				fmt.Fprintln(out, "Generated "+pair.OutputPath)
				return nil
			}
			data, err := output.ToJSON(report, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Section catalog path (default: derived from the document name)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report path (default: derived from the document name)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
