package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bawdo/gotruth"
	"github.com/bawdo/gotruth/analysis"
	"github.com/bawdo/gotruth/api"
)

func newEvalCmd() *cobra.Command {
	var (
		format       string
		summary      bool
		maxVariables int
	)
	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Print the truth table of a program",
		Long: "Print the truth table of a program, one statement per line.\n" +
			"Reads stdin when no file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validFormat(format); err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			table, prog, err := gotruth.Evaluate(text, gotruth.WithMaxVariables(maxVariables))
			if err != nil {
				return reportFormula(cmd.ErrOrStderr(), err)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, formatTable(table.Header, cells(table, format)))
			if summary {
				writeSummary(out, analysis.Classify(table, prog))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "tf", "cell format: tf or 01")
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "classify each statement after the table")
	cmd.Flags().IntVar(&maxVariables, "max-variables", api.DefaultMaxVariables, "refuse programs with more variables (0 for no limit)")
	return cmd
}
