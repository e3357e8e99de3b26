package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bawdo/gotruth"
	"github.com/bawdo/gotruth/visitors"
)

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot [file]",
		Short: "Print a program's expression trees as Graphviz DOT",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			prog, err := gotruth.Parse(text)
			if err != nil {
				return reportFormula(cmd.ErrOrStderr(), err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), visitors.Dot(prog))
			return nil
		},
	}
}
