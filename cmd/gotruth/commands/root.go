package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bawdo/gotruth"
)

var log = logrus.WithField("component", "gotruth")

var (
	errNoInput     = errors.New("no input (pass a file or pipe formulas on stdin)")
	errInvalidText = errors.New("invalid formula")
)

// NewRootCmd builds the gotruth command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gotruth",
		Short:         "Truth tables for propositional logic",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	var debug bool
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if debug {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}
	root.AddCommand(newEvalCmd(), newDotCmd(), newServeCmd(), newReplCmd())
	return root
}

// Execute executes root CLI command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

// readInput returns the text of the named file, or of stdin when no file is
// given. An interactive stdin is refused rather than waited on.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return "", errNoInput
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// reportFormula prints every message of a pipeline error and returns a
// short error for the exit status.
func reportFormula(w io.Writer, err error) error {
	_, _ = fmt.Fprintln(w, strings.Join(gotruth.Messages(err), "\n"))
	return errInvalidText
}
