package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ergochat/readline"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/bawdo/gotruth/api"
)

const (
	engineEnv   = "GOTRUTH_ENGINE"
	dsnEnv      = "DATABASE_URL"
	historyFile = "~/.gotruth_history"
	prompt      = "gotruth> "
)

func newReplCmd() *cobra.Command {
	var (
		engine       string
		maxVariables int
	)
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Build programs line by line in an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess := NewSession(engine)
			sess.maxVariables = maxVariables
			defer sess.close()
			return runRepl(sess)
		},
	}
	cmd.Flags().StringVarP(&engine, "engine", "e", os.Getenv(engineEnv), "export dialect: postgres, mysql or sqlite (env "+engineEnv+")")
	cmd.Flags().IntVar(&maxVariables, "max-variables", api.DefaultMaxVariables, "refuse programs with more variables (0 for no limit)")
	return cmd
}

func historyPath() string {
	path, err := homedir.Expand(historyFile)
	if err != nil {
		log.WithError(err).Debug("No home directory, history disabled.")
		return ""
	}
	return path
}

func runRepl(sess *Session) error {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		AutoComplete:    &replCompleter{sess: sess},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer func() { _ = rl.Close() }()

	if dsn := os.Getenv(dsnEnv); dsn != "" {
		_, _ = fmt.Fprintf(sess.out, "[Config] Connecting via %s...\n", dsnEnv)
		if err := sess.Execute("connect " + dsn); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "  Warning: %s connect failed: %v\n", dsnEnv, err)
		}
	}

	_, _ = fmt.Fprintf(sess.out, "\nGotruth REPL (engine %s). Type 'help' for commands, 'exit' to quit.\n\n", sess.dialect.Name)

	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}
		if err := sess.Execute(line); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
	_, _ = fmt.Fprintln(sess.out)
	return nil
}
