package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bawdo/gotruth/api"
)

const (
	addrEnv                = "GOTRUTH_ADDR"
	defaultAddr            = ":8080"
	defaultShutdownTimeout = 10 * time.Second
)

func newServeCmd() *cobra.Command {
	var (
		addr         string
		maxVariables int
		timeout      time.Duration
		quiet        bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the truth-table API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []api.Option{api.WithMaxVariables(maxVariables), api.WithTimeout(timeout)}
			if !quiet {
				opts = append(opts, api.WithRequestLog())
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           api.New(opts...),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, srv)
		},
	}
	defAddr := defaultAddr
	if v := os.Getenv(addrEnv); v != "" {
		defAddr = v
	}
	cmd.Flags().StringVar(&addr, "addr", defAddr, "listen address (env "+addrEnv+")")
	cmd.Flags().IntVar(&maxVariables, "max-variables", api.DefaultMaxVariables, "per-request variable limit (0 for no limit)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request timeout")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "disable the request log")
	return cmd
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("Serving API.")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down.")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
