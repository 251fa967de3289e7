package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"milkman/pkg/logger"
)

func (a *CLIApp) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
}

func (a *CLIApp) runServe(cmd *cobra.Command, _ []string) error {
	application, err := a.open(cmd, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer application.Close()

	log := logger.WithComponent(application.Log, logger.ComponentApp)
	e := application.Echo()
	addr := ":" + application.Config.Port

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting milkman server", "addr", addr, "version", a.version)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", "timeout", application.Config.ShutdownTimeout.String())
		sctx, cancel := context.WithTimeout(context.Background(), application.Config.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped gracefully")
	return nil
}
