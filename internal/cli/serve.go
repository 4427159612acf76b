package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"payroll-engine/internal/handler"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve payroll calculations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	h := handler.New(a.logger, a.cfg.DefaultTenantID)
	server := &fasthttp.Server{
		Handler:            h.Handle,
		Name:               "payroll-engine",
		ReadTimeout:        a.cfg.ReadTimeout,
		WriteTimeout:       a.cfg.WriteTimeout,
		MaxRequestBodySize: a.cfg.MaxRequestBodyBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Payroll engine starting", zap.String("addr", a.cfg.Addr()))
		errCh <- server.ListenAndServe(a.cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", a.cfg.Addr(), err)
	case <-ctx.Done():
	}

	a.logger.Info("Payroll engine shutting down")
	return server.Shutdown()
}
