package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tiliavir/trivial-mood-tracker/internal/api"
	"github.com/Tiliavir/trivial-mood-tracker/internal/digest"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mood log over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), a, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

func runServe(parent context.Context, a *app, addr string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if addr == "" {
		addr = a.cfg.Serve.Addr
	}

	if schedule := a.cfg.Digest.Schedule; schedule != "" {
		d, err := digest.New(schedule, a.engine, digest.LogSink(a.logger), a.logger)
		if err != nil {
			return err
		}
		if err := d.Start(ctx); err != nil {
			return err
		}
		defer d.Stop()
	}

	srv := api.NewServer(api.Config{Addr: addr}, a.engine, a.logger)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	a.logger.Info("server stopped", zap.String("addr", addr))
	return nil
}
