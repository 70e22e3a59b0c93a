package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ansh3878/matrix-jobs/internal/aggregate"
	"github.com/Ansh3878/matrix-jobs/internal/network"
	"github.com/Ansh3878/matrix-jobs/internal/provider"
	"github.com/Ansh3878/matrix-jobs/internal/server"
)

const shutdownTimeout = 10 * time.Second

type ServeCmd struct {
	Addr string `help:"Listen address (host:port)." env:"MATRIXJOBS_ADDR"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	addr := firstNonEmpty(s.Addr, ctx.Config.ListenAddr)

	client, err := network.NewClient()
	if err != nil {
		return err
	}

	providers := provider.Registry(ctx.Config, client)
	for _, p := range providers {
		ctx.Logger.Info().
			Str("provider", p.Name()).
			Bool("enabled", p.Enabled()).
			Msg("provider registered")
	}

	aggregator := aggregate.New(providers, ctx.Logger)
	srv := server.New(addr, aggregator, ctx.Logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		ctx.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
