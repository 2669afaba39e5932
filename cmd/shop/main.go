package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmehra2102/retail-shop/internal/config"
	"github.com/dmehra2102/retail-shop/internal/shop/application"
	shopdom "github.com/dmehra2102/retail-shop/internal/shop/domain"
	"github.com/dmehra2102/retail-shop/pkg/logging"
	"github.com/dmehra2102/retail-shop/pkg/outbox"
	"github.com/dmehra2102/retail-shop/pkg/shutdown"
	"github.com/dmehra2102/retail-shop/pkg/tracing"
)

func main() {
	boot := logging.New(os.Stderr, slog.LevelInfo, "json")
	cfg := config.Load(boot.Warn)
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := run(ctx, cfg, log, os.Stdout, os.Stderr); err != nil {
		log.Error("shop demo failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger, stdout, stderr io.Writer) error {
	var traceOut io.Writer
	if cfg.TraceStdout {
		traceOut = stderr
	}
	tp, err := tracing.Init(ctx, "shop", traceOut, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = tp.Shutdown(shutdownCtx)
	}()

	store := outbox.NewMemoryStore()
	svc := application.NewService(log, shopdom.NewShop(cfg.ShopName), store, application.Options{
		Strict: cfg.Mode == config.ModeStrict,
	})
	log.Info("shop opened", "name", cfg.ShopName, "mode", cfg.Mode)

	if err := demo(ctx, svc, stdout); err != nil {
		return err
	}

	if !cfg.OutboxFlush {
		return nil
	}
	relay := outbox.NewRelay(log, store, outbox.NewDispatcher(log, outbox.NewLogSink(log)), "shop-relay")
	sent, err := relay.Flush(ctx)
	if err != nil {
		return err
	}
	log.Info("domain events flushed", "sent", sent, "pending", store.Pending())
	return nil
}
