package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/done/internal/host"
	"github.com/GriffinCanCode/done/internal/infrastructure/config"
	"github.com/GriffinCanCode/done/internal/infrastructure/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "done: %v\n", err)
		return host.ExitFatal
	}

	logger, err := logging.New(logging.NewConfig(cfg.Logging.Level, cfg.Logging.Development))
	if err != nil {
		fmt.Fprintf(os.Stderr, "done: failed to create logger: %v\n", err)
		return host.ExitFatal
	}
	defer logger.Sync()

	// Handle interrupts: the running script is stopped and the engine shut down
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return host.New(cfg, logger).Run(ctx)
}
