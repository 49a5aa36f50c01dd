package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airboard/internal/cli"
	"github.com/Domenick1991/airboard/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		l := logger.GetLogger()
		l.Error().Err(err).Send()
		stop()
		os.Exit(1)
	}
}
