package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airboard/config"
	"github.com/Domenick1991/airboard/internal/bootstrap"
	"github.com/Domenick1991/airboard/internal/logger"
)

func main() {
	logger.SetLogLevel(2)
	l := logger.GetLogger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		l.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	flightService, cleanup, err := bootstrap.NewFlightService(ctx, cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("init flight service")
	}
	defer cleanup()

	if err := bootstrap.Run(ctx, cfg, flightService); err != nil {
		l.Error().Err(err).Msg("server error")
	}
}
