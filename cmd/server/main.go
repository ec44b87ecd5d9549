package main

import (
	"context"
	"flag"

	"github.com/roverlab/waypointx/pkg/http"
	"github.com/roverlab/waypointx/pkg/http/usecases"
	"github.com/roverlab/waypointx/pkg/logger"
	"github.com/roverlab/waypointx/pkg/util"
	"go.uber.org/zap"
)

var (
	useRateLimit  = flag.Bool("use_rate_limit", false, "rate limit the planner api")
	planCacheSize = flag.Int("plan_cache_size", 1<<16, "solved course lru cache size")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Debug("no config file found, using defaults", zap.Error(err))
	}

	plannerService, err := usecases.NewPlannerService(logger, *planCacheSize)
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, plannerService)

	signal := http.GracefulShutdown()

	logger.Info("Waypointx Planner Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
