// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command lookeasy is the entry point of the LookEasy data layer.
//
// # Startup Sequence
//
//  1. Parse the command line (global flags first).
//  2. Load configuration from the optional .env file and the environment.
//  3. Initialize the structured logger on stderr.
//  4. Open the configured store (sqlite, redis or memory).
//  5. Wire the components, bootstrap the store and run the command.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/lookeasy/internal/app"
	"github.com/taibuivan/lookeasy/internal/cli"
	"github.com/taibuivan/lookeasy/internal/platform/config"
	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/logger"
)

// startupTimeout bounds store connection so misconfiguration fails fast.
const startupTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, open, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// open loads configuration and opens the store for one command run.
func open(ctx context.Context, opts *cli.RootOptions) (*app.App, error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	// stdout carries command output, logs go to stderr.
	log := logger.NewWithWriter(os.Stderr, constants.AppName, cfg.Debug || opts.Verbose)
	slog.SetDefault(log)

	log.Debug("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("store_driver", cfg.StoreDriver),
	)

	startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	a, err := app.New(startupCtx, cfg, log)
	if err != nil {
		log.Error("startup_failure", slog.String("context", "open store"), slog.Any("error", err))
		return nil, err
	}
	return a, nil
}
