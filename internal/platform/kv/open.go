// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/lookeasy/internal/platform/config"
	redisstore "github.com/taibuivan/lookeasy/internal/platform/redis"
)

// Open builds the backend selected by cfg.StoreDriver.
//
// The returned store is the single instance of the process. Close it on shutdown.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		logger.Warn("memory_store_selected", slog.String("note", "data is lost on exit"))
		return NewMemory(), nil

	case config.DriverSQLite:
		return OpenSQLite(cfg.StorePath, logger)

	case config.DriverRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisURL, logger)
		if err != nil {
			return nil, err
		}
		return NewRedis(client, cfg.RedisPrefix), nil

	default:
		return nil, fmt.Errorf("kv: unknown store driver %q", cfg.StoreDriver)
	}
}
