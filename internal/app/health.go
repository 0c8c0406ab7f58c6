// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package app

import (
	"context"
	"log/slog"

	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
)

// Check is the outcome of one readiness check.
type Check struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Health summarizes the state of the store.
type Health struct {
	Status  string  `json:"status"`
	Driver  string  `json:"driver"`
	Version string  `json:"version"`
	Checks  []Check `json:"checks"`
}

// Health checks the store and compares the stored schema version.
//
// Status is "ready" when every check passes and "degraded" otherwise.
func (a *App) Health(ctx context.Context) Health {
	report := Health{Status: "ready", Driver: a.Config.StoreDriver, Version: constants.DBVersion}

	storage := Check{Name: "store", OK: true}
	if _, err := kv.Exists(ctx, a.Store, constants.KeySettings); err != nil {
		storage.OK = false
		storage.Error = err.Error()
		a.Logger.Error("readiness_check_failed", slog.String("dependency", "store"), slog.Any("error", err))
	}
	report.Checks = append(report.Checks, storage)

	version := Check{Name: "version", OK: true}
	if storage.OK {
		stored, found, err := a.Settings.Stored(ctx)
		switch {
		case err != nil:
			version.OK = false
			version.Error = err.Error()
		case !found:
			version.OK = false
			version.Error = "store not initialized"
		case stored.Sistema.Versao != constants.DBVersion:
			version.OK = false
			version.Error = "stored version " + stored.Sistema.Versao
		}
		report.Checks = append(report.Checks, version)
	}

	for _, check := range report.Checks {
		if !check.OK {
			report.Status = "degraded"
		}
	}
	return report
}
