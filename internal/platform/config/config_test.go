// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lookeasy/internal/platform/config"
)

/*
TestLoad_Defaults verifies defaults when no variable and no .env file exist.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.False(t, cfg.ExposeResetToken)
	assert.False(t, cfg.IsProduction())
}

/*
TestLoad_EnvFile reads values from a .env file.
*/
func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_DRIVER=memory\nBCRYPT_COST=4\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("STORE_DRIVER")
		os.Unsetenv("BCRYPT_COST")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 4, cfg.BcryptCost)
}

/*
TestLoad_RedisRequiresURL rejects a redis driver without REDIS_URL.
*/
func TestLoad_RedisRequiresURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

/*
TestLoad_UnknownDriver rejects unsupported drivers.
*/
func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "localstorage")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

/*
TestLoad_ProductionRefusesTokenExposure keeps reset tokens out of production output.
*/
func TestLoad_ProductionRefusesTokenExposure(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("EXPOSE_RESET_TOKEN", "true")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "EXPOSE_RESET_TOKEN")

	t.Setenv("EXPOSE_RESET_TOKEN", "false")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
