// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A '.env' file, when
present, is loaded first with 'joho/godotenv' and never overrides variables that
are already set in the process environment.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (store, auth) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store driver names accepted by STORE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// # Configuration Schema

// Config holds all runtime configuration for the LookEasy data layer.
type Config struct {

	// Runtime settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Key-value store backend
	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`
	StorePath   string `env:"STORE_PATH"   envDefault:"./data/lookeasy.db"`

	// Redis backend (STORE_DRIVER=redis)
	RedisURL    string `env:"REDIS_URL"`
	RedisPrefix string `env:"REDIS_PREFIX" envDefault:"lookeasy:"`

	// Credential hashing
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Login throttle (attempts per second and burst)
	LoginRate  float64 `env:"LOGIN_RATE"  envDefault:"5"`
	LoginBurst int     `env:"LOGIN_BURST" envDefault:"10"`

	// ExposeResetToken returns password reset tokens to the caller.
	// Demonstration only, keep it off anywhere a real mailbox exists.
	ExposeResetToken bool `env:"EXPOSE_RESET_TOKEN" envDefault:"false"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config].
func Load(envFiles ...string) (*Config, error) {

	// Missing .env files are fine, malformed ones are not.
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces the cross-field rules env tags cannot express.
func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverSQLite, DriverMemory:
	case DriverRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config: REDIS_URL is required when STORE_DRIVER=%s", DriverRedis)
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.ExposeResetToken && c.IsProduction() {
		return errors.New("config: EXPOSE_RESET_TOKEN must be off when ENVIRONMENT=production")
	}
	return nil
}

// IsProduction reports whether the process is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
