// Copyright 2025 go-fxrsqrt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"

	"github.com/ajroetker/go-fxrsqrt/fx"
)

// Config controls one rsqrtcheck run.
type Config struct {
	Seed    int64  `toml:"seed" comment:"MT19937 seed for the random vectors"`
	Count   int    `toml:"count" comment:"number of random vectors on top of the fixed ones"`
	Workers int    `toml:"workers" comment:"parallel workers, 0 for GOMAXPROCS"`
	Levels  string `toml:"levels" comment:"native, software or both"`
	JSON    bool   `toml:"json" comment:"print the report as JSON"`
	Header  string `toml:"header" comment:"write the vectors to this C header"`
	Verbose bool   `toml:"verbose" comment:"debug logging"`
}

// fileConfig mirrors Config with optional fields so that keys missing from
// the file keep their defaults.
type fileConfig struct {
	Seed    *int64  `toml:"seed"`
	Count   *int    `toml:"count"`
	Workers *int    `toml:"workers"`
	Levels  *string `toml:"levels"`
	JSON    *bool   `toml:"json"`
	Header  *string `toml:"header"`
	Verbose *bool   `toml:"verbose"`
}

var errInvalidConfig = errors.New("invalid config")

func defaultConfig() Config {
	return Config{
		Seed:   1,
		Count:  100000,
		Levels: "both",
	}
}

func loadConfigFile(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	applyFileConfig(&cfg, fc)
	return cfg, nil
}

func applyFileConfig(cfg *Config, fc fileConfig) {
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.Count != nil {
		cfg.Count = *fc.Count
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.Levels != nil {
		cfg.Levels = *fc.Levels
	}
	if fc.JSON != nil {
		cfg.JSON = *fc.JSON
	}
	if fc.Header != nil {
		cfg.Header = *fc.Header
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
}

func writeExampleConfig(path string) error {
	data, err := toml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// levels returns the dispatch levels named by cfg.Levels.
func (cfg Config) levels() ([]fx.Level, error) {
	if strings.EqualFold(strings.TrimSpace(cfg.Levels), "both") {
		return []fx.Level{fx.DispatchNative, fx.DispatchSoftware}, nil
	}
	level, err := fx.ParseLevel(cfg.Levels)
	if err != nil {
		return nil, fmt.Errorf("%w: levels %q: %w", errInvalidConfig, cfg.Levels, err)
	}
	return []fx.Level{level}, nil
}

func validateConfig(cfg Config) error {
	if cfg.Count < 0 {
		return fmt.Errorf("%w: count must be >= 0, got %d", errInvalidConfig, cfg.Count)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", errInvalidConfig, cfg.Workers)
	}
	if _, err := cfg.levels(); err != nil {
		return err
	}
	return nil
}
