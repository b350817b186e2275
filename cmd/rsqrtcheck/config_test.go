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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-fxrsqrt/fx"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = 9\ncount = 50\nlevels = \"native\"\n"), 0o644))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)

	want := defaultConfig()
	want.Seed = 9
	want.Count = 50
	want.Levels = "native"
	assert.Equal(t, want, cfg)
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := loadConfigFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("seed = = 3\n"), 0o644))
	_, err = loadConfigFile(bad)
	assert.Error(t, err)
}

func TestWriteExampleConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.toml")
	require.NoError(t, writeExampleConfig(path))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestConfigLevels(t *testing.T) {
	tests := []struct {
		levels  string
		want    []fx.Level
		wantErr bool
	}{
		{"both", []fx.Level{fx.DispatchNative, fx.DispatchSoftware}, false},
		{" Both", []fx.Level{fx.DispatchNative, fx.DispatchSoftware}, false},
		{"native", []fx.Level{fx.DispatchNative}, false},
		{"software", []fx.Level{fx.DispatchSoftware}, false},
		{"sse2", nil, true},
	}
	for _, tt := range tests {
		got, err := Config{Levels: tt.levels}.levels()
		if tt.wantErr {
			assert.ErrorIs(t, err, errInvalidConfig, tt.levels)
			assert.ErrorIs(t, err, fx.ErrInvalidLevel, tt.levels)
			continue
		}
		require.NoError(t, err, tt.levels)
		assert.Equal(t, tt.want, got, tt.levels)
	}
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(defaultConfig()))

	for _, mutate := range []func(*Config){
		func(c *Config) { c.Count = -1 },
		func(c *Config) { c.Workers = -2 },
		func(c *Config) { c.Levels = "vector" },
	} {
		cfg := defaultConfig()
		mutate(&cfg)
		err := validateConfig(cfg)
		assert.True(t, errors.Is(err, errInvalidConfig), "err = %v", err)
	}
}
