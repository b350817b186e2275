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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-fxrsqrt/fx/accuracy"
)

func TestRunText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-count", "3000", "-seed", "5"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Native")
	assert.Contains(t, out, "Software")
	assert.Equal(t, 2, strings.Count(out, ": PASS"))
	assert.NotContains(t, out, "FAIL")
	assert.Contains(t, stderr.String(), "msg=checked")
	assert.Contains(t, stderr.String(), "seed=5")
}

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-count", "500", "-levels", "software", "-json"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	var results []result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "software", results[0].Level)
	assert.True(t, results[0].Passed)
	assert.Equal(t, len(accuracy.Generate(1, 500)), results[0].Count)
}

func TestRunConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "check.toml")
	headerPath := filepath.Join(dir, "vectors.h")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"count = 100\nlevels = \"software\"\njson = true\nheader = \""+filepath.ToSlash(headerPath)+"\"\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", cfgPath, "-levels", "native"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	var results []result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "native", results[0].Level)

	header, err := os.ReadFile(headerPath)
	require.NoError(t, err)
	assert.Contains(t, string(header), "testcase_num")
	assert.Contains(t, stderr.String(), "wrote header")
}

func TestRunWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.toml")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-write-config", path}, &stdout, &stderr))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Empty(t, stdout.String())
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-levels", "simd"}, &stdout, &stderr)
	assert.ErrorIs(t, err, errInvalidConfig)

	err = run(context.Background(), []string{"-no-such-flag"}, &stdout, &stderr)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = run(ctx, []string{"-count", "10"}, &stdout, &stderr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteTextReportFailure(t *testing.T) {
	report := accuracy.Check(
		[]accuracy.Vector{{Input: 100, Answer: 6554}},
		[]uint32{7209},
	)
	report.Level = "software"

	var buf bytes.Buffer
	require.NoError(t, writeTextReport(&buf, []result{newResult(report, 1500*time.Microsecond)}))

	out := buf.String()
	assert.Contains(t, out, "Software")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "9% at x=100")
	assert.Contains(t, out, "x=100 y=7209 (0.1100)")
	assert.Equal(t, "software=fail", summary([]result{newResult(report, 0)}))
}
