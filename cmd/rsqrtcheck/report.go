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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/hako/durafmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-fxrsqrt/fx"
	"github.com/ajroetker/go-fxrsqrt/fx/accuracy"
)

// result is one level's report as printed by rsqrtcheck.
type result struct {
	accuracy.Report
	Passed    bool  `json:"passed"`
	ElapsedUS int64 `json:"elapsed_us"`
}

func newResult(r accuracy.Report, elapsed time.Duration) result {
	return result{Report: r, Passed: r.Passed(), ElapsedUS: elapsed.Microseconds()}
}

func writeTextReport(w io.Writer, results []result) error {
	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		heading := title.String(r.Level)
		if lvl, err := fx.ParseLevel(r.Level); err == nil && lvl == fx.CurrentLevel() {
			heading += " (" + fx.CurrentName() + ", active)"
		}
		fmt.Fprintf(tw, "%s: %s\n", heading, status)
		fmt.Fprintf(tw, "  vectors:\t%d\n", r.Count)
		fmt.Fprintf(tw, "  max relative error:\t%d%% at x=%d (limit %d%%)\n",
			r.MaxRelativeError, r.WorstInput, accuracy.Threshold)
		fmt.Fprintf(tw, "  max diff:\t%d\n", r.MaxDiff)
		fmt.Fprintf(tw, "  above %d%%:\t%d\n", accuracy.ReportFloor, r.AboveFloor)
		fmt.Fprintf(tw, "  high range:\t%d vectors, max diff %d, %d over %d\n",
			r.HighRangeCount, r.HighRangeMaxDiff, r.HighRangeViolations, accuracy.HighRangeSlack)
		fmt.Fprintf(tw, "  elapsed:\t%s\n",
			durafmt.Parse(time.Duration(r.ElapsedUS)*time.Microsecond).LimitFirstN(2))
		for _, s := range r.Flagged {
			fmt.Fprintf(tw, "  flagged:\tx=%d y=%d (%s) answer=%d diff=%d %d%%\n",
				s.Input, s.Estimate, fx.Q16(s.Estimate), s.Answer, s.Diff, s.Percent)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// summary returns a one-line PASS/FAIL summary per level.
func summary(results []result) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		status := "pass"
		if !r.Passed {
			status = "fail"
		}
		parts = append(parts, fmt.Sprintf("%s=%s", r.Level, status))
	}
	return strings.Join(parts, " ")
}
