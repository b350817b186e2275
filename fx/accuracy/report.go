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

package accuracy

// Sample is one evaluated vector.
type Sample struct {
	Input    uint32 `json:"input"`
	Estimate uint32 `json:"estimate"`
	Answer   uint32 `json:"answer"`
	Diff     uint32 `json:"diff"`
	Percent  uint32 `json:"percent"`
}

// Report summarises a Check run.
type Report struct {
	Level string `json:"level,omitempty"`
	Count int    `json:"count"`

	// Relative-error statistics over inputs below AccurateLimit.
	MaxRelativeError uint32 `json:"max_relative_error"`
	WorstInput       uint32 `json:"worst_input"`
	MaxDiff          uint32 `json:"max_diff"`
	AboveFloor       int    `json:"above_floor"`

	// Absolute-error statistics over inputs at or above AccurateLimit.
	HighRangeCount      int    `json:"high_range_count"`
	HighRangeMaxDiff    uint32 `json:"high_range_max_diff"`
	HighRangeViolations int    `json:"high_range_violations"`

	Flagged []Sample `json:"flagged,omitempty"`
}

// Passed reports whether every checked vector met its bound.
func (r Report) Passed() bool {
	return r.MaxRelativeError <= Threshold && r.HighRangeViolations == 0
}

// Check compares estimates[i] against vectors[i].Answer. Extra elements in
// either slice are ignored.
func Check(vectors []Vector, estimates []uint32) Report {
	var r Report
	n := min(len(vectors), len(estimates))
	for i := range n {
		v, y := vectors[i], estimates[i]
		diff, percent := RelativeErrorPercent(y, v.Answer)
		r.Count++

		if v.Input >= AccurateLimit {
			r.HighRangeCount++
			r.HighRangeMaxDiff = max(r.HighRangeMaxDiff, diff)
			if diff > HighRangeSlack {
				r.HighRangeViolations++
				r.flag(v, y, diff, percent)
			}
			continue
		}

		if percent > r.MaxRelativeError {
			r.MaxRelativeError = percent
			r.WorstInput = v.Input
		}
		r.MaxDiff = max(r.MaxDiff, diff)
		if percent > ReportFloor {
			r.AboveFloor++
			r.flag(v, y, diff, percent)
		}
	}
	return r
}

// CheckFunc evaluates estimate on every vector and checks the results.
func CheckFunc(vectors []Vector, estimate func(uint32) uint32) Report {
	estimates := make([]uint32, len(vectors))
	for i, v := range vectors {
		estimates[i] = estimate(v.Input)
	}
	return Check(vectors, estimates)
}

func (r *Report) flag(v Vector, y, diff, percent uint32) {
	if len(r.Flagged) >= MaxFlagged {
		return
	}
	r.Flagged = append(r.Flagged, Sample{
		Input:    v.Input,
		Estimate: y,
		Answer:   v.Answer,
		Diff:     diff,
		Percent:  percent,
	})
}
