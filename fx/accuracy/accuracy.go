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

// Package accuracy checks fx estimates against a full-precision reference.
//
// It mirrors the acceptance rule of the bare-metal test harness the
// estimator was first validated on: integer relative error
// |y − r|·100/r against r = round(65536/sqrt(x)), failing above Threshold.
// Inputs at or above AccurateLimit get no refinement and only 2–4
// significant output bits, so there the rule is an absolute one: y must be
// within HighRangeSlack of r.
//
// The reference uses float64. It is a test oracle and never feeds back into
// fx.
package accuracy

import (
	"math"

	"github.com/ajroetker/go-fxrsqrt/fx"
)

const (
	// Threshold is the largest accepted relative error in percent.
	Threshold = 8

	// ReportFloor is the relative error above which a sample is recorded
	// in Report.Flagged.
	ReportFloor = 7

	// AccurateLimit is the first input checked with HighRangeSlack
	// instead of Threshold.
	AccurateLimit = fx.OnePassLimit

	// HighRangeSlack is the absolute tolerance above AccurateLimit, one
	// unit in the last place of 16.16.
	HighRangeSlack = 1

	// MaxFlagged caps Report.Flagged.
	MaxFlagged = 32
)

// Reference returns round(65536/sqrt(x)), or fx.Saturated for x = 0.
func Reference(x uint32) uint32 {
	if x == 0 {
		return fx.Saturated
	}
	return uint32(math.Round(65536 / math.Sqrt(float64(x))))
}

// RelativeErrorPercent returns |y − answer| and |y − answer|·100/answer
// truncated to an integer. The percentage is 0 when answer is 0.
func RelativeErrorPercent(y, answer uint32) (diff, percent uint32) {
	if y > answer {
		diff = y - answer
	} else {
		diff = answer - y
	}
	if answer == 0 {
		return diff, 0
	}
	return diff, uint32(uint64(diff) * 100 / uint64(answer))
}
