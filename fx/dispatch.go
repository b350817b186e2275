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

package fx

import (
	"errors"
	"os"
	"strings"
)

// Level identifies which primitive set an Estimator runs on.
type Level int

const (
	// DispatchSoftware uses BaseMul64 and BaseLeadingZeros32.
	DispatchSoftware Level = iota
	// DispatchNative uses the math/bits intrinsics.
	DispatchNative
)

// ErrInvalidLevel is returned by ParseLevel for unknown names.
var ErrInvalidLevel = errors.New("fx: invalid dispatch level")

// String returns the level name.
func (l Level) String() string {
	switch l {
	case DispatchSoftware:
		return "software"
	case DispatchNative:
		return "native"
	default:
		return "unknown"
	}
}

// ParseLevel parses "software" or "native", ignoring case and surrounding
// spaces.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "software":
		return DispatchSoftware, nil
	case "native":
		return DispatchNative, nil
	default:
		return DispatchSoftware, ErrInvalidLevel
	}
}

// primitives is the multiply and bit-scan pair every estimate is built on.
type primitives struct {
	mul64          func(a, b uint32) uint64
	leadingZeros32 func(x uint32) int
}

var (
	softwareOps = primitives{mul64: BaseMul64, leadingZeros32: BaseLeadingZeros32}
	nativeOps   = primitives{mul64: nativeMul64, leadingZeros32: nativeLeadingZeros32}
)

// Package-level state, written once by the architecture init.
var (
	currentLevel Level
	currentName  string
	active       Estimator
	software     = Estimator{level: DispatchSoftware, ops: softwareOps}
)

// NoNativeEnv reports whether FXRSQRT_NO_NATIVE is set to a non-empty value
// other than "0" or "false".
func NoNativeEnv() bool {
	switch strings.ToLower(os.Getenv("FXRSQRT_NO_NATIVE")) {
	case "", "0", "false":
		return false
	default:
		return true
	}
}

// CurrentLevel returns the level used by Estimate.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns a descriptive name for the active primitives, such as
// "amd64-bmi2", "arm64" or "software".
func CurrentName() string {
	return currentName
}

func setSoftwareMode() {
	currentLevel = DispatchSoftware
	currentName = "software"
	active = software
}

func setNativeMode(name string) {
	currentLevel = DispatchNative
	currentName = name
	active = Estimator{level: DispatchNative, ops: nativeOps}
}
