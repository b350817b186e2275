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

// Refinement tiers. Inputs that are not exact powers of two get two
// Newton-Raphson steps below TwoPassLimit, one below OnePassLimit and none
// above, where interpolation already lands within the 16.16 resolution.
const (
	TwoPassLimit = 1 << 9
	OnePassLimit = 1 << 25
)

// Estimator computes reciprocal square roots on a fixed primitive set.
// The zero value is not usable; use NewEstimator. Estimators hold no
// mutable state and are safe for concurrent use.
type Estimator struct {
	level Level
	ops   primitives
}

// NewEstimator returns an Estimator for the given level. Unknown levels
// fall back to DispatchSoftware.
func NewEstimator(level Level) Estimator {
	if level == DispatchNative {
		return Estimator{level: DispatchNative, ops: nativeOps}
	}
	return software
}

// Level returns the primitive set e runs on.
func (e Estimator) Level() Level { return e.level }

// Estimate returns 65536/sqrt(x) in 16.16 on the active dispatch level.
func Estimate(x uint32) uint32 {
	return active.Estimate(x)
}

// BaseEstimate is Estimate on the software primitives. It returns the same
// value as Estimate for every x.
func BaseEstimate(x uint32) uint32 {
	return software.Estimate(x)
}

// Estimate returns 65536/sqrt(x) in 16.16.
func (e Estimator) Estimate(x uint32) uint32 {
	switch x {
	case 0:
		return Saturated
	case 1:
		return uint32(One)
	}

	exp := 31 - e.ops.leadingZeros32(x)
	if x == 1<<exp {
		return uint32(rsqrtTable[exp])
	}

	y := e.interpolate(x, exp)
	for range refinementPasses(x) {
		y = e.newtonStep(x, y)
	}
	return y
}

// Bucket returns the index of the highest set bit of x, so that
// 2^Bucket(x) <= x < 2^(Bucket(x)+1). Bucket(0) is 0.
func Bucket(x uint32) int {
	if x == 0 {
		return 0
	}
	return 31 - active.ops.leadingZeros32(x)
}

// Interpolate returns the table estimate for bucket exp corrected linearly
// towards the next entry by the position of x inside [2^exp, 2^(exp+1)).
// x must lie in that range.
func Interpolate(x uint32, exp int) uint32 {
	return active.interpolate(x, exp)
}

// NewtonStep applies one fixed-point Newton-Raphson step y·(3 − x·y²)/2 to
// the 16.16 estimate y.
func NewtonStep(x, y uint32) uint32 {
	return active.newtonStep(x, y)
}

// RefinementPasses returns how many Newton-Raphson steps Estimate applies to
// x: 0 for x <= 1 and exact powers of two, otherwise 2, 1 or 0 by tier.
func RefinementPasses(x uint32) int {
	if x <= 1 || x&(x-1) == 0 {
		return 0
	}
	return refinementPasses(x)
}

func refinementPasses(x uint32) int {
	switch {
	case x < TwoPassLimit:
		return 2
	case x < OnePassLimit:
		return 1
	default:
		return 0
	}
}

func (e Estimator) interpolate(x uint32, exp int) uint32 {
	y := uint32(rsqrtTable[exp])
	var next uint32
	if exp < TableLen-1 {
		next = uint32(rsqrtTable[exp+1])
	}
	delta := y - next

	// Position inside the octave as a 16.16 fraction in [0, 1). The shift
	// left needs 64 bits for the top buckets.
	frac := uint32((uint64(x-1<<exp) << FracBits) >> exp)

	// delta < 2^15 and frac < 2^16, so the product fits in 32 bits.
	return y - uint32(e.ops.mul64(delta, frac))>>FracBits
}

func (e Estimator) newtonStep(x, y uint32) uint32 {
	y2 := Q32(e.ops.mul64(y, y))
	xy2 := uint32(e.ops.mul64(x, uint32(y2)) >> FracBits)
	p := e.ops.mul64(y, threeQ16-xy2)

	// Round by adding back the highest bit shifted out.
	return uint32(p>>NewtonShift + (p>>FracBits)&1)
}
