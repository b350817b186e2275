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

// This file provides the portable primitives. They use only shifts, adds
// and compares, matching what a core without a multiplier or bit-scan
// instruction offers. ops_native.go holds the intrinsic equivalents.

// BaseMul64 returns the exact 64-bit product a*b by binary long
// multiplication: for every set bit i of b, a<<i is added to the result.
func BaseMul64(a, b uint32) uint64 {
	var r uint64
	for i := range 32 {
		if b&(1<<i) != 0 {
			r += uint64(a) << i
		}
	}
	return r
}

// BaseLeadingZeros32 counts the leading zero bits of x by binary search
// over shift widths 16, 8, 4, 2 and 1.
//
// x must be nonzero. For zero it returns 31, not 32.
func BaseLeadingZeros32(x uint32) int {
	lz := 0
	for i := 16; i > 0; i >>= 1 {
		if x>>i == 0 {
			lz += i
		} else {
			x >>= i
		}
	}
	return lz
}
