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

import "math/bits"

func nativeMul64(a, b uint32) uint64 {
	hi, lo := bits.Mul32(a, b)
	return uint64(hi)<<32 | uint64(lo)
}

func nativeLeadingZeros32(x uint32) int {
	return bits.LeadingZeros32(x)
}
