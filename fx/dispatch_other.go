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

//go:build !amd64 && !arm64

package fx

import "runtime"

func init() {
	if NoNativeEnv() {
		setSoftwareMode()
		return
	}

	// math/bits falls back to table lookups where the target lacks a
	// bit-scan instruction, so the native set is still exact here.
	setNativeMode(runtime.GOARCH)
}

// HasFastMul reports whether the CPU is known to have a hardware
// 32x32->64 multiply. Unknown targets report false.
func HasFastMul() bool {
	return false
}

// HasFastBitScan reports whether the CPU is known to have a leading-zero
// count instruction. Unknown targets report false.
func HasFastBitScan() bool {
	return false
}
