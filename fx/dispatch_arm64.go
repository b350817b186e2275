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

//go:build arm64

package fx

func init() {
	if NoNativeEnv() {
		setSoftwareMode()
		return
	}

	// UMULL and CLZ are part of the base A64 instruction set.
	setNativeMode("arm64")
}

// HasFastMul reports whether the CPU has a hardware 32x32->64 multiply.
func HasFastMul() bool {
	return true
}

// HasFastBitScan reports whether the CPU has a leading-zero count
// instruction.
func HasFastBitScan() bool {
	return true
}
