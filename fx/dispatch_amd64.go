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

//go:build amd64

package fx

import "golang.org/x/sys/cpu"

func init() {
	if NoNativeEnv() {
		setSoftwareMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// MUL is baseline on amd64. BMI2 adds MULX; the compiler only picks
	// LZCNT over BSR with GOAMD64=v3, but either is exact for nonzero input.
	if cpu.X86.HasBMI2 {
		setNativeMode("amd64-bmi2")
		return
	}
	setNativeMode("amd64")
}

// HasFastMul reports whether the CPU has a hardware 32x32->64 multiply.
func HasFastMul() bool {
	return true
}

// HasFastBitScan reports whether the CPU has a leading-zero count
// instruction (LZCNT ships alongside BMI1).
func HasFastBitScan() bool {
	return cpu.X86.HasBMI1
}
