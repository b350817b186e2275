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

// Package main prints the CPU features that decide how fx dispatches its
// multiply and leading-zero primitives.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-fxrsqrt/fx"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("fx dispatch level: %s\n", fx.CurrentLevel())
	fmt.Printf("fx dispatch name: %s\n", fx.CurrentName())
	fmt.Printf("FXRSQRT_NO_NATIVE override: %v\n", fx.NoNativeEnv())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}

	fmt.Println()
	fmt.Printf("fx HasFastMul: %v\n", fx.HasFastMul())
	fmt.Printf("fx HasFastBitScan: %v\n", fx.HasFastBitScan())
	fmt.Printf("Estimate(100) = %s (software %s)\n", fx.Q16(fx.Estimate(100)), fx.Q16(fx.BaseEstimate(100)))
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasATOMICS:  %v (Large System Extensions)\n", cpu.ARM64.HasATOMICS)
	fmt.Println("  UMULL/CLZ:   true (base A64)")
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasBMI1:    %v (LZCNT/TZCNT generation)\n", cpu.X86.HasBMI1)
	fmt.Printf("  HasBMI2:    %v (MULX)\n", cpu.X86.HasBMI2)
	fmt.Printf("  HasPOPCNT:  %v\n", cpu.X86.HasPOPCNT)
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
}
