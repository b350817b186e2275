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
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which primitive set Estimate uses so CI logs show whether
// the native or the software path was exercised.
func TestMain(m *testing.M) {
	fmt.Printf("=== fx dispatch ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("FXRSQRT_NO_NATIVE=%q\n", os.Getenv("FXRSQRT_NO_NATIVE"))
	fmt.Printf("Level: %s (%s)\n", CurrentLevel(), CurrentName())
	fmt.Printf("Fast multiply: %v, fast bit scan: %v\n", HasFastMul(), HasFastBitScan())
	fmt.Printf("===================\n\n")

	os.Exit(m.Run())
}
