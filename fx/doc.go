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

// Package fx computes approximate reciprocal square roots in 16.16 fixed
// point without relying on floating point or hardware multiply/divide.
//
// The estimate for x is y ≈ 65536/sqrt(x). It is built in three stages:
//
//   - Bucket selection: the highest set bit of x picks one of 32 table
//     entries holding 65536/sqrt(2^k).
//   - Interpolation: a linear correction between the bucket's entry and the
//     next one, using the position of x inside its octave.
//   - Newton-Raphson refinement: zero, one or two fixed-point steps of
//     y ← y·(3 − x·y²)/2 depending on the magnitude of x.
//
// Exact powers of two return their table entry unchanged, Estimate(0)
// saturates to 0xFFFFFFFF and Estimate(1) is exactly 1.0 (65536).
//
// # Dispatch
//
// Every multiply and leading-zero count goes through one of two primitive
// sets:
//   - Software (always available): binary long multiplication and a binary
//     search leading-zero count, usable on cores without MUL or CLZ.
//   - Native: the math/bits intrinsics, which lower to MUL/UMULL and
//     LZCNT/BSR/CLZ where the target has them.
//
// Both sets are bit-exact, so the choice only changes speed. The native set
// is selected at init unless FXRSQRT_NO_NATIVE is set. BaseEstimate always
// uses the software set.
//
// # Accuracy
//
// Below 2^25 the integer relative error |y − r|·100/r, with r the rounded
// exact answer, never exceeds 8. From 2^25 up the result has fewer than four
// significant bits and stays within one unit of r instead. See the accuracy
// sub-package for the checker.
//
// # Example Usage
//
//	y := fx.Estimate(100)        // 6554, i.e. ~0.1000 in 16.16
//	fmt.Println(fx.Q16(y))       // "0.1000"
package fx
