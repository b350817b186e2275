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

import "fmt"

// Fixed-point formats.
//
// A 16.16 value carries 16 integer and 16 fractional bits. Squaring a 16.16
// estimate below 1.0 gives a 0.32 fraction; multiplying that by the raw
// integer x and dropping FracBits bits brings it back to 16.16. The final
// product y·(3 − x·y²) is 16.16 × 16.16 = 32.32 wide, and dropping
// NewtonShift bits both rescales to 16.16 and halves it.
const (
	// FracBits is the number of fractional bits in a 16.16 value.
	FracBits = 16

	// NewtonShift is FracBits plus one for the division by two in the
	// Newton-Raphson update.
	NewtonShift = FracBits + 1

	// One is 1.0 in 16.16.
	One Q16 = 1 << FracBits

	// Saturated is returned for x = 0, whose reciprocal square root is
	// unbounded.
	Saturated uint32 = 0xFFFFFFFF

	threeQ16 uint32 = 3 << FracBits
)

// Q16 is an unsigned 16.16 fixed-point value.
type Q16 uint32

// Q32 is an unsigned 0.32 fixed-point fraction in [0, 1).
type Q32 uint32

// Int returns the integer part.
func (q Q16) Int() uint16 { return uint16(q >> FracBits) }

// Frac returns the raw fractional bits.
func (q Q16) Frac() uint16 { return uint16(q) }

// String formats q in decimal with four truncated fractional digits.
func (q Q16) String() string {
	frac := (uint64(q.Frac()) * 10000) >> FracBits
	return fmt.Sprintf("%d.%04d", q.Int(), frac)
}
