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

// TableLen is the number of buckets, one per bit position of a uint32.
const TableLen = 32

// rsqrtTable holds 65536/sqrt(2^k) rounded to the nearest integer. Entry 0
// would be 65536 and is saturated to 65535 to fit in 16 bits; Estimate(1)
// never reads it.
var rsqrtTable = [TableLen]uint16{
	65535, 46341, 32768, 23170, 16384, // 2^0 .. 2^4
	11585, 8192, 5793, 4096, 2896, // 2^5 .. 2^9
	2048, 1448, 1024, 724, 512, // 2^10 .. 2^14
	362, 256, 181, 128, 90, // 2^15 .. 2^19
	64, 45, 32, 23, 16, // 2^20 .. 2^24
	11, 8, 6, 4, 3, // 2^25 .. 2^29
	2, 1, // 2^30, 2^31
}

// Table returns a copy of the bucket table.
func Table() [TableLen]uint16 {
	return rsqrtTable
}

// TableEntry returns the 16.16 estimate for x = 2^k.
// It panics if k is outside [0, TableLen).
func TableEntry(k int) uint16 {
	return rsqrtTable[k]
}
