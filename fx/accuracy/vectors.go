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

package accuracy

import (
	"math/rand"

	"github.com/seehuhn/mt19937"

	"github.com/ajroetker/go-fxrsqrt/fx"
)

// Vector is one input with its reference answer.
type Vector struct {
	Input  uint32 `json:"input"`
	Answer uint32 `json:"answer"`
}

// scenarioInputs are always checked: the special cases, the refinement
// tier edges and the extremes of the domain.
var scenarioInputs = []uint32{
	0, 1, 2, 3, 4, 5, 100,
	fx.TwoPassLimit - 1, fx.TwoPassLimit, fx.TwoPassLimit + 1,
	1000, 1000000,
	fx.OnePassLimit - 1, fx.OnePassLimit, fx.OnePassLimit + 1,
	0xFFFFFFFF,
}

// Generate returns the scenario inputs, every power of two and n random
// inputs, each paired with Reference. Random inputs pick a bucket uniformly
// and then a point uniformly inside it, so small buckets are not drowned
// out. Duplicates are dropped, keeping the first occurrence.
//
// The generator is MT19937 seeded with seed, so a given (seed, n) yields the
// same vectors on every platform.
func Generate(seed int64, n int) []Vector {
	vectors := make([]Vector, 0, len(scenarioInputs)+fx.TableLen+n)
	seen := make(map[uint32]struct{}, cap(vectors))
	add := func(x uint32) {
		if _, ok := seen[x]; ok {
			return
		}
		seen[x] = struct{}{}
		vectors = append(vectors, Vector{Input: x, Answer: Reference(x)})
	}

	for _, x := range scenarioInputs {
		add(x)
	}
	for k := range fx.TableLen {
		add(1 << k)
	}

	twister := mt19937.New()
	twister.Seed(seed)
	rng := rand.New(twister)
	for range n {
		exp := rng.Intn(fx.TableLen)
		add(1<<exp | uint32(rng.Int63())&(1<<exp-1))
	}
	return vectors
}

// Inputs returns the Input field of every vector.
func Inputs(vectors []Vector) []uint32 {
	xs := make([]uint32, len(vectors))
	for i, v := range vectors {
		xs[i] = v.Input
	}
	return xs
}
