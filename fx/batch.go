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
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinParallelChunk is the number of inputs each ParallelEstimate task
// evaluates. Inputs shorter than two chunks are evaluated inline.
const MinParallelChunk = 4096

// ErrLengthMismatch is returned when the destination is shorter than the
// source.
var ErrLengthMismatch = errors.New("fx: destination shorter than source")

// EstimateSlice writes Estimate(src[i]) to dst[i] on the active dispatch
// level and returns the number of elements written, min(len(dst), len(src)).
func EstimateSlice(dst, src []uint32) int {
	return active.EstimateSlice(dst, src)
}

// ParallelEstimate is EstimateSlice spread over up to workers goroutines on
// the active dispatch level.
func ParallelEstimate(ctx context.Context, dst, src []uint32, workers int) error {
	return active.ParallelEstimate(ctx, dst, src, workers)
}

// EstimateSlice writes e.Estimate(src[i]) to dst[i] and returns the number
// of elements written.
func (e Estimator) EstimateSlice(dst, src []uint32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = e.Estimate(src[i])
	}
	return n
}

// ParallelEstimate evaluates src into dst in MinParallelChunk-sized tasks
// running on at most workers goroutines (GOMAXPROCS when workers <= 0).
//
// It returns ErrLengthMismatch if len(dst) < len(src), and ctx.Err() if the
// context is done before every task has run. On error dst is partially
// written.
func (e Estimator) ParallelEstimate(ctx context.Context, dst, src []uint32, workers int) error {
	if len(dst) < len(src) {
		return ErrLengthMismatch
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(src) < 2*MinParallelChunk {
		e.EstimateSlice(dst, src)
		return nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(src); start += MinParallelChunk {
		end := min(start+MinParallelChunk, len(src))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e.EstimateSlice(dst[start:end], src[start:end])
			return nil
		})
	}
	return g.Wait()
}
