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
	"bufio"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

const valuesPerLine = 8

// WriteCHeader writes vectors as a C header defining testcase[], answer[]
// and testcase_num, the layout bare-metal harnesses iterate over.
func WriteCHeader(w io.Writer, vectors []Vector) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "/* Generated by rsqrtcheck. Do not edit. */\n")
	fmt.Fprintf(bw, "#pragma once\n\n#include <stdint.h>\n\n")
	fmt.Fprintf(bw, "static const int testcase_num = %d;\n\n", len(vectors))

	writeArray(bw, "testcase", vectors, func(v Vector) uint32 { return v.Input })
	fmt.Fprintln(bw)
	writeArray(bw, "answer", vectors, func(v Vector) uint32 { return v.Answer })
	return bw.Flush()
}

func writeArray(bw *bufio.Writer, name string, vectors []Vector, field func(Vector) uint32) {
	fmt.Fprintf(bw, "static const uint32_t %s[] = {", name)
	for i, v := range vectors {
		if i%valuesPerLine == 0 {
			fmt.Fprint(bw, "\n   ")
		}
		fmt.Fprintf(bw, " %du,", field(v))
	}
	fmt.Fprint(bw, "\n};\n")
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
