package sha1ref

import (
	"fmt"
	"io"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Hooks for watching a digest being computed; used by sha1sum's hidden --debug flag.

// Tracer observes each stage of SumWith. Block indices start at 0.
type Tracer interface {
	Buffer(msg []byte)
	Blocks(count int)
	Words(words []uint32)
	Round(block, t int, a, b, c, d, e uint32)
	Fold(block int, before, regs, after State)
}

type textTracer struct {
	w io.Writer
}

// NewTextTracer returns a Tracer that dumps every stage to w as plain text tables.
func NewTextTracer(w io.Writer) Tracer { return &textTracer{w} }

func (tt *textTracer) Buffer(msg []byte) {
	fmt.Fprintln(tt.w, "\nDisplay All Characters In Buffer")
	for i, c := range msg {
		fmt.Fprintf(tt.w, "Buffer[%d] = %q = 0x%X\n", i, c, c)
	}
	fmt.Fprintf(tt.w, "Buffer[%d] = marker = 0x80\n", len(msg))
	fmt.Fprintf(tt.w, "\nCharacter Count = %d\n", len(msg))
}

func (tt *textTracer) Blocks(count int) {
	fmt.Fprintf(tt.w, "\nBlock Count = %d\n", count)
}

func (tt *textTracer) Words(words []uint32) {
	fmt.Fprintln(tt.w, "\nDisplay the blocks:")
	for i := 0; i+3 < len(words); i += 4 {
		if i > 0 && i%wordsPerBlock == 0 {
			fmt.Fprintln(tt.w)
		}
		fmt.Fprintf(tt.w, "%-11.8X %-11.8X %-11.8X %-11.8X\n", words[i], words[i+1], words[i+2], words[i+3])
	}
}

func (tt *textTracer) Round(_, t int, a, b, c, d, e uint32) {
	if t == 0 {
		fmt.Fprintf(tt.w, "\n%16c %11c %11c %11c %11c\n", 'A', 'B', 'C', 'D', 'E')
	}
	fmt.Fprintf(tt.w, "t = %2d: %11.8X %11.8X %11.8X %11.8X %11.8X\n", t, a, b, c, d, e)
}

func (tt *textTracer) Fold(block int, before, regs, after State) {
	fmt.Fprintf(tt.w, "\nBlock %d has been processed. The values of {H} are:\n", block+1)
	for i := range after {
		fmt.Fprintf(tt.w, "H%d = %.8X + %.8X = %.8X\n", i, before[i], regs[i], after[i])
	}
}
