package sha1ref

import (
	"bytes"
	"fmt"
	"testing"
)

func TestBlockCount(t *testing.T) {
	tests := []struct {
		n    uint64
		want int
	}{
		{0, 1}, {1, 1}, {55, 1}, {56, 2}, {63, 2}, {64, 2},
		{119, 2}, {120, 3}, {183, 3}, {184, 4},
	}
	for _, tt := range tests {
		if got := BlockCount(tt.n); got != tt.want {
			t.Errorf("BlockCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestBlockCount_LengthFieldBoundary(t *testing.T) {
	/* Whenever n ≡ 56..63 (mod 64) the marker block has no room for the length field. */
	for n := uint64(0); n < 1024; n++ {
		naive := int((8*n+1)/512 + 1)
		got := BlockCount(n)
		if n%64 >= 56 {
			if got != naive+1 {
				t.Errorf("n=%d: got %d blocks, want %d", n, got, naive+1)
			}
		} else if got != naive {
			t.Errorf("n=%d: got %d blocks, want %d", n, got, naive)
		}
		if padded := uint64(got) * 64; padded < n+9 || padded-64 >= n+9 {
			t.Errorf("n=%d: %d blocks is not minimal", n, got)
		}
	}
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		msg  string
		want []uint32
	}{
		{"", []uint32{0x80000000, 0}},
		{"a", []uint32{0x61800000, 0}},
		{"ab", []uint32{0x61628000, 0}},
		{"abc", []uint32{0x61626380, 0}},
		{"abcd", []uint32{0x61626364, 0x80000000}},
		{"abcde", []uint32{0x61626364, 0x65800000}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.msg), func(t *testing.T) {
			words := Assemble([]byte(tt.msg), 1)
			if len(words) != 16 {
				t.Fatalf("len = %d, want 16", len(words))
			}
			for i, w := range tt.want {
				if words[i] != w {
					t.Errorf("word %d = %08x, want %08x", i, words[i], w)
				}
			}
			for i := len(tt.want); i < 16; i++ {
				if words[i] != 0 {
					t.Errorf("padding word %d = %08x, want 0", i, words[i])
				}
			}
		})
	}
}

func TestPutLength(t *testing.T) {
	words := make([]uint32, 32)
	PutLength(words, 2, 100, Length64)
	if words[31] != 800 || words[30] != 0 {
		t.Errorf("Length64 small: got %08x %08x", words[30], words[31])
	}

	const big = 1 << 29 /* 2^32 bits */
	words = make([]uint32, 16)
	PutLength(words, 1, big, Length64)
	if words[14] != 1 || words[15] != 0 {
		t.Errorf("Length64 big: got %08x %08x, want 00000001 00000000", words[14], words[15])
	}
	words = make([]uint32, 16)
	PutLength(words, 1, big+3, Length32)
	if words[14] != 0 || words[15] != 24 {
		t.Errorf("Length32 big: got %08x %08x, want 00000000 00000018", words[14], words[15])
	}
}

func TestPad_LengthModesAgreeOnSmallInputs(t *testing.T) {
	for _, n := range []int{0, 3, 55, 56, 64, 119, 120, 1000} {
		msg := bytes.Repeat([]byte{0x5a}, n)
		if SumWith(msg, Options{Length: Length32}) != Sum(msg) {
			t.Errorf("n=%d: Length32 and Length64 digests differ", n)
		}
	}
}
