package sha1ref

import "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The following collection of functions backend the reference Go implementation of SHA-1 as
// published in FIPS 180-4: message schedule expansion and the 80-round compression function
// folded block by block into five 32-bit state words.

const (
	Size          = 20 /* bytes per digest */
	BlockSize     = 64 /* bytes per block */
	wordsPerBlock = BlockSize / 4
	rounds        = 80
	init0, init1  = 0x67452301, 0xEFCDAB89
	init2, init3  = 0x98BADCFE, 0x10325476
	init4         = 0xC3D2E1F0
)

/* One constant per 20-round stage; indexed by t/20 alongside the round function. */
var roundK = [4]uint32{0x5A827999, 0x6ED9EBA1, 0x8F1BBCDC, 0xCA62C1D6}

// State holds the five running hash words H0 through H4.
type State [5]uint32

// Schedule is the 80-word message schedule derived from one 16-word block.
type Schedule [rounds]uint32

// Init returns the state every message starts from.
func Init() State { return State{init0, init1, init2, init3, init4} }

// Expand copies block[0:16] into the first sixteen schedule words and derives the remaining 64 by
// the xor-and-rotate recurrence. block must hold at least 16 words.
func Expand(block []uint32) (w Schedule) {
	copy(w[:wordsPerBlock], block[:wordsPerBlock])
	for t := wordsPerBlock; t < rounds; t++ {
		w[t] = bits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}
	return w
}

// f is the nonlinear round function for round t.
func f(t int, b, c, d uint32) uint32 {
	switch t / 20 {
	case 0:
		return b&c | ^b&d /* choose */
	case 2:
		return b&c | b&d | c&d /* majority */
	default:
		return b ^ c ^ d /* parity */
	}
}

// Compress runs all 80 rounds over w starting from s and adds the resulting registers back into s.
func (s *State) Compress(w *Schedule) {
	s.compress(w, 0, nil)
}

func (s *State) compress(w *Schedule, blk int, tr Tracer) {
	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]
	for t := 0; t < rounds; t++ {
		temp := bits.RotateLeft32(a, 5) + f(t, b, c, d) + e + w[t] + roundK[t/20]
		a, b, c, d, e = temp, a, bits.RotateLeft32(b, 30), c, d
		if tr != nil {
			tr.Round(blk, t, a, b, c, d, e)
		}
	}

	before := *s
	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
	if tr != nil {
		tr.Fold(blk, before, State{a, b, c, d, e}, *s)
	}
}

// Fold compresses every 16-word block of words into s, strictly in order, and returns the final
// state. Each block starts from the state left by the one before it.
func Fold(words []uint32, s State) State {
	return fold(words, s, nil)
}

func fold(words []uint32, s State, tr Tracer) State {
	for blk := 0; len(words) >= wordsPerBlock; blk++ {
		w := Expand(words[:wordsPerBlock])
		s.compress(&w, blk, tr)
		words = words[wordsPerBlock:]
	}
	return s
}
