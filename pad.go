package sha1ref

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Message padding: block count, big-endian word assembly, and the bit-length trailer.

// LengthMode selects how the message bit length is written into the final block.
type LengthMode int

const (
	// Length64 writes the full 64-bit length field across the last two words, high word first.
	Length64 LengthMode = iota
	// Length32 writes only the low 32 bits of the length into the last word, leaving the word
	// before it zero. Digests match Length64 for every input shorter than 2^29 bytes.
	Length32
)

// BlockCount returns the number of 512-bit blocks needed to hold n message bytes, the 1 marker
// bit, zero padding, and the 64-bit length field.
func BlockCount(n uint64) int {
	bitLen := 8*n + 1
	count := bitLen/512 + 1
	if bitLen%512 > 512-64 {
		count++ /* No room left for the length field. */
	}
	return int(count)
}

// Assemble packs msg followed by the 0x80 marker byte into a zeroed buffer of blocks*16 words,
// four bytes per word, big-endian. Words past the marker stay zero; they are the padding.
func Assemble(msg []byte, blocks int) []uint32 {
	words := make([]uint32, blocks*wordsPerBlock)
	n := len(msg)
	full := n &^ 3
	for i := 0; i < full; i += 4 {
		words[i>>2] = uint32(msg[i])<<24 | uint32(msg[i+1])<<16 | uint32(msg[i+2])<<8 | uint32(msg[i+3])
	}

	/* The last partial word takes the remaining bytes and the marker in the next free lane. */
	var last uint32
	for i := full; i < n; i++ {
		last |= uint32(msg[i]) << (24 - 8*uint(i-full))
	}
	last |= 0x80 << (24 - 8*uint(n-full))
	words[full>>2] = last
	return words
}

// PutLength writes the bit length of an n-byte message into the last word(s) of the final block.
// It must run after Assemble, since it overwrites padding.
func PutLength(words []uint32, blocks int, n uint64, mode LengthMode) {
	end := blocks*wordsPerBlock - 1
	bitLen := n << 3
	words[end] = uint32(bitLen)
	if mode == Length64 {
		words[end-1] = uint32(bitLen >> 32)
	}
}

// Pad runs the padder, assembler and trailer over msg and returns the padded words and block count.
func Pad(msg []byte, mode LengthMode) ([]uint32, int) {
	blocks := BlockCount(uint64(len(msg)))
	words := Assemble(msg, blocks)
	PutLength(words, blocks, uint64(len(msg)), mode)
	return words, blocks
}
