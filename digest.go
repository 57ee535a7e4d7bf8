package sha1ref

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Digest is a finalized SHA-1 checksum: the five state words left after the last block.
type Digest State

// Bytes returns the 20 digest bytes, each word big-endian, in register order.
func (d Digest) Bytes() []byte {
	b := make([]byte, Size)
	for i, v := range d {
		binary.BigEndian.PutUint32(b[i<<2:], v)
	}
	return b
}

// String returns the digest as 40 uppercase hexadecimal characters without separators.
func (d Digest) String() string {
	return strings.ToUpper(hex.EncodeToString(d.Bytes()))
}

// Words returns the digest as five space-separated groups of eight uppercase hex digits.
func (d Digest) Words() string {
	s := d.String()
	var sb strings.Builder
	sb.Grow(Size*2 + 4)
	for i := 0; i < len(s); i += 8 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s[i : i+8])
	}
	return sb.String()
}

func (d Digest) Base64() string { return base64.StdEncoding.EncodeToString(d.Bytes()) }

// IsZero reports whether d is the zero value, which no message hashes to in practice.
func (d Digest) IsZero() bool { return d == Digest{} }
