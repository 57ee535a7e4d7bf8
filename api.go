package sha1ref

import (
	"errors"
	"hash"
	"io"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains a Go-specific API implementing the standard hash.Hash interface.

// DefaultCapacity is the largest input, in bytes, a Hash accepts unless told otherwise.
const DefaultCapacity = 1 << 20

// ErrCapacity is returned once more bytes are written than a Hash was configured to hold.
var ErrCapacity = errors.New("input too large for configured capacity")

// Options tunes SumWith and NewWith. The zero value hashes per FIPS 180-4 with DefaultCapacity.
type Options struct {
	Capacity int        /* max input bytes; <= 0 selects DefaultCapacity */
	Length   LengthMode /* trailer layout */
	Tracer   Tracer     /* nil disables tracing */
}

// Sum returns the SHA-1 digest of msg.
func Sum(msg []byte) Digest { return SumWith(msg, Options{}) }

// SumWith returns the digest of msg using the trailer layout and tracer in opts. Capacity is not
// checked here; that is the job of whatever captured msg.
func SumWith(msg []byte, opts Options) Digest {
	tr := opts.Tracer
	if tr != nil {
		tr.Buffer(msg)
	}
	words, blocks := Pad(msg, opts.Length)
	if tr != nil {
		tr.Blocks(blocks)
		tr.Words(words)
	}
	return Digest(fold(words, Init(), tr))
}

// Hash buffers everything written to it, up to a fixed capacity, and digests the whole message on
// Sum. It is not safe for concurrent use.
type Hash struct {
	opts Options
	buf  []byte
	err  error
}

var _ hash.Hash = (*Hash)(nil)

// New returns a Hash accepting at most limit bytes; limit <= 0 selects DefaultCapacity.
func New(limit int) *Hash { return NewWith(Options{Capacity: limit}) }

func NewWith(opts Options) *Hash {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	return &Hash{opts: opts}
}

func (h *Hash) Size() int { return Size }

func (h *Hash) BlockSize() int { return BlockSize }

// Capacity reports the largest message h accepts.
func (h *Hash) Capacity() int { return h.opts.Capacity }

// Len reports how many bytes have been accepted so far.
func (h *Hash) Len() int { return len(h.buf) }

// Write appends buf to the message. A write that would push the message past capacity is
// rejected whole, and h refuses all further writes until Reset.
func (h *Hash) Write(buf []byte) (int, error) {
	if h.err != nil {
		return 0, h.err
	}
	if len(buf) > h.opts.Capacity-len(h.buf) {
		h.err = ErrCapacity
		return 0, h.err
	}
	h.buf = append(h.buf, buf...)
	return len(buf), nil
}

// Digest returns the digest of everything written so far without changing h.
func (h *Hash) Digest() Digest { return SumWith(h.buf, h.opts) }

// Sum appends the digest of the message to b.
func (h *Hash) Sum(b []byte) []byte { return append(b, h.Digest().Bytes()...) }

func (h *Hash) Reset() {
	h.buf, h.err = h.buf[:0], nil
}

// ReadAll reads r to EOF and returns its contents, or ErrCapacity as soon as r yields more than
// limit bytes. limit <= 0 selects DefaultCapacity.
func ReadAll(r io.Reader, limit int) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultCapacity
	}
	msg, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(msg) > limit {
		return nil, ErrCapacity
	}
	return msg, nil
}
