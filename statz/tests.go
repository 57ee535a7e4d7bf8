package main

import (
	"encoding/binary"
	"math/big"

	"github.com/aead/chacha20/chacha"
	"github.com/p7r0x7/sha1ref"
)

// Copyright © 2021 Matthew R Bonnette. Licensed under a BSD-3-Clause license.

const ints = uint32(5e4)
const digestBits = sha1ref.Size * 8

// makeBytes returns size bytes of ChaCha8 keystream keyed by seed.
func makeBytes(seed uint64, size int) []byte {
	buf := make([]byte, size)
	if size == 0 {
		return buf
	}
	var key, nonce = [32]byte{}, [8]byte{}
	binary.LittleEndian.PutUint64(key[:], seed)
	chacha.XORKeyStream(buf, buf, nonce[:], key[:], 8)
	return buf
}

// meanBias returns, as a percentage, how far each output bit strays from being set in exactly half
// of hashes, averaged over every bit.
func meanBias(hashes []*big.Int, ln int) float64 {
	tally := make([]int32, ln)
	for _, h := range hashes {
		for i := ln - 1; i >= 0; i-- {
			if h.Bit(i) == 1 {
				tally[i]++
			}
		}
	}
	half := int32(len(hashes) >> 1)
	var total int32
	for i := range tally {
		if d := tally[i] - half; d < 0 {
			total -= d
		} else {
			total += d
		}
	}
	return (float64(total) / float64(ln)) / float64(half) * 100
}

// monobit digests ints big-endian integers and ints 1KiB random messages and returns the mean bias
// of each population.
func monobit() (integer, random float64) {
	integers, randoms := make([]*big.Int, 0, ints), make([]*big.Int, 0, ints)
	iBytes := make([]byte, 4)
	for i := ints; i > 0; i-- {
		binary.BigEndian.PutUint32(iBytes, i)
		integers = append(integers, new(big.Int).SetBytes(sha1ref.Sum(iBytes).Bytes()))
		randoms = append(randoms, new(big.Int).SetBytes(sha1ref.Sum(makeBytes(uint64(i), 1024)).Bytes()))
	}
	return meanBias(integers, digestBits), meanBias(randoms, digestBits)
}
