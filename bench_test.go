package sha1ref

import (
	"crypto/sha1"
	"fmt"
	"testing"

	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

var benchSizes = []int{64, 1 << 10, 8 << 10, 1 << 20}

func BenchmarkSum(b *testing.B) {
	for _, size := range benchSizes {
		msg := keystream(uint64(size), size)
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Sum(msg)
			}
		})
	}
}

func BenchmarkCompress(b *testing.B) {
	words, _ := Pad(keystream(1, 55), Length64)
	w, s := Expand(words), Init()
	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Compress(&w)
	}
}

func BenchmarkStdlibSHA1(b *testing.B) {
	for _, size := range benchSizes {
		msg := keystream(uint64(size), size)
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sha1.Sum(msg)
			}
		})
	}
}

func BenchmarkSHA256(b *testing.B) {
	msg := keystream(2, 1<<20)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sha256.Sum256(msg)
	}
}

func BenchmarkBlake3(b *testing.B) {
	h, msg := blake3.New(), keystream(3, 1<<20)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(msg)
		h.Sum(nil)
		h.Reset()
	}
}

func BenchmarkXXH3(b *testing.B) {
	msg := keystream(4, 1<<20)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xxh3.Hash(msg)
	}
}
