package main

import (
	"crypto/sha1"
	. "fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/dterei/gotsc"
	"github.com/markkurossi/tabulate"
	sha256 "github.com/minio/sha256-simd"
	"github.com/p7r0x7/sha1ref"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var sizes = [...]int{64, 512 << 10, 64 << 20}
var msg, calltime = []byte(nil), gotsc.TSCOverhead()

type alg struct {
	name  string
	bench func(b *testing.B)
}

var algs = []alg{
	{"github.com/p7r0x7/sha1ref", func(b *testing.B) {
		for i := b.N; i > 0; i-- {
			sha1ref.Sum(msg)
		}
	}},
	{"crypto/sha1", func(b *testing.B) {
		for i := b.N; i > 0; i-- {
			sha1.Sum(msg)
		}
	}},
	{"github.com/minio/sha256-simd", func(b *testing.B) {
		for i := b.N; i > 0; i-- {
			sha256.Sum256(msg)
		}
	}},
	{"github.com/zeebo/blake3", func(b *testing.B) {
		for i := b.N; i > 0; i-- {
			blake3.Sum256(msg)
		}
	}},
	{"github.com/zeebo/xxh3", func(b *testing.B) {
		for i := b.N; i > 0; i-- {
			xxh3.Hash(msg)
		}
	}},
}

type result struct {
	throughput, speed, usage float64 /* MB/s, cpb, B/op */
}

// benchAlg runs fn once per entry of sizes. While it runs a sampler goroutine estimates the clock
// rate from the TSC so throughput can also be reported in cycles per byte.
func benchAlg(fn func(b *testing.B)) []result {
	results := make([]result, len(sizes))

	for i, v := range sizes {
		msg = makeBytes(uint64(i), v)

		totalHz, polls, mut, done := uint64(0), uint64(0), &sync.Mutex{}, make(chan struct{})
		if calltime > 0 {
			go func() {
				for {
					select {
					case <-done:
						return
					default:
					}
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()

					mut.Lock()
					totalHz += tsc2 - tsc1 - calltime
					polls++
					mut.Unlock()

					time.Sleep(time.Millisecond * 9)
				}
			}()
		}
		r := testing.Benchmark(func(b *testing.B) {
			b.SetBytes(int64(len(msg)))
			b.ReportAllocs()
			b.ResetTimer()
			fn(b)
		})
		close(done)
		mut.Lock()
		totalHz *= 1000

		throughput := float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		if polls > 0 {
			results[i].speed = float64(totalHz) / float64(polls) / throughput
		}
		results[i].throughput = throughput / 1e6
		results[i].usage = float64(r.AllocedBytesPerOp())
		mut.Unlock()
	}
	return results
}

func printResults(names []string, all [][]result) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Algorithm").SetAlign(tabulate.ML)
	tab.Header("Metric").SetAlign(tabulate.ML)
	for _, v := range sizes {
		tab.Header(fmtSize(v)).SetAlign(tabulate.MR)
	}

	for i, results := range all {
		metrics := []struct {
			label string
			value func(r result) float64
		}{
			{"MB/s", func(r result) float64 { return r.throughput }},
			{"cpb", func(r result) float64 { return r.speed }},
			{"B/op", func(r result) float64 { return r.usage }},
		}
		for j, m := range metrics {
			if m.label == "cpb" && calltime == 0 {
				continue
			}
			row := tab.Row()
			if j == 0 {
				row.Column(names[i]).SetFormat(tabulate.FmtBold)
			} else {
				row.Column("")
			}
			row.Column(m.label)
			for _, r := range results {
				row.Column(fmtFloat(m.value(r)))
			}
		}
	}
	tab.Print(os.Stdout)
}

func fmtSize(v int) string {
	switch {
	case v >= 1<<20:
		return Sprintf("%dM", v>>20)
	case v >= 1<<10:
		return Sprintf("%dK", v>>10)
	default:
		return Sprintf("%dB", v)
	}
}

func fmtFloat(v float64) string {
	var style string
	switch whole := float64(int64(v)) == v; {
	case v > 1e8 || (v < 1e-6 && !whole):
		style = "%.3g"
	case v <= 1e1 && !whole:
		style = "%.6f"
	case v <= 1e2 && !whole:
		style = "%.5f"
	case v <= 1e3 && !whole:
		style = "%.4f"
	case v <= 1e4 && !whole:
		style = "%.3f"
	case v <= 1e5 && !whole:
		style = "%.2f"
	case v <= 1e6 && !whole:
		style = "%.1f"
	default:
		style = "%.f"
	}
	return Sprintf(style, v)
}
