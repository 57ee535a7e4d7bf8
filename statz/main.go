package main

import (
	. "fmt"
	"runtime"
	"time"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
/* This program is the hardly-rigorous companion to sha1ref's test suite: it reports the mean bias
per output bit over integer and random inputs, then benchmarks sha1ref against the standard
library and other, faster hashes at several message sizes. */

// hardware summarises the CPU extensions that accelerated SHA implementations rely on.
func hardware() string {
	var ext string
	switch runtime.GOARCH {
	case "amd64", "386":
		ext = Sprintf("sha=%v avx2=%v ssse3=%v", cpuid.CPU.Supports(cpuid.SHA), cpu.X86.HasAVX2, cpu.X86.HasSSSE3)
	case "arm64":
		ext = Sprintf("sha1=%v sha2=%v", cpu.ARM64.HasSHA1, cpu.ARM64.HasSHA2)
	default:
		ext = "no known SHA extensions"
	}
	return Sprintf("%s (%d cores) %s", cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, ext)
}

func main() {
	Printf("Running Statz on %d CPUs!\n%s/%s\n%s\n\n",
		runtime.NumCPU(), runtime.GOOS, runtime.GOARCH, hardware())
	t := time.Now()

	integer, random := monobit()
	Printf("Integer input Monobit test:  %5.3f%%\n", integer)
	Printf("Random input Monobit test:   %5.3f%%\n\n", random)

	names, all := make([]string, len(algs)), make([][]result, len(algs))
	for i, a := range algs {
		names[i] = a.name
		all[i] = benchAlg(a.bench)
	}
	printResults(names, all)

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
