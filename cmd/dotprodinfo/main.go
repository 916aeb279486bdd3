// Command dotprodinfo prints the CPU features and kernel selection used by
// the dot-product primitive, plus a small self-check.
//
// Usage:
//
//	dotprodinfo [flags]
//
// Examples:
//
//	dotprodinfo
//	dotprodinfo -taps 512
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-dotprod/dsp/dotprod"
	"github.com/cwbudde/algo-dotprod/internal/cpu"
)

func main() {
	taps := flag.Int("taps", 128, "coefficient count for the self-check")
	verbose := flag.Bool("v", false, "print the coefficient listing of the self-check object")
	flag.Parse()

	if *taps < 0 {
		fmt.Fprintln(os.Stderr, "dotprodinfo: taps must be >= 0")
		os.Exit(2)
	}

	features := cpu.DetectFeatures()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "architecture\t%s\n", features.Architecture)
	fmt.Fprintf(w, "sse2\t%v\n", features.HasSSE2)
	fmt.Fprintf(w, "avx\t%v\n", features.HasAVX)
	fmt.Fprintf(w, "avx2\t%v\n", features.HasAVX2)
	fmt.Fprintf(w, "avx512\t%v\n", features.HasAVX512)
	fmt.Fprintf(w, "neon\t%v\n", features.HasNEON)
	fmt.Fprintf(w, "kernel\t%s\n", dotprod.KernelName())
	w.Flush()

	// Self-check: structured execute vs scalar reference.
	h := make([]float32, *taps)
	x := make([]complex64, *taps)
	for i := range h {
		h[i] = float32(i%7) - 3
		x[i] = complex(float32(i%5)-2, float32(i%3)-1)
	}

	d := dotprod.New(h)
	got := d.Execute(x)
	want := dotprod.Dot(h, x)

	fmt.Printf("self-check taps=%d: execute=%v reference=%v\n", *taps, got, want)

	if *verbose {
		d.Print()
	}
}
