package main

import (
	"flag"
	"fmt"
	"os"

	"ppm-raytracer/internal/golden"
)

func main() {
	tolerance := flag.Uint("tolerance", 0, "Largest per-channel difference still counted as equal")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: imgdiff [-tolerance N] <a> <b>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 || *tolerance > 255 {
		flag.Usage()
		os.Exit(2)
	}

	a, err := golden.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	b, err := golden.Load(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	d, err := golden.Compare(a, b, uint8(*tolerance))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Pixels: %d, Mismatched: %d, Max delta: %d\n", d.Pixels, d.Mismatched, d.MaxDelta)
	if !d.Equal() {
		os.Exit(1)
	}
}
