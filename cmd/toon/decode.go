package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/toon-format/toon-go/jsonconv"
	"github.com/toon-format/toon-go/toon"
)

func runDecode(args []string) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	strict := fs.Bool("strict", false, "reject recoverable issues instead of degrading gracefully")
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	src, err := readInput(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "toon decode: %v\n", err)
		return 1
	}

	var opts []toon.DecodeOption
	if *strict {
		opts = append(opts, toon.StrictDecode())
	}
	v, err := toon.DecodeValue(src, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "toon decode: %v\n", err)
		return 1
	}

	jsonOut, err := jsonconv.ToJSON(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "toon decode: encoding JSON: %v\n", err)
		return 1
	}

	w, closeFn, err := openOutput(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "toon decode: %v\n", err)
		return 1
	}
	defer closeFn()

	jsonOut = append(jsonOut, '\n')
	if _, err := w.Write(jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "toon decode: writing output: %v\n", err)
		return 1
	}
	return 0
}
