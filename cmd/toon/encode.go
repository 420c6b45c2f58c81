package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/toon-format/toon-go/jsonconv"
	"github.com/toon-format/toon-go/toon"
)

func runEncode(args []string) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	compact := fs.Bool("compact", false, "emit TOON-Compact binary instead of TOON-Text")
	tabular := fs.Bool("tabular-arrays", true, "use tabular layout for eligible arrays")
	indent := fs.Int("indent", 2, "TOON-Text indent width in spaces")
	strict := fs.Bool("strict", false, "reject recoverable issues instead of degrading gracefully")
	out := fs.String("o", "", "output file (default stdout)")
	color := fs.String("color", "auto", "colorize TOON-Text output: auto, always, never")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	src, err := readInput(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "toon encode: %v\n", err)
		return 1
	}

	v, err := jsonconv.FromJSON(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "toon encode: decoding JSON: %v\n", err)
		return 1
	}

	w, closeFn, err := openOutput(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "toon encode: %v\n", err)
		return 1
	}
	defer closeFn()

	opts := []toon.EncodeOption{
		toon.Compact(*compact),
		toon.TabularArrays(*tabular),
		toon.Indent(*indent),
	}
	if *strict {
		opts = append(opts, toon.Strict())
	}
	if !*compact && shouldColor(*color, *out) {
		opts = append(opts, toon.Color(true))
		if *out == "" {
			w = colorable.NewColorable(os.Stdout)
		}
	}

	encoded, err := toon.EncodeValue(v, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "toon encode: %v\n", err)
		return 1
	}
	if _, err := w.Write(encoded); err != nil {
		fmt.Fprintf(os.Stderr, "toon encode: writing output: %v\n", err)
		return 1
	}
	return 0
}

func shouldColor(mode, outFile string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return outFile == "" && isatty.IsTerminal(os.Stdout.Fd())
	}
}

func readInput(positional []string) ([]byte, error) {
	if len(positional) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(positional[0])
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
