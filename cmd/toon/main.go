// Command toon encodes and decodes TOON documents from the shell,
// mirroring the teacher's cmd/o dispatcher: a small set of
// subcommands, each owning its own flag.FlagSet, picked by the first
// positional argument.
package main

import (
	"fmt"
	"os"
)

type subcommand struct {
	name  string
	usage string
	run   func(args []string) int
}

var subcommands = []subcommand{
	{name: "encode", usage: "encode [flags] [file]", run: runEncode},
	{name: "decode", usage: "decode [flags] [file]", run: runDecode},
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}
	for _, sc := range subcommands {
		if sc.name == args[0] {
			return sc.run(args[1:])
		}
	}
	fmt.Fprintf(os.Stderr, "toon: unknown subcommand %q\n", args[0])
	printUsage()
	return 2
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: toon <subcommand> [flags] [file]")
	for _, sc := range subcommands {
		fmt.Fprintf(os.Stderr, "  %s\n", sc.usage)
	}
}
