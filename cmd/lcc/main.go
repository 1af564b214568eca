// Command lcc is the external driver for the L-to-Go compiler: the
// internal/... and compiler packages are a pure, file-I/O-free core
// (spec.md §6); this binary is the only part of the compiler that touches
// disk, flags, or a terminal. (The runtime package is the support library
// that compiled programs import, and it does perform file and process I/O.)
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "compile":
		os.Exit(runCompile(os.Args[2:]))
	case "repl":
		os.Exit(runRepl(os.Args[2:]))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lcc compile [flags] [<input-file> [<output-file>]]")
	fmt.Fprintln(os.Stderr, "       lcc repl [flags]")
}
