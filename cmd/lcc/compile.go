package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/lclang/lcc/compiler"
	"github.com/lclang/lcc/internal/diag"
)

// runCompile implements the `compile <input-file> [<output-file>]` CLI
// surface (spec.md §6), plus the ambient flags SPEC_FULL.md §B.3 adds:
// --dump-tokens and --dump-ast (debug side channels), --log (wires a
// diag.FileSink so every diagnostic is also appended to a file), and
// --color (wires fatih/color's global NoColor switch, the way the
// teacher's repl.go colorizes REPL errors).
func runCompile(args []string) int {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	dumpTokens := fs.Bool("dump-tokens", false, "print the token stream to stderr before the compile result")
	dumpAST := fs.Bool("dump-ast", false, "print the parsed AST to stderr before the compile result")
	logPath := fs.String("log", "", "also append every diagnostic to this file")
	colorMode := fs.String("color", "auto", "colorize diagnostic output: auto|always|never")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	applyColorMode(*colorMode)

	positional := fs.Args()
	inputPath := "input.txt"
	if len(positional) > 0 {
		inputPath = positional[0]
	}
	outputPath := defaultOutputPath(inputPath)
	if len(positional) > 1 {
		outputPath = positional[1]
	}

	src, err := os.ReadFile(inputPath)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "lcc: could not read %s: %v\n", inputPath, err)
		return 1
	}

	var logFile *os.File
	if *logPath != "" {
		logFile, err = os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "lcc: could not open log file %s: %v\n", *logPath, err)
			return 1
		}
		defer logFile.Close()
	}

	result := compiler.Compile(string(src))

	if *dumpTokens {
		dumpTokenStream(os.Stderr, result.Tokens)
	}
	if *dumpAST {
		dumpProgramAST(os.Stderr, result.Program)
	}
	if logFile != nil {
		sink := diag.NewFileSink(logFile)
		for _, d := range result.Diagnostics {
			sink.Emit(d)
		}
	}

	if !result.Success {
		printDiagnosticReport(os.Stderr, result)
		return 1
	}

	if err := os.WriteFile(outputPath, []byte(result.Output), 0o644); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "lcc: could not write %s: %v\n", outputPath, err)
		return 1
	}
	color.New(color.FgGreen).Fprintf(os.Stdout, "wrote %s\n", outputPath)
	return 0
}

// defaultOutputPath derives a generated-source filename from inputPath
// when the caller did not name one explicitly.
func defaultOutputPath(inputPath string) string {
	return inputPath + ".go"
}

// applyColorMode wires fatih/color's process-wide NoColor switch —
// "never" forces it on, "always" forces it off, "auto" leaves color's
// own terminal detection in charge.
func applyColorMode(mode string) {
	switch mode {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	}
}

// printDiagnosticReport writes the stable report (result.Output already
// carries it verbatim) with each diagnostic line colored red, matching
// the teacher's repl.go red-for-errors convention.
func printDiagnosticReport(w *os.File, result compiler.Result) {
	red := color.New(color.FgRed)
	fmt.Fprint(w, "Compilation failed due to the following errors:\n")
	for _, d := range result.Diagnostics {
		red.Fprintln(w, d.String())
	}
}
