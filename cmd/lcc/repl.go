package main

import (
	"flag"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lclang/lcc/compiler"
)

// Color definitions mirror the teacher's repl/repl.go palette: blue for
// separators, green for the banner, yellow for successful output, red
// for diagnostics, cyan for informational text.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const replLine = "----------------------------------------"

// runRepl implements `lcc repl`: an interactive session where the user
// types an L program across one or more lines, a blank line compiles the
// buffered block through the same compiler.Compile core the file driver
// uses, and the result — generated Go source or a diagnostic report — is
// printed before the buffer resets. Grounded on the teacher's
// repl/repl.go Start/executeWithRecovery shape, retargeted from
// tree-walking evaluation to one-shot compilation per block.
func runRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	colorMode := fs.String("color", "auto", "colorize REPL output: auto|always|never")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	applyColorMode(*colorMode)

	printBanner()

	rl, err := readline.New("lcc> ")
	if err != nil {
		redColor.Printf("lcc: could not start REPL: %v\n", err)
		return 1
	}
	defer rl.Close()

	var buffer strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil {
			cyanColor.Println("Goodbye!")
			return 0
		}

		trimmed := strings.TrimRight(line, " \t\r")
		if trimmed == ".exit" {
			cyanColor.Println("Goodbye!")
			return 0
		}

		if trimmed == "" {
			compileBuffered(rl, &buffer)
			continue
		}

		buffer.WriteString(line)
		buffer.WriteString("\n")
		rl.SaveHistory(line)
	}
}

// compileBuffered compiles whatever has accumulated in buffer, prints the
// result, and resets it for the next block. An empty buffer at a blank
// line is a no-op, so pressing enter twice in a row does nothing.
func compileBuffered(rl *readline.Instance, buffer *strings.Builder) {
	src := strings.TrimSpace(buffer.String())
	buffer.Reset()
	if src == "" {
		return
	}

	result := compiler.Compile(src)
	if !result.Success {
		redColor.Println("Compilation failed due to the following errors:")
		for _, d := range result.Diagnostics {
			redColor.Println(d.String())
		}
		return
	}
	yellowColor.Println(result.Output)
}

func printBanner() {
	blueColor.Println(replLine)
	greenColor.Println("lcc — L-to-Go compiler REPL")
	blueColor.Println(replLine)
	cyanColor.Println("Type an L program, blank line to compile, '.exit' to quit.")
	blueColor.Println(replLine)
}
