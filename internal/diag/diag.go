// Package diag defines the diagnostic record type shared by every compiler
// stage and the pluggable sinks that collect them.
//
// Diagnostics are data, not control flow: a stage that hits a lexical,
// syntactic, or semantic problem records a Diagnostic and keeps going so
// that later stages can surface as many independent problems as possible in
// one pass, matching the teacher's parser (github.com/akashmaji946/go-mix's
// Parser.Errors) in spirit, but keeping the record structured (line, column,
// stage, message) instead of a pre-formatted string.
package diag

import "fmt"

// Stage identifies which pipeline phase produced a Diagnostic.
type Stage string

const (
	Lexical  Stage = "lexical"
	Syntax   Stage = "syntax"
	Semantic Stage = "semantic"
)

// Diagnostic is one user-visible compiler error: a 1-based source position
// and a message, tagged with the stage that raised it.
type Diagnostic struct {
	Stage   Stage
	Line    int
	Column  int
	Message string
}

// New builds a Diagnostic.
func New(stage Stage, line, column int, format string, args ...any) Diagnostic {
	return Diagnostic{Stage: stage, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}

// String renders a Diagnostic in the stable report format from spec §6:
// "Error at line <L>, column <C>: <message>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("Error at line %d, column %d: %s", d.Line, d.Column, d.Message)
}

// Sink accumulates diagnostics as a stage runs. It is never process-global:
// every stage is handed its own Sink (or constructs one), so concurrent or
// repeated compiles never share state.
type Sink interface {
	Emit(d Diagnostic)
	All() []Diagnostic
}

// MemorySink is the default Sink: an in-memory, append-only list. Every
// compiler stage uses one of these internally.
type MemorySink struct {
	diagnostics []Diagnostic
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{diagnostics: make([]Diagnostic, 0)}
}

func (s *MemorySink) Emit(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

func (s *MemorySink) All() []Diagnostic {
	return s.diagnostics
}

// Writer is satisfied by anything a FileSink can append lines to — in
// particular an *os.File opened by the CLI driver for an errors.txt log.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// FileSink wraps a MemorySink and additionally appends each diagnostic's
// report line to a Writer as it is emitted. This models spec §9's "global
// error-log file" as an optional collaborator rather than a core dependency:
// the core only ever talks to the Sink interface.
type FileSink struct {
	inner *MemorySink
	out   Writer
}

// NewFileSink wraps out so every emitted Diagnostic is both kept in memory
// and appended to out as a report line.
func NewFileSink(out Writer) *FileSink {
	return &FileSink{inner: NewMemorySink(), out: out}
}

func (s *FileSink) Emit(d Diagnostic) {
	s.inner.Emit(d)
	if s.out != nil {
		fmt.Fprintln(s.out, d.String())
	}
}

func (s *FileSink) All() []Diagnostic {
	return s.inner.All()
}
