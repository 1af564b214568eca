// Package runtime is the support library every program emitted by
// internal/codegen imports. Each exported function here is the Go
// implementation of one L built-in — grounded on the teacher's
// std/*.go builtin bodies, adapted from GoMix's object model to plain
// typed Go values — so the generator itself only ever emits a call
// shape (runtime.Add(x, y)) instead of reinlining adapter logic as text.
package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Print implements L's print built-in: every argument's string form,
// joined by a single space, with no trailing newline (spec.md §4.5
// rule 4), mirroring the teacher's print/println split in
// objects/builtins.go.
func Print(vals ...interface{}) {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = printArg(v)
	}
	fmt.Print(strings.Join(parts, " "))
}

// printArg renders one print argument. A float64 (L's only numeric type)
// always carries a decimal point, so a whole-valued Double like 14.0
// still prints as "14.0" instead of Go's default "14" — strings and
// bools print as fmt.Sprint already renders them.
func printArg(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return fmt.Sprint(v)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
