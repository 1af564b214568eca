package runtime

import "strings"

// Length returns the number of characters in s, grounded on the
// teacher's std/strings.go count/length-style helpers.
func Length(s string) float64 {
	return float64(len([]rune(s)))
}

// Capitalize upper-cases s's first character and lower-cases the rest,
// matching the teacher's std/strings.go capitalize.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// Uppercase matches the teacher's std/strings.go upper.
func Uppercase(s string) string {
	return strings.ToUpper(s)
}

// Lowercase matches the teacher's std/strings.go lower.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// IsEmpty reports whether s has zero length.
func IsEmpty(s string) bool {
	return s == ""
}

// IsNumeric reports whether every rune in s is a decimal digit (empty
// string is not numeric).
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Concat matches the teacher's std/strings.go join, specialized to two
// string operands (the built-in's fixed arity per the symbol catalogue).
func Concat(a, b string) string {
	return a + b
}

// Contains matches the teacher's std/strings.go contains.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// IndexOf matches the teacher's std/strings.go index, returning -1.0 on
// a miss so the result stays a plain Double.
func IndexOf(s, substr string) float64 {
	return float64(strings.Index(s, substr))
}

// RepeatString matches the teacher's std/strings.go split/join-adjacent
// repeat behavior — n is coerced to a non-negative repeat count.
func RepeatString(s string, n float64) string {
	count := int(n)
	if count < 0 {
		count = 0
	}
	return strings.Repeat(s, count)
}

// Reverse matches the teacher's std/strings.go reverse, rune-aware so
// multi-byte characters are not corrupted.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// IsPalindrome is one of spec.md §4.5 rule 1c's fixed helper routines.
func IsPalindrome(s string) bool {
	return s == Reverse(s)
}

// CharAt implements spec.md §4.5 rule 6's StringIndex emission target:
// the character at i's rune index of s, or "" if i is out of range —
// codegen never emits a bounds check inline, so this function owns it.
func CharAt(s string, i int) string {
	r := []rune(s)
	if i < 0 || i >= len(r) {
		return ""
	}
	return string(r[i])
}
