package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLength(t *testing.T) {
	assert.Equal(t, 5.0, Length("hello"))
	assert.Equal(t, 0.0, Length(""))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello", Capitalize("hello"))
	assert.Equal(t, "Hello", Capitalize("HELLO"))
	assert.Equal(t, "", Capitalize(""))
}

func TestUppercaseLowercase(t *testing.T) {
	assert.Equal(t, "HELLO", Uppercase("hello"))
	assert.Equal(t, "hello", Lowercase("HELLO"))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.False(t, IsEmpty("x"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("12345"))
	assert.False(t, IsNumeric("12a45"))
	assert.False(t, IsNumeric(""))
}

func TestConcat(t *testing.T) {
	assert.Equal(t, "ab", Concat("a", "b"))
}

func TestContainsAndIndexOf(t *testing.T) {
	assert.True(t, Contains("hello world", "world"))
	assert.Equal(t, 6.0, IndexOf("hello world", "world"))
	assert.Equal(t, -1.0, IndexOf("hello world", "xyz"))
}

func TestRepeatString(t *testing.T) {
	assert.Equal(t, "abab", RepeatString("ab", 2))
	assert.Equal(t, "", RepeatString("ab", -1))
}

func TestReverseAndPalindrome(t *testing.T) {
	assert.Equal(t, "cba", Reverse("abc"))
	assert.True(t, IsPalindrome("racecar"))
	assert.False(t, IsPalindrome("hello"))
}

func TestCharAt(t *testing.T) {
	assert.Equal(t, "e", CharAt("hello", 1))
	assert.Equal(t, "", CharAt("hello", 10))
	assert.Equal(t, "", CharAt("hello", -1))
}
