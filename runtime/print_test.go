package runtime

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capturePrint(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = orig
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestPrint_WholeValuedDoubleKeepsDecimalPoint(t *testing.T) {
	out := capturePrint(t, func() { Print(14.0) })
	assert.Equal(t, "14.0", out)
}

func TestPrint_FractionalDoubleIsUnchanged(t *testing.T) {
	out := capturePrint(t, func() { Print(2.5) })
	assert.Equal(t, "2.5", out)
}

func TestPrint_MixedArgsJoinedBySpaceNoTrailingNewline(t *testing.T) {
	out := capturePrint(t, func() { Print("total:", 25.0, true) })
	assert.Equal(t, "total: 25.0 true", out)
}

func TestPrint_StringArgUnaffectedByNumericFormatting(t *testing.T) {
	out := capturePrint(t, func() { Print("hello") })
	assert.Equal(t, "hello", out)
}
