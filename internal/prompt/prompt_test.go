package prompt

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestReadLine_LineEndings(t *testing.T) {
	p := New(strings.NewReader("one\r\ntwo\nthree\rfour"), io.Discard)

	for _, want := range []string{"one", "two", "three"} {
		got, err := p.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	got, err := p.ReadLine()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "four", got)
}

func TestReadLine_StripsControlCharacters(t *testing.T) {
	p := New(strings.NewReader("a\x01b\tc\x7f\n"), io.Discard)
	got, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "ab\tc\x7f", got)
}

func TestInt_ParsesAnswerAndWritesPrompt(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("12\n"), &out)
	assert.Equal(t, 12, p.Int("sides? ", 6))
	assert.Equal(t, "sides? ", out.String())
}

func TestInt_DefaultOnEmptyOrInvalid(t *testing.T) {
	p := New(strings.NewReader("\n  \nabc\n"), io.Discard)
	assert.Equal(t, 6, p.Int("", 6))
	assert.Equal(t, 6, p.Int("", 6))
	assert.Equal(t, 6, p.Int("", 6))
}

func TestInt_DefaultOnEOF(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard)
	assert.Equal(t, 1, p.Int("", 1))
}

func TestInt64_AcceptsDigitGrouping(t *testing.T) {
	p := New(strings.NewReader("10_000\n1,000,000\n42"), io.Discard)
	assert.Equal(t, int64(10000), p.Int64("", 5))
	assert.Equal(t, int64(1000000), p.Int64("", 5))
	assert.Equal(t, int64(42), p.Int64("", 5), "a final line without newline is still read")
}

func TestInt64_NegativeIsReturnedForBoundaryValidation(t *testing.T) {
	p := New(strings.NewReader("-3\n"), io.Discard)
	assert.Equal(t, int64(-3), p.Int64("", 10))
}

func TestInt64_RoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int64().Draw(rt, "value")
		def := rapid.Int64().Draw(rt, "default")
		p := New(strings.NewReader(strings.Repeat(" ", 2)+itoa(v)+"\n"), io.Discard)
		assert.Equal(rt, v, p.Int64("", def))
	})
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
