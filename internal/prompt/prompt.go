// Package prompt reads interactive numeric answers from a line-oriented terminal.
package prompt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter writes prompts to out and reads answers from in, one per line.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// New creates a Prompter.
//
// Precondition: in and out must be non-nil.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReaderSize(in, 4096),
		out:    out,
	}
}

// ReadLine reads a single line of input. The returned line does not include
// the trailing \r\n and has control characters other than tab removed.
//
// Postcondition: Returns the next line of text input, or an error (including io.EOF).
func (p *Prompter) ReadLine() (string, error) {
	var line bytes.Buffer
	for {
		b, err := p.reader.ReadByte()
		if err != nil {
			return line.String(), err
		}

		if b == '\n' {
			break
		}
		if b == '\r' {
			next, err := p.reader.Peek(1)
			if err == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = p.reader.ReadByte()
			}
			break
		}
		if b < 32 && b != '\t' {
			continue
		}

		line.WriteByte(b)
	}
	return line.String(), nil
}

// Int prompts with msg and parses the answer as an int.
// Empty, unparsable or unreadable input yields def.
func (p *Prompter) Int(msg string, def int) int {
	v, ok := p.ask(msg, 0)
	if !ok {
		return def
	}
	return int(v)
}

// Int64 prompts with msg and parses the answer as an int64.
// Empty, unparsable or unreadable input yields def.
func (p *Prompter) Int64(msg string, def int64) int64 {
	v, ok := p.ask(msg, 64)
	if !ok {
		return def
	}
	return v
}

func (p *Prompter) ask(msg string, bits int) (int64, bool) {
	if _, err := fmt.Fprint(p.out, msg); err != nil {
		return 0, false
	}
	line, err := p.ReadLine()
	if err != nil && (err != io.EOF || line == "") {
		return 0, false
	}
	// Allow digit grouping such as 10_000 or 10,000.
	t := strings.NewReplacer("_", "", ",", "").Replace(strings.TrimSpace(line))
	if t == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(t, 10, bits)
	if err != nil {
		return 0, false
	}
	return v, true
}
