// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package rawterm

import (
	"errors"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

// EscDelay is how long the decoder waits for the rest of an escape sequence
// before it reports a lone escape key.
const EscDelay = 50 * time.Millisecond

var errNoInput = errors.New("no input within the escape delay")

type chunk struct {
	data []byte
	err  error
}

// Decoder turns the byte stream of a raw-mode terminal into key names using
// the bubbletea vocabulary. A goroutine reads the underlying reader so that
// the bytes following an ESC can be awaited with a timeout; it lives until
// the reader returns an error.
type Decoder struct {
	chunks   <-chan chunk
	buf      []byte
	err      error
	escDelay time.Duration
}

// NewDecoder starts reading r.
func NewDecoder(r io.Reader) *Decoder {
	ch := make(chan chunk, 1)
	go func() {
		defer close(ch)
		for {
			p := make([]byte, 256)
			n, err := r.Read(p)
			if n > 0 {
				ch <- chunk{data: p[:n]}
			}
			if err != nil {
				ch <- chunk{err: err}
				return
			}
		}
	}()
	return &Decoder{chunks: ch, escDelay: EscDelay}
}

var csiKeys = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
}

// ctrlKeys names the control bytes that are not ctrl+letter.
var ctrlKeys = map[byte]string{
	0x00: "ctrl+@",
	0x1c: "ctrl+\\",
	0x1d: "ctrl+]",
	0x1e: "ctrl+^",
	0x1f: "ctrl+_",
}

// fill appends the next chunk to the buffer. A negative timeout blocks.
func (d *Decoder) fill(timeout time.Duration) error {
	if d.err != nil {
		return d.err
	}

	var c chunk
	var ok bool
	if timeout < 0 {
		c, ok = <-d.chunks
	} else {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case c, ok = <-d.chunks:
		case <-timer.C:
			return errNoInput
		}
	}
	if !ok {
		d.err = io.EOF
		return d.err
	}
	if c.err != nil {
		d.err = c.err
		return d.err
	}
	d.buf = append(d.buf, c.data...)
	return nil
}

func (d *Decoder) peek(timeout time.Duration) (byte, error) {
	for len(d.buf) == 0 {
		if err := d.fill(timeout); err != nil {
			return 0, err
		}
	}
	return d.buf[0], nil
}

func (d *Decoder) readByte() (byte, error) {
	b, err := d.peek(-1)
	if err != nil {
		return 0, err
	}
	d.buf = d.buf[1:]
	return b, nil
}

// Next blocks for the next key. Read errors, io.EOF included, are returned
// unchanged once the bytes read before them are decoded.
func (d *Decoder) Next() (string, error) {
	b, err := d.readByte()
	if err != nil {
		return "", err
	}

	if name, ok := ctrlKeys[b]; ok {
		return name, nil
	}
	switch {
	case b == 0x1b:
		return d.escape()
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == '\t':
		return "tab", nil
	case b == 0x7f:
		return "backspace", nil
	case b < 0x20:
		return "ctrl+" + string(rune('a'+b-1)), nil
	case b < utf8.RuneSelf:
		return string(rune(b)), nil
	}

	p := []byte{b}
	for !utf8.FullRune(p) {
		c, err := d.readByte()
		if err != nil {
			return "", err
		}
		p = append(p, c)
	}
	r, _ := utf8.DecodeRune(p)
	return string(r), nil
}

// escape handles everything after an ESC byte. If nothing follows within the
// escape delay, or the input ends, it was the escape key itself.
func (d *Decoder) escape() (string, error) {
	next, err := d.peek(d.escDelay)
	if err != nil {
		return "esc", nil
	}
	if next != '[' && next != 'O' {
		k, err := d.Next()
		if err != nil {
			return "", err
		}
		return "alt+" + k, nil
	}
	d.buf = d.buf[1:]

	// parameters until a final byte in 0x40-0x7e
	var params strings.Builder
	for {
		c, err := d.readByte()
		if err != nil {
			return "", err
		}
		if c >= 0x40 && c <= 0x7e {
			name, ok := csiKeys[c]
			if !ok {
				return "unknown", nil
			}
			return modifier(params.String()) + name, nil
		}
		params.WriteByte(c)
	}
}

// modifier reads the xterm modifier parameter ("1;3" is alt, "1;5" ctrl).
func modifier(params string) string {
	_, mod, ok := strings.Cut(params, ";")
	if !ok {
		return ""
	}
	switch mod {
	case "2":
		return "shift+"
	case "3":
		return "alt+"
	case "5":
		return "ctrl+"
	case "6":
		return "ctrl+shift+"
	}
	return ""
}
