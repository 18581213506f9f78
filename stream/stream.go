// Package stream applies per-line processing to io.Readers.
//
// It backs the grep and sed style playground commands: input is consumed
// lazily, one '\n'-delimited line at a time, so arbitrarily long inputs are
// processed with memory bounded by the longest line.
//
//	r := stream.LineFilter(os.Stdin, func(line []byte) bool {
//	    return bytes.Contains(line, []byte("ERROR"))
//	})
//	io.Copy(os.Stdout, r)
package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Config configures ScanLines.
type Config struct {
	// BufferSize is the initial read buffer size.
	// Default: 4KB.
	BufferSize int

	// MaxLineLength is the longest line accepted, newline included.
	// Default: 1MB.
	MaxLineLength int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize:    4 * 1024,
		MaxLineLength: 1024 * 1024,
	}
}

// ErrBufferTooSmall is returned when Config.BufferSize exceeds
// Config.MaxLineLength, which would leave the scanner no room to grow.
type ErrBufferTooSmall struct {
	Requested int
	Maximum   int
}

func (e ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("stream: buffer size %d exceeds max line length %d", e.Requested, e.Maximum)
}

// Validate reports whether c is usable.
func (c Config) Validate() error {
	if c.BufferSize > 0 && c.MaxLineLength > 0 && c.BufferSize > c.MaxLineLength {
		return ErrBufferTooSmall{Requested: c.BufferSize, Maximum: c.MaxLineLength}
	}
	return nil
}

// ApplyDefaults returns a Config with defaults applied for any zero values.
func (c Config) ApplyDefaults() Config {
	d := DefaultConfig()
	if c.BufferSize <= 0 {
		c.BufferSize = d.BufferSize
	}
	if c.MaxLineLength <= 0 {
		c.MaxLineLength = max(d.MaxLineLength, c.BufferSize)
	}
	return c
}

// Line is one line delivered by ScanLines.
//
// WARNING: Text points into the scanner's buffer and is only valid during
// the callback. Copy it to retain it.
type Line struct {
	// Text is the line without its trailing newline.
	Text []byte

	// Number is the 1-based line number.
	Number int

	// Offset is the byte position of the line start within the stream.
	Offset int64
}

// ScanLines calls fn for every line of r until fn returns false, the input
// ends or ctx is cancelled.
func ScanLines(ctx context.Context, r io.Reader, cfg Config, fn func(Line) bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.ApplyDefaults()

	// advance records how many bytes the last token consumed, line ending
	// included, so offsets stay exact for "\r\n" input.
	var advance int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, cfg.BufferSize), cfg.MaxLineLength)
	sc.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		n, tok, err := bufio.ScanLines(data, atEOF)
		if tok != nil {
			advance = n
		}
		return n, tok, err
	})

	var offset int64
	for n := 1; sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !fn(Line{Text: sc.Bytes(), Number: n, Offset: offset}) {
			return nil
		}
		offset += int64(advance)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("stream: %w", err)
	}
	return nil
}
