package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// LineFilter returns an io.Reader that only outputs lines matching the predicate.
// Lines are delimited by '\n'. The newline character is included in the line
// passed to the predicate and in the output. A line longer than
// DefaultConfig().MaxLineLength fails with bufio.ErrTooLong, as in ScanLines.
//
// Example - keep only lines containing "ERROR":
//
//	r := stream.LineFilter(input, func(line []byte) bool {
//	    return bytes.Contains(line, []byte("ERROR"))
//	})
//	io.Copy(os.Stdout, r)
func LineFilter(r io.Reader, pred func(line []byte) bool) io.Reader {
	return newLineReader(r, func(line []byte) []byte {
		if pred(line) {
			return line
		}
		return nil
	})
}

// LineTransform returns an io.Reader that transforms each line using the given function.
// Lines are delimited by '\n'. The newline character is included in the line
// passed to the function. The function should return the transformed line
// (including newline if desired); returning nil drops the line. Lines are
// limited in length as in LineFilter.
func LineTransform(r io.Reader, fn func(line []byte) []byte) io.Reader {
	return newLineReader(r, fn)
}

// lineReader reads one source line at a time and buffers its output until
// the caller has drained it.
type lineReader struct {
	source  *bufio.Reader
	fn      func(line []byte) []byte
	maxLine int

	output []byte
	err    error
}

func newLineReader(r io.Reader, fn func(line []byte) []byte) *lineReader {
	return &lineReader{source: bufio.NewReader(r), fn: fn, maxLine: DefaultConfig().MaxLineLength}
}

func (r *lineReader) Read(p []byte) (int, error) {
	for len(r.output) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		r.next()
	}
	n := copy(p, r.output)
	r.output = r.output[n:]
	return n, nil
}

// next processes one line. The source error, io.EOF included, is kept and
// returned once the output is drained.
func (r *lineReader) next() {
	var line []byte
	for {
		chunk, err := r.source.ReadSlice('\n')
		line = append(line, chunk...)
		if len(line) > r.maxLine {
			r.err = fmt.Errorf("stream: %w", bufio.ErrTooLong)
			return
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if len(line) > 0 {
			r.output = append(r.output[:0], r.fn(line)...)
		}
		if err != nil {
			r.err = err
		}
		return
	}
}
