package transcript

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// MaxLineLength is the longest line Lines is able to read.
const MaxLineLength = 1024 * 1024

var (
	// ErrLineTooLong indicates a line longer than MaxLineLength.
	ErrLineTooLong = errors.New("line too long")
	// ErrInvalidUTF8 indicates a line that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("line is not valid UTF-8")
)

// Line is a single line of a transcript.  Err is set if the line could not be read.
type Line struct {
	// Number of the line, starting at one.
	Number int
	Text   string
	Err    error
}

// Lines reads r line by line and sends every line to out.  Lines that are too long or
// not valid UTF-8 are passed on as failed Lines and reading continues.  A read error
// is passed on as a failed Line and ends the input, it is not returned.
// Lines only fails if ctx is done.
func Lines(ctx context.Context, r io.Reader, out chan<- Line) error {
	br := bufio.NewReader(r)

	send := func(line Line) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- line:
			return nil
		}
	}

	for number := 1; ; number++ {
		text, tooLong, err := readLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			return send(Line{Number: number, Err: err})
		}
		if err != nil && len(text) == 0 && !tooLong {
			return nil
		}

		line := Line{Number: number, Text: string(text)}
		switch {
		case tooLong:
			line = Line{Number: number, Err: fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, MaxLineLength)}
		case !utf8.Valid(text):
			line = Line{Number: number, Err: ErrInvalidUTF8}
		}

		sendErr := send(line)
		if sendErr != nil {
			return sendErr
		}
		if err != nil {
			return nil
		}
	}
}

// readLine returns the next line without its line ending.  The rest of a line longer
// than MaxLineLength is discarded and the line is reported as too long.  The error is nil if the line
// ended with a newline.
func readLine(br *bufio.Reader) ([]byte, bool, error) {
	var text []byte
	tooLong := false
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			text = append(text, chunk...)
			// a trailing "\r\n" does not count
			if len(text) > MaxLineLength+2 {
				text, tooLong = nil, true
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		text = bytes.TrimSuffix(text, []byte("\n"))
		text = bytes.TrimSuffix(text, []byte("\r"))
		if len(text) > MaxLineLength {
			text, tooLong = nil, true
		}

		return text, tooLong, err
	}
}
