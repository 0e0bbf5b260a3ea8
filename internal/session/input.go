package session

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ReadWords collects every whitespace-separated token from r. Tokens have
// no length limit.
func ReadWords(r io.Reader) ([]string, error) {
	words := []string{}
	lines := NewLineReader(r)
	for {
		next, err := lines.ReadWords()
		if errors.Is(err, io.EOF) {
			return words, nil
		}
		if err != nil {
			return nil, err
		}
		words = append(words, next...)
	}
}

// LineReader yields one word list per input line.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r for line-at-a-time reads.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadWords blocks for the next line and splits it on whitespace. A final
// line without a newline is returned before io.EOF.
func (l *LineReader) ReadWords() ([]string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.Fields(line), nil
		}
		return nil, err
	}
	return strings.Fields(line), nil
}
