// Package tokenizer splits benchmark file content into whitespace-delimited
// tokens consumed strictly in document order.
package tokenizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEndOfStream is returned when a token is requested but none remain.
var ErrEndOfStream = errors.New("tokenizer: end of stream")

// Stream is an ordered, finite sequence of non-empty tokens.
// It is not safe for concurrent use; each parse owns its own Stream.
type Stream struct {
	tokens []string
	pos    int
}

// New tokenizes content on any run of whitespace.
func New(content string) *Stream {
	return &Stream{tokens: strings.Fields(content)}
}

// Pos returns the zero-based index of the next token to be consumed.
func (s *Stream) Pos() int { return s.pos }

// Remaining returns the number of unconsumed tokens.
func (s *Stream) Remaining() int { return len(s.tokens) - s.pos }

// Done reports whether the stream is exhausted.
func (s *Stream) Done() bool { return s.pos >= len(s.tokens) }

// Next consumes and returns the next token.
func (s *Stream) Next() (string, error) {
	if s.Done() {
		return "", ErrEndOfStream
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() (string, bool) {
	if s.Done() {
		return "", false
	}
	return s.tokens[s.pos], true
}

// Skip discards n tokens. It fails without consuming anything if fewer than
// n tokens remain.
func (s *Stream) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("tokenizer: skip %d: negative count", n)
	}
	if s.Remaining() < n {
		return ErrEndOfStream
	}
	s.pos += n
	return nil
}

// SkipIf consumes the next token only when it equals tok.
func (s *Stream) SkipIf(tok string) bool {
	if next, ok := s.Peek(); ok && next == tok {
		s.pos++
		return true
	}
	return false
}

// Int consumes the next token and parses it as a base-10 integer.
func (s *Stream) Int() (int, error) {
	tok, err := s.Next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &NumberError{Token: tok, Pos: s.pos - 1, Err: err}
	}
	return v, nil
}

// Float consumes the next token and parses it as a float64.
func (s *Stream) Float() (float64, error) {
	tok, err := s.Next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &NumberError{Token: tok, Pos: s.pos - 1, Err: err}
	}
	return v, nil
}

// NumberError reports a token that could not be parsed as a number.
type NumberError struct {
	Token string
	Pos   int
	Err   error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("tokenizer: token %d %q is not a number: %v", e.Pos, e.Token, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }
