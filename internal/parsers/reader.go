package parsers

import (
	"errors"
	"strconv"
	"strings"
	"vrp-instance-service/internal/tokenizer"
)

const (
	keywordDimension      = "DIMENSION"
	keywordCapacity       = "CAPACITY"
	keywordEdgeWeightType = "EDGE_WEIGHT_TYPE"
	keywordName           = "NAME"
	sectionNodeCoord      = "NODE_COORD_SECTION"
	sectionDemand         = "DEMAND_SECTION"
	sectionDepot          = "DEPOT_SECTION"
	edgeWeightEuc2D       = "EUC_2D"
	depotTerminator       = -1
	endOfFile             = "EOF"
)

// reader carries the stream and position bookkeeping shared by all dialects.
type reader struct {
	s       *tokenizer.Stream
	dialect Dialect
	state   State
}

func newReader(s *tokenizer.Stream, d Dialect) *reader {
	return &reader{s: s, dialect: d, state: StateExpectKeyword}
}

func (r *reader) fail(kind error, expected, got string, cause error) error {
	return &ParseError{
		Kind:     kind,
		Dialect:  r.dialect,
		State:    r.state,
		Pos:      r.s.Pos(),
		Expected: expected,
		Got:      got,
		Err:      cause,
	}
}

// wrap converts tokenizer failures into ParseErrors. what names the field
// being read.
func (r *reader) wrap(err error, what string) error {
	var numErr *tokenizer.NumberError
	switch {
	case errors.Is(err, tokenizer.ErrEndOfStream):
		return r.fail(ErrEndOfStream, what, endOfFile, err)
	case errors.As(err, &numErr):
		return r.fail(ErrInvalidNumber, what, numErr.Token, err)
	default:
		return r.fail(ErrMalformedSection, what, "", err)
	}
}

func (r *reader) next(what string) (string, error) {
	tok, err := r.s.Next()
	if err != nil {
		return "", r.wrap(err, what)
	}
	return tok, nil
}

func (r *reader) skip(n int, what string) error {
	if err := r.s.Skip(n); err != nil {
		return r.wrap(err, what)
	}
	return nil
}

func (r *reader) int(what string) (int, error) {
	v, err := r.s.Int()
	if err != nil {
		return 0, r.wrap(err, what)
	}
	return v, nil
}

func (r *reader) float(what string) (float64, error) {
	v, err := r.s.Float()
	if err != nil {
		return 0, r.wrap(err, what)
	}
	return v, nil
}

// expect consumes the next token and requires it to be keyword. A file
// that ends where the marker belongs is missing it, so end of stream is
// reported as ErrMalformedSection with the tokenizer error as cause.
func (r *reader) expect(keyword string) error {
	tok, err := r.s.Next()
	if errors.Is(err, tokenizer.ErrEndOfStream) {
		return r.fail(ErrMalformedSection, keyword, endOfFile, err)
	}
	if err != nil {
		return r.wrap(err, keyword)
	}
	if tok != keyword {
		return r.fail(ErrMalformedSection, keyword, tok, nil)
	}
	return nil
}

// capHint bounds a preallocation for n records of width tokens by what is
// left in the stream. Declared counts come from the file and are not trusted.
func (r *reader) capHint(n, width int) int {
	if n <= 0 {
		return 0
	}
	return min(n, r.s.Remaining()/width)
}

// index reads a record index and requires it to equal want.
func (r *reader) index(want int) error {
	got, err := r.int("index " + strconv.Itoa(want))
	if err != nil {
		return err
	}
	if got != want {
		return r.fail(ErrIndexMismatch, strconv.Itoa(want), strconv.Itoa(got), nil)
	}
	return nil
}

// keyword splits a header token into its name and whether the ':'
// separator was attached to it ("DIMENSION:" vs "DIMENSION" ":").
func keyword(tok string) (string, bool) {
	if name, ok := strings.CutSuffix(tok, ":"); ok {
		return name, true
	}
	return tok, false
}

// separator consumes a standalone ':' unless it was attached to the keyword.
func (r *reader) separator(attached bool) {
	if !attached {
		r.s.SkipIf(":")
	}
}

// edgeWeightType reads the EDGE_WEIGHT_TYPE value and rejects anything but EUC_2D.
func (r *reader) edgeWeightType(attached bool) error {
	r.separator(attached)
	v, err := r.next(keywordEdgeWeightType)
	if err != nil {
		return err
	}
	if v != edgeWeightEuc2D {
		return r.fail(ErrUnsupportedEdgeWeightType, edgeWeightEuc2D, v, nil)
	}
	return nil
}

// depotSection reads "DEPOT_SECTION <id> -1". Only a single depot is supported.
func (r *reader) depotSection() error {
	r.state = StateReadDepot
	if err := r.expect(sectionDepot); err != nil {
		return err
	}
	if _, err := r.int("depot id"); err != nil {
		return err
	}
	tok, err := r.next(strconv.Itoa(depotTerminator))
	if err != nil {
		return err
	}
	if v, convErr := strconv.Atoi(tok); convErr != nil || v != depotTerminator {
		return r.fail(ErrMultipleDepotsUnsupported, strconv.Itoa(depotTerminator), tok, convErr)
	}
	return nil
}
