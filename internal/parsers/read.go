package parsers

import (
	"errors"
	"fmt"
	"strconv"
	"vrp-instance-service/internal/tokenizer"
)

// ErrUnknownDialect is returned when no reader matches the requested dialect.
var ErrUnknownDialect = errors.New("unknown dialect")

// Read tokenizes content and dispatches to the reader of dialect d.
// DialectAuto resolves the dialect with Detect first.
func Read(d Dialect, content string) (*RawInstance, error) {
	if d == DialectAuto {
		detected, err := Detect(content)
		if err != nil {
			return nil, err
		}
		d = detected
	}

	s := tokenizer.New(content)
	switch d {
	case DialectCVRP:
		return ReadCVRP(s)
	case DialectCVRPTW:
		return ReadCVRPTW(s)
	case DialectHFVRP:
		return ReadHFVRP(s)
	default:
		return nil, fmt.Errorf("read instance: %s: %w", d, ErrUnknownDialect)
	}
}

// Detect guesses the dialect from the leading tokens:
//   - NAME with a VEHICLE_KINDS header is HFVRP (large layout);
//   - NAME otherwise is CVRP;
//   - a leading integer is HFVRP (classic layout);
//   - anything else is a Solomon CVRPTW file.
func Detect(content string) (Dialect, error) {
	s := tokenizer.New(content)
	first, ok := s.Peek()
	if !ok {
		return DialectAuto, fmt.Errorf("detect dialect: empty content: %w", ErrEndOfStream)
	}

	if first == keywordName {
		for !s.Done() {
			tok, _ := s.Next()
			name, _ := keyword(tok)
			switch name {
			case keywordVehicleKinds:
				return DialectHFVRP, nil
			case sectionNodeCoord:
				return DialectCVRP, nil
			}
		}
		return DialectCVRP, nil
	}

	if _, err := strconv.Atoi(first); err == nil {
		return DialectHFVRP, nil
	}
	return DialectCVRPTW, nil
}
