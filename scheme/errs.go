package scheme

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMissingColor = errors.New("missing hex color definition")
	ErrWrongLength  = errors.New("wrong hex color length")
	ErrInvalidDigit = errors.New("invalid hex digit")
)

// RecordError reports a source line that cannot be parsed. Text is the
// label for ErrMissingColor and the '#' token otherwise.
type RecordError struct {
	Kind error
	Text string
	Line int
}

func (e *RecordError) Unwrap() error {
	return e.Kind
}

func (e *RecordError) Error() string {
	var msg string
	switch e.Kind {
	case ErrMissingColor:
		msg = fmt.Sprintf("%q: %s", e.Text, ErrMissingColor)
	case ErrWrongLength:
		msg = fmt.Sprintf("hex color %q not supported, \"#RRGGBB\" required", e.Text)
	case ErrInvalidDigit:
		msg = fmt.Sprintf("invalid hex color %q", e.Text)
	default:
		msg = fmt.Sprintf("%v: %q", e.Kind, e.Text)
	}
	if e.Line > 0 {
		return "line " + strconv.Itoa(e.Line) + ": " + msg
	}
	return msg
}

// DigitError reports the channel pair of a hex string holding a character
// outside [0-9A-Fa-f]. Pos is the index of the first bad character.
type DigitError struct {
	Digits string
	Pos    int
}

func (e *DigitError) Unwrap() error {
	return ErrInvalidDigit
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrInvalidDigit, e.Digits, e.Pos)
}
