package scheme

import (
	"strings"

	"github.com/signadot/itermcolors/debug"
)

type Record struct {
	Label string `json:"label"`
	RGB   RGB    `json:"rgb"`
}

// ParseRecord parses one source line, without its terminator.
//
// The label is the text before the first ':', or the whole line when there
// is none. The color token runs from the first '#' after the label to the
// end of the line and must be exactly "#RRGGBB".
func ParseRecord(line string) (*Record, error) {
	labelLen := strings.IndexByte(line, ':')
	if labelLen == -1 {
		labelLen = len(line)
	}
	label := line[:labelLen]
	i := strings.IndexByte(line[labelLen:], '#')
	if i == -1 {
		return nil, &RecordError{Kind: ErrMissingColor, Text: strings.Clone(label)}
	}
	token := line[labelLen+i:]
	if len(token) != 7 {
		return nil, &RecordError{Kind: ErrWrongLength, Text: strings.Clone(token)}
	}
	rgb, err := DecodeHex(token[1:])
	if err != nil {
		return nil, &RecordError{Kind: ErrInvalidDigit, Text: strings.Clone(token)}
	}
	rec := &Record{Label: strings.Clone(label), RGB: rgb}
	if debug.Parse() {
		debug.LogAny(rec)
	}
	return rec, nil
}
