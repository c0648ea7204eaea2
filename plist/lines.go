package plist

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
)

// lineReader yields the lines of a source without their terminators,
// keeping at most max bytes of each.
type lineReader struct {
	br  *bufio.Reader
	max int
	n   int
	log *slog.Logger
}

func newLineReader(r io.Reader, maxCols int, log *slog.Logger) *lineReader {
	return &lineReader{br: bufio.NewReader(r), max: maxCols, log: log}
}

// next returns the next line, or false at end of input.
func (lr *lineReader) next() (string, bool, error) {
	var (
		line  []byte
		total int
	)
	for {
		frag, err := lr.br.ReadSlice('\n')
		total += len(frag)
		keep := len(frag)
		if lr.max > 0 {
			keep = min(keep, max(0, lr.max+2-len(line)))
		}
		line = append(line, frag[:keep]...)
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if total == 0 {
				return "", false, nil
			}
			break
		}
		if err != nil {
			return "", false, err
		}
		break
	}
	lr.n++
	capped := total > len(line)
	if !capped {
		line = trimEOL(line)
	}
	if lr.max > 0 && (capped || len(line) > lr.max) {
		lr.log.Warn("line too long, ignoring the characters after column",
			"line", lr.n, "column", lr.max)
		line = line[:lr.max]
	}
	return string(line), true, nil
}

func trimEOL(line []byte) []byte {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return line[:n]
}
