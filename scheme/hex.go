package scheme

import (
	"fmt"
	"math"
)

// hexDigits maps a byte to its hex value plus one. Zero marks a byte that
// is not a hex digit.
var hexDigits = [256]uint8{
	'0': 1, '1': 2, '2': 3, '3': 4, '4': 5,
	'5': 6, '6': 7, '7': 8, '8': 9, '9': 10,
	'A': 11, 'B': 12, 'C': 13, 'D': 14, 'E': 15, 'F': 16,
	'a': 11, 'b': 12, 'c': 13, 'd': 14, 'e': 15, 'f': 16,
}

// RGB holds channels normalized to [0,1].
type RGB struct {
	R float64 `json:"red"`
	G float64 `json:"green"`
	B float64 `json:"blue"`
}

// DecodeHex decodes exactly six hex digits, RRGGBB, without a leading '#'.
func DecodeHex(s string) (RGB, error) {
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q has %d digits, want 6", ErrWrongLength, s, len(s))
	}
	for i := range len(s) {
		if hexDigits[s[i]] == 0 {
			pair := i &^ 1
			return RGB{}, &DigitError{Digits: s[pair : pair+2], Pos: i}
		}
	}
	return RGB{
		R: channel(s[0], s[1]),
		G: channel(s[2], s[3]),
		B: channel(s[4], s[5]),
	}, nil
}

func channel(hi, lo byte) float64 {
	v := 16*int(hexDigits[hi]-1) + int(hexDigits[lo]-1)
	return float64(v) / 255.0
}

// Bytes re-encodes the channels as 8 bit values.
func (c RGB) Bytes() [3]uint8 {
	return [3]uint8{toByte(c.R), toByte(c.G), toByte(c.B)}
}

func (c RGB) Hex() string {
	b := c.Bytes()
	return fmt.Sprintf("#%02X%02X%02X", b[0], b[1], b[2])
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
