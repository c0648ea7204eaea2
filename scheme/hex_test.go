package scheme

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func isHexDigit(b byte) bool {
	return strings.IndexByte("0123456789abcdefABCDEF", b) != -1
}

func TestDecodeHexEveryByte(t *testing.T) {
	for pos := range 6 {
		for b := range 256 {
			s := []byte("000000")
			s[pos] = byte(b)
			_, err := DecodeHex(string(s))
			if isHexDigit(byte(b)) {
				if err != nil {
					t.Errorf("DecodeHex(%q): unexpected error %v", s, err)
				}
				continue
			}
			var de *DigitError
			if !errors.As(err, &de) {
				t.Fatalf("DecodeHex(%q) = %v, want *DigitError", s, err)
			}
			if de.Pos != pos {
				t.Errorf("DecodeHex(%q) reported position %d, want %d", s, de.Pos, pos)
			}
			pair := pos &^ 1
			if de.Digits != string(s[pair:pair+2]) {
				t.Errorf("DecodeHex(%q) reported %q", s, de.Digits)
			}
			if !errors.Is(err, ErrInvalidDigit) {
				t.Errorf("DecodeHex(%q) error does not match ErrInvalidDigit", s)
			}
		}
	}
}

func TestDecodeHexChannels(t *testing.T) {
	for v := range 256 {
		for _, f := range []string{"%02x%02x%02x", "%02X%02X%02X"} {
			s := fmt.Sprintf(f, v, 255-v, v^0x5a)
			rgb, err := DecodeHex(s)
			if err != nil {
				t.Fatalf("DecodeHex(%q): %v", s, err)
			}
			want := [3]uint8{uint8(v), uint8(255 - v), uint8(v ^ 0x5a)}
			if got := rgb.Bytes(); got != want {
				t.Fatalf("DecodeHex(%q).Bytes() = %v, want %v", s, got, want)
			}
			if rgb.R != float64(v)/255.0 {
				t.Fatalf("DecodeHex(%q).R = %v, want %v", s, rgb.R, float64(v)/255.0)
			}
			if !strings.EqualFold(rgb.Hex(), "#"+s) {
				t.Fatalf("Hex() = %s, want #%s", rgb.Hex(), s)
			}

			oracle, err := colorful.Hex("#" + strings.ToLower(s))
			if err != nil {
				t.Fatal(err)
			}
			const eps = 1e-12
			if math.Abs(oracle.R-rgb.R) > eps || math.Abs(oracle.G-rgb.G) > eps || math.Abs(oracle.B-rgb.B) > eps {
				t.Fatalf("DecodeHex(%q) = %+v, colorful gives %+v", s, rgb, oracle)
			}
		}
	}
}

func TestDecodeHexLength(t *testing.T) {
	for _, s := range []string{"", "fff", "12345", "1234567", "#FF0000"} {
		_, err := DecodeHex(s)
		if !errors.Is(err, ErrWrongLength) {
			t.Errorf("DecodeHex(%q) = %v, want ErrWrongLength", s, err)
		}
	}
}

func TestHexBounds(t *testing.T) {
	rgb, err := DecodeHex("FF0000")
	if err != nil {
		t.Fatal(err)
	}
	if rgb != (RGB{R: 1}) {
		t.Errorf("got %+v", rgb)
	}
	if got := (RGB{R: 2, G: -1, B: 0.5}).Hex(); got != "#FF0080" {
		t.Errorf("clamped Hex() = %s", got)
	}
}
