package scheme

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRecordOK(t *testing.T) {
	tests := []struct {
		line string
		want Record
	}{
		{"Foreground Color: #FF0000", Record{Label: "Foreground Color", RGB: RGB{R: 1}}},
		{"Background Color: #000000", Record{Label: "Background Color"}},
		{"Ansi 7 Color: #ffffff", Record{Label: "Ansi 7 Color", RGB: RGB{R: 1, G: 1, B: 1}}},
		{":#0000FF", Record{Label: "", RGB: RGB{B: 1}}},
		{"  Padded  :  #00ff00", Record{Label: "  Padded  ", RGB: RGB{G: 1}}},
		{"A#1: #FF0000", Record{Label: "A#1", RGB: RGB{R: 1}}},
		{"A: B: #0000ff", Record{Label: "A", RGB: RGB{B: 1}}},
		{"Link Color:#FF0000", Record{Label: "Link Color", RGB: RGB{R: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseRecord(tt.line)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(&tt.want, got); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRecordErrors(t *testing.T) {
	tests := []struct {
		line string
		kind error
		text string
		msg  string
	}{
		{"Bad Line", ErrMissingColor, "Bad Line", `"Bad Line": missing hex color definition`},
		{"", ErrMissingColor, "", `"": missing hex color definition`},
		{"Foo #FF0000", ErrMissingColor, "Foo #FF0000", ""},
		{"Label: red", ErrMissingColor, "Label", ""},
		{"X: #12345", ErrWrongLength, "#12345", `hex color "#12345" not supported, "#RRGGBB" required`},
		{"X: #1234567", ErrWrongLength, "#1234567", ""},
		{"X: #FF0000 ", ErrWrongLength, "#FF0000 ", ""},
		{"X: #FF0000 # note", ErrWrongLength, "#FF0000 # note", ""},
		{"X: #", ErrWrongLength, "#", ""},
		{"X: #GG0000", ErrInvalidDigit, "#GG0000", `invalid hex color "#GG0000"`},
		{"X: #12345z", ErrInvalidDigit, "#12345z", ""},
		{"X: #12 456", ErrInvalidDigit, "#12 456", ""},
	}
	kinds := []error{ErrMissingColor, ErrWrongLength, ErrInvalidDigit}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			rec, err := ParseRecord(tt.line)
			if rec != nil {
				t.Errorf("got record %+v with error", rec)
			}
			var re *RecordError
			if !errors.As(err, &re) {
				t.Fatalf("got %v, want *RecordError", err)
			}
			if re.Text != tt.text {
				t.Errorf("Text = %q, want %q", re.Text, tt.text)
			}
			for _, k := range kinds {
				if errors.Is(err, k) != (k == tt.kind) {
					t.Errorf("errors.Is(err, %v) = %v", k, !(k == tt.kind))
				}
			}
			if tt.msg != "" && err.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestRecordErrorLine(t *testing.T) {
	err := &RecordError{Kind: ErrMissingColor, Text: "Bad Line", Line: 3}
	want := `line 3: "Bad Line": missing hex color definition`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestTemplate(t *testing.T) {
	lines := TemplateLines()
	if len(lines) != 3*len(Labels()) {
		t.Fatalf("got %d lines, want %d", len(lines), 3*len(Labels()))
	}
	if lines[0] != "Selected Text Color: #000000" {
		t.Errorf("first line %q", lines[0])
	}
	if lines[len(Labels())] != "Selected Text Color (Light): #000000" {
		t.Errorf("first light line %q", lines[len(Labels())])
	}
	if lines[len(lines)-1] != "Ansi 0 Color (Dark): #000000" {
		t.Errorf("last line %q", lines[len(lines)-1])
	}
	for _, ln := range lines {
		rec, err := ParseRecord(ln)
		if err != nil {
			t.Fatalf("template line %q does not parse: %v", ln, err)
		}
		if rec.RGB != (RGB{}) {
			t.Errorf("template line %q is not black", ln)
		}
	}

	buf := bytes.NewBuffer(nil)
	if err := WriteTemplate(buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(strings.Join(lines, "\n")+"\n", buf.String()); diff != "" {
		t.Errorf("template mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelsIsACopy(t *testing.T) {
	l := Labels()
	l[0] = "changed"
	if Labels()[0] != "Selected Text Color" {
		t.Error("Labels exposes package state")
	}
}
