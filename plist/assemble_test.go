package plist

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/signadot/itermcolors/node"
	"github.com/signadot/itermcolors/scheme"

	"github.com/google/go-cmp/cmp"
)

type leaf struct {
	Tag, Text string
}

func leaves(n *node.Node) []leaf {
	var res []leaf
	for _, c := range n.Children() {
		res = append(res, leaf{c.Tag, c.Text()})
	}
	return res
}

func TestAppendColorDict(t *testing.T) {
	dict := node.New("dict", "", node.ListType)
	AppendColorDict(dict, scheme.RGB{R: 1, G: 0.5, B: 0})
	want := []leaf{
		{"key", "Red Component"},
		{"real", "1.00000000000000000"},
		{"key", "Green Component"},
		{"real", "0.50000000000000000"},
		{"key", "Blue Component"},
		{"real", "0.00000000000000000"},
		{"key", "Alpha Component"},
		{"integer", "1"},
		{"key", "Color Space"},
		{"string", "sRGB"},
	}
	if diff := cmp.Diff(want, leaves(dict)); diff != "" {
		t.Errorf("color dict mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendRecords(t *testing.T) {
	_, dict := NewDocument()
	labels := []string{"Ansi 0 Color", "Ansi 1 Color", "Ansi 0 Color", ""}
	for i, l := range labels {
		rgb, err := scheme.DecodeHex(fmt.Sprintf("%02x0000", i*40))
		if err != nil {
			t.Fatal(err)
		}
		AppendRecord(dict, &scheme.Record{Label: l, RGB: rgb})
	}
	children := dict.Children()
	if len(children) != 2*len(labels) {
		t.Fatalf("got %d children, want %d", len(children), 2*len(labels))
	}
	for i, l := range labels {
		key, val := children[2*i], children[2*i+1]
		if key.Tag != "key" || key.Type() != node.TextType || key.Text() != l {
			t.Errorf("pair %d: key <%s>%q", i, key.Tag, key.Text())
		}
		if val.Tag != "dict" || val.Type() != node.ListType || val.Len() != 10 {
			t.Errorf("pair %d: value <%s> with %d children", i, val.Tag, val.Len())
			continue
		}
		red, err := strconv.ParseFloat(val.Children()[1].Text(), 64)
		if err != nil {
			t.Fatal(err)
		}
		if got := int(math.Round(red * 255)); got != i*40 {
			t.Errorf("pair %d: red %v", i, red)
		}
	}
}

func TestFormatChannel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.00000000000000000"},
		{1, "1.00000000000000000"},
		{128.0 / 255.0, "0.50196078431372548"},
	}
	for _, tt := range tests {
		if got := FormatChannel(tt.v); got != tt.want {
			t.Errorf("FormatChannel(%v) = %s, want %s", tt.v, got, tt.want)
		}
	}
	for v := range 256 {
		c := float64(v) / 255.0
		back, err := strconv.ParseFloat(FormatChannel(c), 64)
		if err != nil {
			t.Fatal(err)
		}
		if got := int(math.Round(back * 255)); got != v {
			t.Fatalf("channel %d reads back as %d", v, got)
		}
	}
}

func TestNewDocument(t *testing.T) {
	plist, dict := NewDocument()
	if plist.Tag != "plist" || plist.Attrs != `version="1.0"` {
		t.Errorf("root <%s %s>", plist.Tag, plist.Attrs)
	}
	if plist.Len() != 1 || plist.Children()[0] != dict || dict.Parent() != plist {
		t.Error("dict is not the only child of plist")
	}
}
