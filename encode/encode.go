package encode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/itermcolors/debug"
	"github.com/signadot/itermcolors/node"
)

type EncState struct {
	depth, indent int
	escape        bool

	Color func(node.Type, ColorAttr, string) string
}

// Encode writes n and its subtree to w, one element per line.
func Encode(n *node.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(n, w, es)
}

func encode(n *node.Node, w io.Writer, es *EncState) error {
	if debug.Encode() {
		debug.Logf("encode <%s> %s at depth %d\n", n.Tag, n.Type(), es.depth)
	}
	if err := writeIndent(w, es); err != nil {
		return err
	}
	if err := writeOpen(n, w, es); err != nil {
		return err
	}
	switch c := n.Content().(type) {
	case node.Text:
		if err := writeText(string(c), w, es); err != nil {
			return err
		}
		if err := writeClose(n, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case node.List:
		return encodeList(n, c, w, es)
	default:
		panic(fmt.Errorf("%w: %T in <%s>", node.ErrUnknownType, c, n.Tag))
	}
}

func encodeList(n *node.Node, children node.List, w io.Writer, es *EncState) error {
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	es.depth++
	for _, child := range children {
		if err := encode(child, w, es); err != nil {
			es.depth--
			return err
		}
	}
	es.depth--
	if err := writeIndent(w, es); err != nil {
		return err
	}
	if err := writeClose(n, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeIndent(w io.Writer, es *EncState) error {
	if es.depth <= 0 || es.indent <= 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", es.indent*es.depth))
}

func writeOpen(n *node.Node, w io.Writer, es *EncState) error {
	t := n.Type()
	parts := []string{
		applyColor(es, t, PunctColor, "<"),
		applyColor(es, t, TagColor, n.Tag),
	}
	if n.Attrs != "" {
		parts = append(parts, " ", applyColor(es, t, AttrColor, n.Attrs))
	}
	parts = append(parts, applyColor(es, t, PunctColor, ">"))
	return writeString(w, strings.Join(parts, ""))
}

func writeClose(n *node.Node, w io.Writer, es *EncState) error {
	t := n.Type()
	return writeString(w, applyColor(es, t, PunctColor, "</")+
		applyColor(es, t, TagColor, n.Tag)+
		applyColor(es, t, PunctColor, ">"))
}

func writeText(v string, w io.Writer, es *EncState) error {
	if es.escape {
		buf := bytes.NewBuffer(nil)
		if err := xml.EscapeText(buf, []byte(v)); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		v = buf.String()
	}
	if v == "" {
		return nil
	}
	return writeString(w, applyColor(es, node.TextType, TextColor, v))
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func applyColor(es *EncState, t node.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
