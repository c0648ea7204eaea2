package plist

import (
	"strconv"

	"github.com/signadot/itermcolors/node"
	"github.com/signadot/itermcolors/scheme"
)

const (
	RedKey        = "Red Component"
	GreenKey      = "Green Component"
	BlueKey       = "Blue Component"
	AlphaKey      = "Alpha Component"
	ColorSpaceKey = "Color Space"

	ColorSpace = "sRGB"
)

// NewDocument returns a <plist> root holding one empty <dict>.
func NewDocument() (plist, dict *node.Node) {
	dict = node.New("dict", "", node.ListType)
	plist = node.New("plist", `version="1.0"`, node.ListType).Append(dict)
	return plist, dict
}

// FormatChannel renders a channel with 17 digits after the point.
func FormatChannel(v float64) string {
	return strconv.FormatFloat(v, 'f', 17, 64)
}

// AppendColorDict appends the five key/value pairs describing c to dict.
func AppendColorDict(dict *node.Node, c scheme.RGB) {
	dict.Append(
		node.NewText("key", RedKey),
		node.NewText("real", FormatChannel(c.R)),
		node.NewText("key", GreenKey),
		node.NewText("real", FormatChannel(c.G)),
		node.NewText("key", BlueKey),
		node.NewText("real", FormatChannel(c.B)),
		node.NewText("key", AlphaKey),
		node.NewText("integer", "1"),
		node.NewText("key", ColorSpaceKey),
		node.NewText("string", ColorSpace),
	)
}

// AppendRecord appends the label key and the color dictionary of rec to
// dict.
func AppendRecord(dict *node.Node, rec *scheme.Record) {
	colors := node.New("dict", "", node.ListType)
	AppendColorDict(colors, rec.RGB)
	dict.Append(node.NewText("key", rec.Label), colors)
}
