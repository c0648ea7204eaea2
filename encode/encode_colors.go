package encode

import (
	"strings"

	"github.com/signadot/itermcolors/node"

	"github.com/fatih/color"
)

type Colorable struct {
	Type node.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrColor
	TextColor
	PunctColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range node.Types() {
		able := Colorable{Type: t, Attr: PunctColor}
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		able.Attr = AttrColor
		colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	}
	colors.Map[Colorable{Type: node.ListType, Attr: TagColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Type: node.TextType, Attr: TagColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Type: node.TextType, Attr: TextColor}] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t node.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t node.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
