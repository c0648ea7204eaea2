package node

import "fmt"

type Type int

const (
	TextType Type = iota
	ListType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TextType: "Text",
		ListType: "List",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Text": TextType,
		"List": ListType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownType, d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{TextType, ListType}
}

func (t Type) IsLeaf() bool {
	return t == TextType
}
