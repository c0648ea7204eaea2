package node

import (
	"fmt"
	"slices"
)

// Content is the closed set of node payloads: [Text] or [List].
type Content interface {
	Type() Type
	isContent()
}

// Text is the content of a leaf node.
type Text string

func (Text) Type() Type { return TextType }
func (Text) isContent() {}

// List is the ordered content of an interior node.
type List []*Node

func (List) Type() Type { return ListType }
func (List) isContent() {}

type Node struct {
	Tag   string
	Attrs string

	parent  *Node
	content Content
}

// New creates a detached node whose content variant is fixed to t.
// An empty tag or a type outside [Types] is a caller defect and panics.
func New(tag, attrs string, t Type) *Node {
	if tag == "" {
		panic(ErrEmptyTag)
	}
	res := &Node{Tag: tag, Attrs: attrs}
	switch t {
	case TextType:
		res.content = Text("")
	case ListType:
		res.content = List(nil)
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownType, int(t)))
	}
	return res
}

func NewText(tag, text string) *Node {
	return New(tag, "", TextType).SetString(text)
}

func NewList(tag, attrs string, children ...*Node) *Node {
	return New(tag, attrs, ListType).Append(children...)
}

func (n *Node) Type() Type {
	return n.content.Type()
}

func (n *Node) Content() Content {
	return n.content
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Text returns the content of a text node and "" for a list node.
func (n *Node) Text() string {
	s, _ := n.content.(Text)
	return string(s)
}

// Children returns the children of a list node in insertion order. The
// returned slice belongs to n and must not be modified.
func (n *Node) Children() []*Node {
	l, _ := n.content.(List)
	return l
}

func (n *Node) Len() int {
	switch c := n.content.(type) {
	case Text:
		return 0
	case List:
		return len(c)
	default:
		panic(fmt.Errorf("%w: %T", ErrUnknownType, c))
	}
}

// SetString replaces the content of a text node.
func (n *Node) SetString(s string) *Node {
	if _, ok := n.content.(Text); !ok {
		panic(wrongContent("SetString", n))
	}
	n.content = Text(s)
	return n
}

// Append adds children to a list node, taking ownership of them. Children
// must be detached and must not be n or any of its ancestors.
func (n *Node) Append(children ...*Node) *Node {
	list, ok := n.content.(List)
	if !ok {
		panic(wrongContent("Append", n))
	}
	for i, c := range children {
		if c == nil {
			panic(fmt.Errorf("%w: cannot append nil to <%s>", ErrShared, n.Tag))
		}
		if c.parent != nil || slices.Contains(children[:i], c) {
			panic(fmt.Errorf("%w: <%s> is already attached", ErrShared, c.Tag))
		}
		for p := n; p != nil; p = p.parent {
			if p == c {
				panic(fmt.Errorf("%w: appending <%s> to <%s> makes a cycle", ErrShared, c.Tag, n.Tag))
			}
		}
	}
	for _, c := range children {
		c.parent = n
	}
	n.content = append(list, children...)
	return n
}

// Walk visits n and its descendants in document order. depth is 0 for n.
func (n *Node) Walk(f func(n *Node, depth int) error) error {
	return n.walk(f, 0)
}

func (n *Node) walk(f func(*Node, int) error, depth int) error {
	if err := f(n, depth); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := c.walk(f, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

func wrongContent(op string, n *Node) error {
	return fmt.Errorf("%w: %s on <%s> with %s content", ErrWrongContent, op, n.Tag, n.Type())
}
