// Package node provides the document tree rendered into property-list XML.
//
// A [Node] carries a tag, an optional attribute string and exactly one
// [Content] variant: [Text] for leaves or [List] for ordered children.
// The variant is chosen at construction and never changes; mutating a node
// through the other variant's operation panics.
//
// # Usage
//
//	plist := node.New("plist", `version="1.0"`, node.ListType)
//	dict := node.New("dict", "", node.ListType)
//	plist.Append(dict)
//	dict.Append(node.NewText("key", "Ansi 0 Color"))
//
// Every node has at most one parent. Appending a node that is already
// attached somewhere, or one of the receiver's ancestors, panics.
//
// # Related Packages
//
//   - github.com/signadot/itermcolors/encode - Render a tree as XML text
//   - github.com/signadot/itermcolors/plist - Assemble color dictionaries
package node
