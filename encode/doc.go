// Package encode renders node trees as indented XML text.
//
// # Usage
//
//	dict := node.NewList("dict", "",
//	    node.NewText("key", "Color Space"),
//	    node.NewText("string", "sRGB"))
//	err := encode.Encode(dict, os.Stdout)
//
//	// start one level deep, highlight for a terminal
//	err = encode.Encode(dict, os.Stdout, encode.Depth(1), encode.EncodeColors(encode.NewColors()))
//
// Text content is written as is unless [EncodeEscape] is set, so callers
// that may carry '<' or '&' in labels should opt in to escaping.
//
// # Related Packages
//
//   - github.com/signadot/itermcolors/node - The document tree
//   - github.com/signadot/itermcolors/plist - Property-list documents
package encode
