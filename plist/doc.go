// Package plist assembles iTerm2 color scheme property lists.
//
// # Usage
//
//	// convert a scheme source to an .itermcolors document
//	err := plist.Build(in, out)
//
//	// or drive the steps yourself
//	doc, dict := plist.NewDocument()
//	plist.AppendRecord(dict, rec)
//	err = plist.WriteDocument(out, doc)
//
// Each record becomes a <key> holding its label followed by a <dict> with
// the red, green, blue, alpha and color space entries, in that order.
// Records are never merged: a label given twice appears twice.
//
// # Related Packages
//
//   - github.com/signadot/itermcolors/scheme - Parse source lines
//   - github.com/signadot/itermcolors/encode - Render the document tree
package plist
