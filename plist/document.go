package plist

import (
	"fmt"
	"io"

	"github.com/signadot/itermcolors/encode"
	"github.com/signadot/itermcolors/node"
)

const (
	XMLHeader = `<?xml version="1.0" encoding="UTF-8"?>`
	Doctype   = `<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">`
)

// WriteDocument writes the XML prolog and doctype followed by the tree
// rooted at plist.
func WriteDocument(w io.Writer, plist *node.Node, opts ...encode.EncodeOption) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", XMLHeader, Doctype); err != nil {
		return fmt.Errorf("%w: %w", encode.ErrEncoding, err)
	}
	opts = append(opts[:len(opts):len(opts)], encode.Depth(0))
	return encode.Encode(plist, w, opts...)
}
