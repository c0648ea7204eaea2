package encode

import (
	"bytes"

	"github.com/signadot/itermcolors/node"
)

func MustString(n *node.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
