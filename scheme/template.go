package scheme

import (
	"fmt"
	"io"
)

var labels = []string{
	"Selected Text Color",
	"Selection Color",
	"Cursor Guide Color",
	"Cursor Text Color",
	"Cursor Color",
	"Bold Color",
	"Link Color",
	"Foreground Color",
	"Background Color",
	"Ansi 15 Color",
	"Ansi 14 Color",
	"Ansi 13 Color",
	"Ansi 12 Color",
	"Ansi 11 Color",
	"Ansi 10 Color",
	"Ansi 9 Color",
	"Ansi 8 Color",
	"Ansi 7 Color",
	"Ansi 6 Color",
	"Ansi 5 Color",
	"Ansi 4 Color",
	"Ansi 3 Color",
	"Ansi 2 Color",
	"Ansi 1 Color",
	"Ansi 0 Color",
}

var variants = []string{"", " (Light)", " (Dark)"}

// Labels returns the color names iTerm2 reads from a scheme.
func Labels() []string {
	res := make([]string, len(labels))
	copy(res, labels)
	return res
}

// TemplateLines returns a black placeholder line for every label, first
// the plain labels then the light and dark variants.
func TemplateLines() []string {
	res := make([]string, 0, len(labels)*len(variants))
	for _, v := range variants {
		for _, l := range labels {
			res = append(res, l+v+": #000000")
		}
	}
	return res
}

func WriteTemplate(w io.Writer) error {
	for _, ln := range TemplateLines() {
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return err
		}
	}
	return nil
}
