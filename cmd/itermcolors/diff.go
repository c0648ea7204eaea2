package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if !cfg.format().IsPlist() {
		return fmt.Errorf("%w: diff only compares property lists", cli.ErrUsage)
	}
	built, err := render(cfg.BuildConfig, cc, args[0], nil)
	if err != nil {
		return err
	}
	existing, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("could not read %q: %w", args[1], err)
	}
	if string(built) == string(existing) {
		return nil
	}
	colored := cfg.encOpts(cc.Out) != nil
	if err := writeLineDiff(cc.Out, string(existing), string(built), colored); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// writeLineDiff prints the lines of a removed with '-' and those of b
// added with '+'.
func writeLineDiff(w io.Writer, a, b string, colored bool) error {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
	}
	for _, d := range diffs {
		var prefix string
		paint := fmt.Sprint
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, paint = "-", del
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+", ins
		default:
			continue
		}
		for _, ln := range strings.SplitAfter(strings.TrimSuffix(d.Text, "\n"), "\n") {
			ln = strings.TrimSuffix(ln, "\n")
			if _, err := fmt.Fprintln(w, paint(prefix+ln)); err != nil {
				return err
			}
		}
	}
	return nil
}
