package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/itermcolors/encode"
	"github.com/signadot/itermcolors/plist"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: build requires an input file", cli.ErrUsage)
	}
	out, err := outputPath(cfg.MainConfig, args[1:])
	if err != nil {
		return err
	}
	d, err := render(cfg, cc, args[0], cfg.encOpts(destination(cc, out)))
	if err != nil {
		return err
	}
	return writeOutput(cc, out, d)
}

// render converts the source at path entirely in memory so that a bad
// line leaves no partial output behind.
func render(cfg *BuildConfig, cc *cli.Context, path string, encOpts []encode.EncodeOption) ([]byte, error) {
	bOpts, err := cfg.buildOpts()
	if err != nil {
		return nil, err
	}
	if cfg.Escape {
		encOpts = append(encOpts, encode.EncodeEscape(true))
	}
	in, done, err := openInput(cc, path)
	if err != nil {
		return nil, err
	}
	defer done()

	buf := bytes.NewBuffer(nil)
	if f := cfg.format(); !f.IsPlist() {
		recs, err := plist.ReadRecords(in, bOpts...)
		if err != nil {
			return nil, fmt.Errorf("error processing %s: %w", path, err)
		}
		if err := plist.WriteRecords(buf, recs, f); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	bOpts = append(bOpts, plist.EncodeOptions(encOpts...))
	if err := plist.Build(in, buf, bOpts...); err != nil {
		return nil, fmt.Errorf("error processing %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
