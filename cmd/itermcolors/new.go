package main

import (
	"bytes"

	"github.com/signadot/itermcolors/scheme"

	"github.com/scott-cotton/cli"
)

func newTemplate(cfg *NewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.New.Parse(cc, args)
	if err != nil {
		return err
	}
	out, err := outputPath(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := scheme.WriteTemplate(buf); err != nil {
		return err
	}
	return writeOutput(cc, out, buf.Bytes())
}
