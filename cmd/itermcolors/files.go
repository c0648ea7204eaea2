package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func openInput(cc *cli.Context, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cc.In, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

// outputPath resolves the destination from -o and an optional positional
// argument. "" and "-" mean the command output.
func outputPath(cfg *MainConfig, args []string) (string, error) {
	switch len(args) {
	case 0:
		return cfg.Out, nil
	case 1:
		if cfg.Out != "" {
			return "", fmt.Errorf("%w: cannot use -o with an output argument", cli.ErrUsage)
		}
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: at most one output, got %v", cli.ErrUsage, args)
	}
}

// destination is the writer used to decide on terminal colors.
func destination(cc *cli.Context, path string) io.Writer {
	if path == "" || path == "-" {
		return cc.Out
	}
	return nil
}

func writeOutput(cc *cli.Context, path string, d []byte) error {
	if path == "" || path == "-" {
		_, err := cc.Out.Write(d)
		return err
	}
	if err := os.WriteFile(path, d, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}
