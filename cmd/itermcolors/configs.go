package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/itermcolors/encode"
	"github.com/signadot/itermcolors/filter"
	"github.com/signadot/itermcolors/format"
	"github.com/signadot/itermcolors/plist"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='highlight plist output'"`

	OutFormat *format.Format

	Out string

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat == nil {
		return format.PlistFormat
	}
	return *cfg.OutFormat
}

// encOpts enables colors with -color, or when the output is a terminal and
// -color was not given at all.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return nil
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type BuildConfig struct {
	*MainConfig
	Escape bool   `cli:"name=escape desc='escape XML special characters in labels'"`
	Cols   int    `cli:"name=cols desc='maximum line length, 0 for no limit'"`
	Where  string `cli:"name=where desc='only convert records matching this expression'"`

	Build *cli.Command
}

func (cfg *BuildConfig) buildOpts() ([]plist.BuildOption, error) {
	res := []plist.BuildOption{
		plist.MaxColumns(cfg.Cols),
		plist.Logger(theLog),
	}
	if cfg.Where != "" {
		f, err := filter.Compile(cfg.Where)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		res = append(res, plist.Filter(f))
	}
	return res, nil
}

type NewConfig struct {
	*MainConfig

	New *cli.Command
}

type DiffConfig struct {
	*BuildConfig

	Diff *cli.Command
}
