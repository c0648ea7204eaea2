package main

import (
	"github.com/signadot/itermcolors/plist"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: plist/p, yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "itermcolors").
		WithSynopsis("itermcolors [opts] command [opts]").
		WithDescription("itermcolors generates .itermcolors files for iTerm2 theming.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return itermcolorsMain(cfg, cc, args)
		}).
		WithSubs(
			BuildCommand(cfg),
			NewCommand(cfg),
			DiffCommand(cfg))
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg, Cols: plist.DefaultMaxColumns}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [opts] <input> [output]").
		WithDescription(buildDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

const buildDescription = `build compiles a color scheme source to an .itermcolors file.

The source has one color per line:

  Foreground Color: #C5C8C6
  Background Color: #1D1F21
  Ansi 0 Color: #282A2E

The label is everything before the first ':' and the color must be written
as #RRGGBB at the end of the line. Lines longer than -cols characters are
cut with a warning. Any malformed line stops the build and nothing is
written.

'-' reads the source from stdin or writes the result to stdout. With
-O yaml or -O json, build lists the parsed colors instead of writing a
property list.

-where keeps only the colors matching an expression over Label, Hex, Red,
Green and Blue, for example

  build -where 'Label startsWith "Ansi"' scheme.txt -`

func NewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.New, "new").
		WithAliases("n").
		WithSynopsis("new [output]").
		WithDescription("new writes a scheme source listing every iTerm2 color set to #000000").
		WithRun(func(cc *cli.Context, args []string) error {
			return newTemplate(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{BuildConfig: &BuildConfig{MainConfig: mainCfg, Cols: plist.DefaultMaxColumns}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [opts] <input> <itermcolors file>").
		WithDescription("diff compares the build of input with an existing .itermcolors file and exits 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
