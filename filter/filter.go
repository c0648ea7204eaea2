// Package filter selects color records with boolean expressions such as
//
//	Label startsWith "Ansi" && Red > 0.5
//
// Expressions see an [Env] built from each record.
package filter

import (
	"errors"
	"fmt"

	"github.com/signadot/itermcolors/debug"
	"github.com/signadot/itermcolors/scheme"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrFilter = errors.New("filter error")

type Env struct {
	Label string  `expr:"Label"`
	Hex   string  `expr:"Hex"`
	Red   float64 `expr:"Red"`
	Green float64 `expr:"Green"`
	Blue  float64 `expr:"Blue"`
}

func EnvOf(rec *scheme.Record) Env {
	return Env{
		Label: rec.Label,
		Hex:   rec.RGB.Hex(),
		Red:   rec.RGB.R,
		Green: rec.RGB.G,
		Blue:  rec.RGB.B,
	}
}

type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFilter, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

func (f *Filter) Match(rec *scheme.Record) (bool, error) {
	res, err := expr.Run(f.prg, EnvOf(rec))
	if err != nil {
		return false, fmt.Errorf("%w: %q on %q: %w", ErrFilter, f.src, rec.Label, err)
	}
	ok, _ := res.(bool)
	if debug.Filter() {
		debug.Logf("filter %q on %q: %t\n", f.src, rec.Label, ok)
	}
	return ok, nil
}
