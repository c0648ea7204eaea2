package plist

import (
	"log/slog"

	"github.com/signadot/itermcolors/encode"
	"github.com/signadot/itermcolors/filter"
)

// DefaultMaxColumns bounds the length of a source line.
const DefaultMaxColumns = 80

type buildOpts struct {
	maxCols int
	log     *slog.Logger
	filter  *filter.Filter
	encOpts []encode.EncodeOption
}

type BuildOption func(*buildOpts)

// MaxColumns sets the longest line kept; n <= 0 keeps lines whole.
func MaxColumns(n int) BuildOption {
	return func(o *buildOpts) { o.maxCols = n }
}

func Logger(l *slog.Logger) BuildOption {
	return func(o *buildOpts) { o.log = l }
}

// Filter drops the records f does not match.
func Filter(f *filter.Filter) BuildOption {
	return func(o *buildOpts) { o.filter = f }
}

func EncodeOptions(opts ...encode.EncodeOption) BuildOption {
	return func(o *buildOpts) { o.encOpts = append(o.encOpts, opts...) }
}

func newBuildOpts(opts []BuildOption) *buildOpts {
	o := &buildOpts{maxCols: DefaultMaxColumns}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	return o
}
