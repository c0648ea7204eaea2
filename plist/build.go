package plist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/itermcolors/encode"
	"github.com/signadot/itermcolors/format"
	"github.com/signadot/itermcolors/scheme"

	"github.com/goccy/go-yaml"
)

// Build converts the scheme source read from r into a property list
// written to w. The first bad line aborts the conversion before anything is
// written.
func Build(r io.Reader, w io.Writer, opts ...BuildOption) error {
	o := newBuildOpts(opts)
	plist, dict := NewDocument()
	err := eachRecord(r, o, func(rec *scheme.Record) {
		AppendRecord(dict, rec)
	})
	if err != nil {
		return err
	}
	return WriteDocument(w, plist, o.encOpts...)
}

// ReadRecords parses every line of r.
func ReadRecords(r io.Reader, opts ...BuildOption) ([]*scheme.Record, error) {
	var res []*scheme.Record
	err := eachRecord(r, newBuildOpts(opts), func(rec *scheme.Record) {
		res = append(res, rec)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func eachRecord(r io.Reader, o *buildOpts, f func(*scheme.Record)) error {
	lr := newLineReader(r, o.maxCols, o.log)
	for {
		line, ok, err := lr.next()
		if err != nil {
			return fmt.Errorf("error reading line %d: %w", lr.n+1, err)
		}
		if !ok {
			return nil
		}
		rec, err := scheme.ParseRecord(line)
		if err != nil {
			var re *scheme.RecordError
			if errors.As(err, &re) {
				re.Line = lr.n
			}
			return err
		}
		if o.filter != nil {
			keep, err := o.filter.Match(rec)
			if err != nil {
				return fmt.Errorf("line %d: %w", lr.n, err)
			}
			if !keep {
				continue
			}
		}
		f(rec)
	}
}

type recordView struct {
	Label string  `json:"label" yaml:"label"`
	Hex   string  `json:"hex" yaml:"hex"`
	Red   float64 `json:"red" yaml:"red"`
	Green float64 `json:"green" yaml:"green"`
	Blue  float64 `json:"blue" yaml:"blue"`
}

// WriteRecords renders recs in the format f. The property list format
// produces the same document as Build.
func WriteRecords(w io.Writer, recs []*scheme.Record, f format.Format, opts ...encode.EncodeOption) error {
	if f.IsPlist() {
		plist, dict := NewDocument()
		for _, rec := range recs {
			AppendRecord(dict, rec)
		}
		return WriteDocument(w, plist, opts...)
	}
	views := make([]recordView, len(recs))
	for i, rec := range recs {
		views[i] = recordView{
			Label: rec.Label,
			Hex:   rec.RGB.Hex(),
			Red:   rec.RGB.R,
			Green: rec.RGB.G,
			Blue:  rec.RGB.B,
		}
	}
	var (
		d   []byte
		err error
	)
	switch f {
	case format.YAMLFormat:
		d, err = yaml.Marshal(views)
	case format.JSONFormat:
		d, err = json.MarshalIndent(views, "", "  ")
		d = append(d, '\n')
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", encode.ErrEncoding, err)
	}
	if _, err := w.Write(d); err != nil {
		return fmt.Errorf("%w: %w", encode.ErrEncoding, err)
	}
	return nil
}
