// Package config reads regstat analysis files and data source strings.
//
// An analysis file names the datasets to load and the pairs to regress:
//
//	datasets:
//	  - name: gpa
//	    path: grades.csv
//	    header: true
//	    column: 1
//	  - name: sat
//	    values: [1714, 1664, 1760]
//	pairs:
//	  - x: sat
//	    y: gpa
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/regstat/series"
)

// ErrInvalid reports a malformed analysis file or source string.
var ErrInvalid = errors.New("invalid configuration")

// Source describes where a sequence comes from: one column of a CSV file,
// or literal values.
type Source struct {
	Name   string    `yaml:"name"`
	Path   string    `yaml:"path,omitempty"`
	Header bool      `yaml:"header,omitempty"`
	Column int       `yaml:"column,omitempty"`
	Values []float64 `yaml:"values,omitempty"`
}

// Pair names two datasets to regress, Y against X.
type Pair struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// Analysis is the content of an analysis file.
type Analysis struct {
	Datasets []Source `yaml:"datasets"`
	Pairs    []Pair   `yaml:"pairs"`
}

// Load reads and validates the analysis file at path.
func Load(path string) (*Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", series.ErrIO, err)
	}
	defer f.Close()

	a, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return a, nil
}

// Parse decodes and validates an analysis file. Unknown keys are rejected.
func Parse(r io.Reader) (*Analysis, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var a Analysis
	if err := dec.Decode(&a); err != nil && err != io.EOF {
		return nil, errors.Wrap(ErrInvalid, err.Error())
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks that dataset names are unique, that every dataset has
// exactly one of a path or literal values, and that pairs name known datasets.
func (a *Analysis) Validate() error {
	seen := make(map[string]bool, len(a.Datasets))
	for i, d := range a.Datasets {
		switch {
		case d.Name == "":
			return errors.Wrapf(ErrInvalid, "dataset %d has no name", i)
		case seen[d.Name]:
			return errors.Wrapf(ErrInvalid, "dataset %q defined twice", d.Name)
		case d.Path == "" && d.Values == nil:
			return errors.Wrapf(ErrInvalid, "dataset %q needs a path or values", d.Name)
		case d.Path != "" && d.Values != nil:
			return errors.Wrapf(ErrInvalid, "dataset %q has both a path and values", d.Name)
		case d.Column < 0:
			return errors.Wrapf(ErrInvalid, "dataset %q has negative column %d", d.Name, d.Column)
		}
		seen[d.Name] = true
	}
	for _, p := range a.Pairs {
		for _, name := range []string{p.X, p.Y} {
			if !seen[name] {
				return errors.Wrapf(ErrInvalid, "pair %s/%s: unknown dataset %q", p.X, p.Y, name)
			}
		}
	}
	return nil
}

// ParseSource parses a command-line source. "=v1,v2,..." lists literal
// values; anything else is a CSV path with an optional ":column" suffix.
func ParseSource(arg string, header bool) (Source, error) {
	if arg == "" {
		return Source{}, errors.Wrap(ErrInvalid, "empty source")
	}
	if lit, ok := strings.CutPrefix(arg, "="); ok {
		values, err := parseValues(lit)
		if err != nil {
			return Source{}, err
		}
		return Source{Name: "literal", Values: values}, nil
	}

	src := Source{Name: arg, Path: arg, Header: header}
	if i := strings.LastIndexByte(arg, ':'); i > 0 {
		if col, err := strconv.Atoi(arg[i+1:]); err == nil {
			if col < 0 {
				return Source{}, errors.Wrapf(ErrInvalid, "negative column in %q", arg)
			}
			src.Path, src.Column = arg[:i], col
		}
	}
	return src, nil
}

func parseValues(s string) ([]float64, error) {
	if s == "" {
		return []float64{}, nil
	}
	fields := strings.Split(s, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := series.ParseValue(f)
		if err != nil {
			return nil, errors.WithMessagef(err, "literal value %d", i)
		}
		values[i] = v
	}
	return values, nil
}

// Open materializes the source as a series.
func (s Source) Open() (*series.Series, error) {
	if s.Path == "" {
		out := series.New(s.Values)
		out.Name = s.Name
		return out, nil
	}
	out, err := series.LoadColumn(s.Path, series.ColumnOptions{HasHeader: s.Header, Column: s.Column})
	if err != nil {
		return nil, err
	}
	if s.Name != "" && s.Name != s.Path {
		out.Name = s.Name
	}
	return out, nil
}

// String describes the source for log messages.
func (s Source) String() string {
	if s.Path == "" {
		return fmt.Sprintf("%s (%d literal values)", s.Name, len(s.Values))
	}
	return fmt.Sprintf("%s column %d (header=%v)", s.Path, s.Column, s.Header)
}
