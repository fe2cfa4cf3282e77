package main

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"

	"github.com/heathj/tagsoup/parser"
)

type attribute struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// record is the printable and filterable view of a token.
type record struct {
	File       string      `yaml:"file,omitempty"`
	Kind       string      `yaml:"kind"`
	Line       int         `yaml:"line"`
	Column     int         `yaml:"column"`
	Name       string      `yaml:"name,omitempty"`
	Target     string      `yaml:"target,omitempty"`
	Content    string      `yaml:"content,omitempty"`
	Attributes []attribute `yaml:"attributes,omitempty"`
	Message    string      `yaml:"message,omitempty"`

	// Attrs indexes Attributes by name for filters. The last duplicate wins.
	Attrs map[string]string `yaml:"-"`
}

func newRecord(file string, tok parser.Token, pos parser.Position) record {
	r := record{
		File:   file,
		Kind:   tok.Kind().String(),
		Line:   pos.Line + 1,
		Column: pos.Column + 1,
		Attrs:  map[string]string{},
	}
	switch t := tok.(type) {
	case parser.OpenTag:
		r.Name = t.Name
		r.setAttributes(t.Attributes)
	case parser.EmptyTag:
		r.Name = t.Name
		r.setAttributes(t.Attributes)
	case parser.ClosingTag:
		r.Name = t.Name
	case parser.Doctype:
		r.Name = t.Name
	case parser.Text:
		r.Content = t.Content
	case parser.Comment:
		r.Content = t.Content
	case parser.CData:
		r.Content = t.Content
	case parser.ProcessingInstruction:
		r.Target = t.Target
		r.Content = t.Body
	case parser.Unknown:
		r.Message = t.Message
		r.Line, r.Column = t.Line, t.Column
	}
	return r
}

func (r *record) setAttributes(attrs []parser.Attribute) {
	for _, a := range attrs {
		r.Attributes = append(r.Attributes, attribute{Name: a.Name, Value: a.Value})
		r.Attrs[a.Name] = a.Value
	}
}

// filter selects records with a compiled -where expression. The zero value
// selects everything.
type filter struct {
	prg *vm.Program
}

func compileFilter(src string) (filter, error) {
	if src == "" {
		return filter{}, nil
	}
	prg, err := expr.Compile(src, expr.Env(record{}), expr.AsBool())
	if err != nil {
		return filter{}, errors.Wrapf(err, "invalid -where expression %q", src)
	}
	return filter{prg: prg}, nil
}

func (f filter) match(r record) (bool, error) {
	if f.prg == nil {
		return true, nil
	}
	res, err := expr.Run(f.prg, r)
	if err != nil {
		return false, errors.Wrap(err, "evaluating -where expression")
	}
	return res.(bool), nil
}
