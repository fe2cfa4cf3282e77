package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/scott-cotton/cli"

	"github.com/heathj/tagsoup/parser"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	f, err := compileFilter(cfg.Where)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	pal := plainPalette()
	if !cfg.YAML && cfg.colorize(cc.Out) {
		pal = colorPalette()
	}
	named := len(args) > 1
	return eachInput(cc, args, func(name string, r io.Reader) error {
		if !named {
			name = ""
		}
		return writeTokens(cc.Out, r, name, cfg, f, pal)
	})
}

func writeTokens(w io.Writer, r io.Reader, name string, cfg *TokensConfig, f filter, pal *palette) error {
	s := parser.NewScanner(r, cfg.scannerOpts()...)
	for s.Next() {
		rec := newRecord(name, s.Token(), s.Pos())
		ok, err := f.match(rec)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if cfg.YAML {
			err = writeYAMLRecord(w, rec)
		} else {
			err = writeTokenLine(w, rec, s.Token(), pal)
		}
		if err != nil {
			return errors.Wrap(err, "writing token")
		}
	}
	return s.Err()
}

func writeTokenLine(w io.Writer, rec record, tok parser.Token, pal *palette) error {
	at := fmt.Sprintf("%d:%d", rec.Line, rec.Column)
	if rec.File != "" {
		at = rec.File + ":" + at
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", pal.Pos("%s", at), pal.kind(tok.Kind(), "%s", rec.Kind), tok)
	return err
}

// writeYAMLRecord writes rec as one item of a YAML sequence, so the whole
// output is a single document.
func writeYAMLRecord(w io.Writer, rec record) error {
	b, err := yaml.Marshal([]record{rec})
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
