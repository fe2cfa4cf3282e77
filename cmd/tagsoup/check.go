package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/scott-cotton/cli"

	"github.com/heathj/tagsoup/parser"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	pal := plainPalette()
	if cfg.colorize(cc.Out) {
		pal = colorPalette()
	}
	found := 0
	err = eachInput(cc, args, func(name string, r io.Reader) error {
		n, err := checkReader(cc.Out, r, name, cfg.MainConfig, pal)
		found += n
		return err
	})
	if err != nil {
		return err
	}
	if found > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkReader reports every malformed construct in r as name:line:col and
// returns how many it found. Unterminated markup at the end counts as one.
func checkReader(w io.Writer, r io.Reader, name string, cfg *MainConfig, pal *palette) (int, error) {
	s := parser.NewScanner(r, cfg.scannerOpts(parser.WithMalformedPolicy(parser.SkipMalformed))...)
	found := 0
	for s.Next() {
		u, ok := s.Token().(parser.Unknown)
		if !ok {
			continue
		}
		found++
		msg := u.Message
		var syn *parser.SyntaxError
		if errors.As(u.Err, &syn) {
			msg = fmt.Sprintf("expecting %s, found %q in %s", syn.Expected, syn.Found, syn.State)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s\n", name, u.Line, u.Column, pal.Error("%s", msg))
	}
	switch err := s.Err(); {
	case err == nil:
	case errors.Is(err, parser.ErrUnexpectedEOF):
		found++
		fmt.Fprintf(w, "%s: %s\n", name, pal.Error("%s", err))
	default:
		return found, err
	}
	return found, nil
}
