package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "c",
			Aliases:     []string{"config"},
			Description: "YAML configuration file",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.configOpt), "(filepath)"),
		},
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.outOpt), "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tagsoup").
		WithSynopsis("tagsoup [opts] command [opts] [files]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tagsoupMain(cfg, cc, args)
		}).
		WithSubs(
			TokensCommand(cfg),
			CheckCommand(cfg))
}

const mainDescription = `tagsoup tokenizes HTML, XML and SGML-ish markup leniently.

Files are read in chunks, "-" or no file reads standard input. The contents of
script and style elements are treated as raw text; -raw replaces that list.

A configuration file given with -c holds the tokenizer toggles:

  skip_text: false
  skip_cdata: false
  skip_comment: false
  skip_pi: false
  allow_weak_comment_coding: true
  allow_weak_pi_coding: true
  allow_weak_double_quote_coding: true
  allow_weak_single_quote_coding: true
  allow_unquoted_attribute_value: true
  allow_concated_attribute: true
  raw_text: [script, style]

Flags given on the command line only narrow the file's settings.`

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t").
		WithSynopsis("tokens [-y] [-where expr] [files]").
		WithDescription(tokensDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

const tokensDescription = `print one token per line.

-where takes a boolean expression over each token record, with the fields
Kind, Name, Target, Content, Attrs (a map), Line, Column and File, as in

  tagsoup tokens -where 'Kind == "OpenTag" && "href" in Attrs' page.html`

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("report malformed markup, exiting 1 if any is found").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
