package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/scott-cotton/cli"
	"github.com/sirupsen/logrus"

	"github.com/heathj/tagsoup/parser"
)

type MainConfig struct {
	Strict      bool `cli:"name=strict desc='disable every tolerance'"`
	SkipText    bool `cli:"name=skip-text desc='drop the content of text runs'"`
	SkipComment bool `cli:"name=skip-comment desc='drop the content of comments'"`
	SkipCDATA   bool `cli:"name=skip-cdata desc='drop the content of CDATA sections'"`
	SkipPI      bool `cli:"name=skip-pi desc='drop processing instruction bodies'"`
	Color       bool `cli:"name=color desc='color output'"`
	Verbose     bool `cli:"name=v aliases=verbose desc='debug logging'"`

	Raw string `cli:"name=raw desc='comma separated raw text elements (default script,style)'"`

	// File is the configuration loaded with -c.
	File *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// FileConfig is the YAML configuration file layout: the tokenizer toggles
// plus the raw text elements.
type FileConfig struct {
	parser.Config `yaml:",inline"`

	RawText []string `yaml:"raw_text"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config %q", path)
	}
	return parseFileConfig(data)
}

// parseFileConfig decodes a configuration file. Toggles left out keep their
// defaults.
func parseFileConfig(data []byte) (*FileConfig, error) {
	fc := &FileConfig{Config: parser.DefaultConfig()}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, errors.Wrap(err, "could not decode config")
	}
	return fc, nil
}

func (cfg *MainConfig) configOpt(_ *cli.Context, v string) (any, error) {
	fc, err := loadFileConfig(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.File = fc
	return v, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// parserConfig merges the configuration file with the flags. Flags can only
// narrow: -strict drops the tolerances and -skip-* drop content.
func (cfg *MainConfig) parserConfig() parser.Config {
	pc := parser.DefaultConfig()
	if cfg.File != nil {
		pc = cfg.File.Config
	}
	if cfg.Strict {
		pc = pc.Strict()
	}
	pc.SkipText = pc.SkipText || cfg.SkipText
	pc.SkipComment = pc.SkipComment || cfg.SkipComment
	pc.SkipCDATA = pc.SkipCDATA || cfg.SkipCDATA
	pc.SkipPI = pc.SkipPI || cfg.SkipPI
	return pc
}

// rawTextElements returns nil when neither -raw nor the config file name any,
// which leaves the scanner default in place.
func (cfg *MainConfig) rawTextElements() []string {
	if cfg.Raw != "" {
		var names []string
		for _, n := range strings.Split(cfg.Raw, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		return names
	}
	if cfg.File != nil && cfg.File.RawText != nil {
		return cfg.File.RawText
	}
	return nil
}

func (cfg *MainConfig) logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.ErrorLevel)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func (cfg *MainConfig) scannerOpts(extra ...parser.ScannerOption) []parser.ScannerOption {
	opts := []parser.ScannerOption{
		parser.WithConfig(cfg.parserConfig()),
		parser.WithLogger(cfg.logger()),
	}
	if names := cfg.rawTextElements(); names != nil {
		opts = append(opts, parser.WithRawTextElements(names...))
	}
	return append(opts, extra...)
}

// colorize reports whether output to w is colored: -color wins when given,
// otherwise terminals get color.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type TokensConfig struct {
	*MainConfig

	YAML  bool   `cli:"name=y aliases=yaml desc='print YAML records'"`
	Where string `cli:"name=where desc='only print tokens for which the expression is true'"`

	Tokens *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
