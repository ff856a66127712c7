package main

import (
	"fmt"
	"os"

	"github.com/confit-format/confit/diag"
	"github.com/confit-format/confit/encode"
	"github.com/confit-format/confit/eval"
	"github.com/confit-format/confit/literal"
	"github.com/confit-format/confit/parse"
	"github.com/scott-cotton/cli"
	"golang.org/x/text/language"
)

type MainConfig struct {
	Verbosity string `cli:"name=v desc='log level: error, warn, info, verbose, debug'"`
	Color     bool   `cli:"name=color desc='force colored log output'"`
	ExpandEnv bool   `cli:"name=E aliases=expand-env desc='expand %NAME% environment placeholders'"`
	Legacy    bool   `cli:"name=legacy desc='use the legacy host-grammar evaluator'"`

	LocaleTag string
	Bindings  map[string]any

	Main *cli.Command
}

// localeOpt parses a BCP 47 tag for numeric separator conventions.
func (cfg *MainConfig) localeOpt(_ *cli.Context, v string) (any, error) {
	tag, err := language.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("%w: bad locale %q: %w", cli.ErrUsage, v, err)
	}
	cfg.LocaleTag = v
	return tag, nil
}

// bindOpt records one -b name=value binding for the evaluator.
func (cfg *MainConfig) bindOpt(_ *cli.Context, v string) (any, error) {
	name, val, ok := splitBinding(v)
	if !ok {
		return nil, fmt.Errorf("%w: bad binding %q, want name=value", cli.ErrUsage, v)
	}
	cfg.Bindings[name] = val
	return val, nil
}

func splitBinding(v string) (name, val string, ok bool) {
	for i := 0; i < len(v); i++ {
		if v[i] == '=' {
			if i == 0 {
				return "", "", false
			}
			return v[:i], v[i+1:], true
		}
	}
	return "", "", false
}

func (cfg *MainConfig) locale() literal.Locale {
	if cfg.LocaleTag == "" {
		return literal.SystemLocale()
	}
	tag, err := language.Parse(cfg.LocaleTag)
	if err != nil {
		return literal.SystemLocale()
	}
	return literal.LocaleFor(tag)
}

func (cfg *MainConfig) logger() diag.Logger {
	level := diag.WarnLevel
	if cfg.Verbosity != "" {
		l, err := diag.ParseLevel(cfg.Verbosity)
		if err == nil {
			level = l
		}
	}
	l := diag.NewWriterLogger(os.Stderr, level)
	if cfg.Color {
		l = l.WithColor(true)
	}
	return l
}

func (cfg *MainConfig) evaluator() eval.Evaluator {
	if cfg.Legacy {
		return eval.NewLua(eval.WithVars(cfg.Bindings))
	}
	return eval.NewBindings(cfg.Bindings)
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.WithEvaluator(cfg.evaluator()),
		parse.WithExpandEnv(cfg.ExpandEnv),
		parse.WithLocale(cfg.locale()),
		parse.WithLogger(cfg.logger()),
	}
}

type LoadConfig struct {
	*MainConfig
	Mode string `cli:"name=m aliases=mode desc='output mode: unexpanded, expanded, all'"`

	Load *cli.Command
}

func (cfg *LoadConfig) encOpts() ([]encode.EncodeOption, error) {
	mode, err := parseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	return []encode.EncodeOption{encode.EncodeMode(mode)}, nil
}

func parseMode(s string) (encode.Mode, error) {
	switch s {
	case "", "unexpanded", "u":
		return encode.Unexpanded, nil
	case "expanded", "e":
		return encode.Expanded, nil
	case "all", "a":
		return encode.All, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", cli.ErrUsage, s)
}

type ResolveConfig struct {
	*MainConfig
	Mode string `cli:"name=m aliases=mode desc='output mode: unexpanded, expanded, all'"`

	Resolve *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Mode      string `cli:"name=m aliases=mode desc='output mode: unexpanded, expanded, all'"`
	Encoding  string `cli:"name=enc desc='output encoding: utf-8, utf-16, latin-1, windows-1252'"`
	AppendTo  bool   `cli:"name=a aliases=append desc='append to the target instead of truncating'"`
	NoClobber bool   `cli:"name=n aliases=no-clobber desc='refuse to overwrite an existing target'"`

	Export *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Spec string `cli:"name=spec desc='required-keys spec file (yaml)'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Mode string `cli:"name=m aliases=mode desc='render mode for comparison'"`

	Diff *cli.Command
}
