package main

import (
	"github.com/confit-format/confit/encode"
	"github.com/confit-format/confit/resolve"
	"github.com/scott-cotton/cli"
)

func resolveCmd(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		return err
	}
	mode, err := parseMode(cfg.Mode)
	if err != nil {
		return err
	}
	docs, err := parseFiles(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		refreshed, err := resolve.Resolve(doc, cfg.resolveOpts()...)
		if err != nil {
			return err
		}
		if err := encode.Encode(refreshed, cc.Out, encode.EncodeMode(mode)); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *MainConfig) resolveOpts() []resolve.Option {
	return []resolve.Option{
		resolve.WithEvaluator(cfg.evaluator()),
		resolve.WithExpandEnv(cfg.ExpandEnv),
		resolve.WithLocale(cfg.locale()),
		resolve.WithLogger(cfg.logger()),
	}
}
