package main

import (
	"fmt"

	"github.com/confit-format/confit/validate"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Spec == "" {
		return fmt.Errorf("%w: check requires -spec", cli.ErrUsage)
	}
	spec, err := validate.LoadSpec(cfg.Spec)
	if err != nil {
		return err
	}
	docs, err := parseFiles(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	warn := color.New(color.FgYellow)
	total := 0
	for i, doc := range docs {
		name := "-"
		if i < len(args) {
			name = args[i]
		}
		for _, f := range validate.Check(doc, spec) {
			warn.Fprintf(cc.Out, "%s: %s\n", name, f)
			total++
		}
	}
	// findings are diagnostics, never a rejection
	fmt.Fprintf(cc.Out, "%d finding(s)\n", total)
	return nil
}
