package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Bindings: map[string]any{}}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts,
		&cli.Opt{
			Name:        "locale",
			Description: "BCP 47 tag fixing numeric separators (default: system locale)",
			Type:        cli.NamedFuncOpt(cfg.localeOpt, "(tag)"),
		},
		&cli.Opt{
			Name:        "b",
			Aliases:     []string{"bind"},
			Description: "variable binding for substitution",
			Type:        cli.NamedFuncOpt(cfg.bindOpt, "(name=value)"),
		})

	return cli.NewCommandAt(&cfg.Main, "confit").
		WithSynopsis("confit [opts] command [opts]").
		WithDescription("confit parses, resolves, and exports typed configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return confitMain(cfg, cc, args)
		}).
		WithSubs(
			LoadCommand(cfg),
			ResolveCommand(cfg),
			ExportCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg))
}

func LoadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LoadConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Load, "load").
		WithAliases("l").
		WithSynopsis("load [-m mode] [files]").
		WithDescription("parse configuration files and re-emit them").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return load(cfg, cc, args)
		})
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Resolve, "resolve").
		WithAliases("r").
		WithSynopsis("resolve [-m mode] [files]").
		WithDescription("re-resolve values against current bindings and emit").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return resolveCmd(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithSynopsis("export [-m mode] [-enc encoding] [-a] [-n] <in> <out>").
		WithDescription("parse a configuration file and write it to a target file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check -spec required.yaml [files]").
		WithDescription("report required sections and keys missing from files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-m mode] <a> <b>").
		WithDescription("diff the canonical renderings of two configuration files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
