package main

import (
	"fmt"

	"github.com/confit-format/confit/encode"
	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: export requires an input and an output file", cli.ErrUsage)
	}
	mode, err := parseMode(cfg.Mode)
	if err != nil {
		return err
	}
	enc, err := encode.ParseEncoding(cfg.Encoding)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	doc, err := parseFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	return encode.Export(doc, args[1],
		encode.EncodeMode(mode),
		encode.WithEncoding(enc),
		encode.Append(cfg.AppendTo),
		encode.NoClobber(cfg.NoClobber),
	)
}
