package main

import (
	"bytes"
	"fmt"

	"github.com/confit-format/confit/encode"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diff compares the canonical renderings of two configuration files.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	mode, err := parseMode(cfg.Mode)
	if err != nil {
		return err
	}
	texts := make([]string, 2)
	for i, file := range args {
		doc, err := parseFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := encode.Encode(doc, &buf, encode.EncodeMode(mode)); err != nil {
			return err
		}
		texts[i] = buf.String()
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(texts[0], texts[1], true)
	dmp.DiffCleanupSemantic(diffs)
	fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	return nil
}
