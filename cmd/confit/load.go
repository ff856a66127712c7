package main

import (
	"fmt"
	"io"
	"os"

	"github.com/confit-format/confit/encode"
	"github.com/confit-format/confit/ir"
	"github.com/confit-format/confit/parse"
	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	encOpts, err := cfg.encOpts()
	if err != nil {
		return err
	}
	docs, err := parseFiles(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err := encode.Encode(doc, cc.Out, encOpts...); err != nil {
			return err
		}
	}
	return nil
}

// parseFiles parses each named file, or stdin when args is empty or a
// file is "-".
func parseFiles(cfg *MainConfig, cc *cli.Context, args []string) ([]*ir.Document, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	docs := make([]*ir.Document, 0, len(args))
	for _, file := range args {
		doc, err := parseFile(cfg, cc, file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func parseFile(cfg *MainConfig, cc *cli.Context, file string) (*ir.Document, error) {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	doc, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", file, err)
	}
	return doc, nil
}
