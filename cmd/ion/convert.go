package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ion-format/go-ion/encode"
	"github.com/ion-format/go-ion/ir"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	var enc func(*ir.Document) error
	switch cfg.OutFormat {
	case "ion", "i", "":
		enc = func(doc *ir.Document) error {
			return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...)
		}
	case "json", "j":
		enc = func(doc *ir.Document) error {
			return encode.EncodeJSON(doc, cc.Out)
		}
	case "yaml", "y":
		enc = func(doc *ir.Document) error {
			return encode.EncodeYAML(doc, cc.Out)
		}
	default:
		return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, cfg.OutFormat)
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	for _, file := range filesOrStdin(args) {
		doc, err := getDocFile(cc, file, pOpts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := enc(doc); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
