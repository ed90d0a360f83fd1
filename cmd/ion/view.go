package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/ion-format/go-ion/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return viewFiles(cfg, cc, cc.Out, filesOrStdin(args))
}

func viewFiles(cfg *ViewConfig, cc *cli.Context, w io.Writer, files []string) error {
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	for i, file := range files {
		doc, err := getDocFile(cc, file, pOpts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if i > 0 {
			if _, err := w.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
