package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/ion-format/go-ion/encode"
	"github.com/ion-format/go-ion/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	for _, file := range filesOrStdin(args[1:]) {
		doc, err := getDocFile(cc, file, pOpts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := getDoc(cfg, cc.Out, doc, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
	}
	return nil
}

// getDoc resolves path against doc. The longest prefix of path that
// names a section selects the section; remaining segments descend into
// its fields.
func getDoc(cfg *GetConfig, w io.Writer, doc *ir.Document, path ir.Path) error {
	sec, rest := resolveSection(doc, path)
	if sec == nil {
		return fmt.Errorf("%w: %s", ir.ErrMissingSection, path)
	}
	if len(rest) == 0 {
		return encode.EncodeSection(sec, w, cfg.encOpts(w)...)
	}
	v, err := sec.Fetch(rest[0])
	if err != nil {
		return err
	}
	for _, seg := range rest[1:] {
		vv := ir.Get(v, seg)
		if vv == nil {
			return fmt.Errorf("%w: %q", ir.ErrMissingField, seg)
		}
		v = vv
	}
	if err := encode.EncodeValue(v, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

func resolveSection(doc *ir.Document, path ir.Path) (*ir.Section, ir.Path) {
	for n := len(path); n > 0; n-- {
		if sec := doc.Lookup(path[:n].String()); sec != nil {
			return sec, path[n:]
		}
	}
	return nil, nil
}
