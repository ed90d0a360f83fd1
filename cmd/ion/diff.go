package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ion-format/go-ion/encode"
	"github.com/ion-format/go-ion/ir"
	"github.com/ion-format/go-ion/parse"
)

// diff compares the canonical encodings of two documents, so
// differences in whitespace and comments do not register.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	a, err := canonical(cfg, cc, args[0], pOpts)
	if err != nil {
		return err
	}
	b, err := canonical(cfg, cc, args[1], pOpts)
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	ta, tb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ta, tb, false), lines)
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitKeepNonEmpty(d.Text) {
			fmt.Fprintf(cc.Out, "%s%s\n", prefix, line)
		}
	}
	return cli.ExitCodeErr(1)
}

func canonical(cfg *DiffConfig, cc *cli.Context, file string, pOpts []parse.ParseOption) (string, error) {
	doc, err := getDocFile(cc, file, pOpts...)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", file, err)
	}
	return encodeString(doc)
}

func encodeString(doc *ir.Document) (string, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(doc, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func splitKeepNonEmpty(s string) []string {
	var res []string
	for len(s) > 0 {
		i := 0
		for i < len(s) && s[i] != '\n' {
			i++
		}
		res = append(res, s[:i])
		if i == len(s) {
			break
		}
		s = s[i+1:]
	}
	return res
}
