package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	bad := 0
	for _, file := range filesOrStdin(args) {
		_, err := getDocFile(cc, file, pOpts...)
		if err == nil {
			continue
		}
		bad++
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: %s\n", file, err)
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
