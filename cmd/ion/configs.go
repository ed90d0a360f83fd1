package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	ion "github.com/ion-format/go-ion"
	"github.com/ion-format/go-ion/encode"
	"github.com/ion-format/go-ion/parse"
)

type MainConfig struct {
	Color    bool   `cli:"name=color desc='encode with color'"`
	Filter   string `cli:"name=filter desc='section filter expression over path and segments'"`
	Sections string `cli:"name=s desc='comma separated section paths to keep'"`
	MaxDepth int    `cli:"name=maxDepth desc='max value nesting depth'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() ([]parse.ParseOption, error) {
	var res []parse.ParseOption
	if cfg.MaxDepth > 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	if cfg.Filter != "" && cfg.Sections != "" {
		return nil, fmt.Errorf("%w: only one of -filter, -s may be specified", cli.ErrUsage)
	}
	if cfg.Filter != "" {
		f, err := ion.FilterExpr(cfg.Filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		res = append(res, parse.Filter(f))
	}
	if cfg.Sections != "" {
		res = append(res, parse.Filter(ion.FilterPaths(strings.Split(cfg.Sections, ",")...)))
	}
	return res, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='suppress diagnostics, only set the exit code'"`

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	OutFormat string `cli:"name=O aliases=ofmt desc='output format: ion, json, yaml'"`

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
