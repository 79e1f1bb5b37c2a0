package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/opendsc/paramerge"
	"github.com/opendsc/paramerge/codec"
	"github.com/opendsc/paramerge/format"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outputFormat() format.Format {
	var f format.Format
	switch {
	case cfg.J:
		f = format.JSONFormat
	case cfg.Y:
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts() []codec.EncodeOption {
	return []codec.EncodeOption{codec.EncodeFormat(cfg.outputFormat())}
}

func (cfg *MainConfig) mergeOpts() []paramerge.Option {
	return []paramerge.Option{paramerge.OutputFormat(cfg.outputFormat())}
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type TraceConfig struct {
	*MainConfig

	Ledger bool `cli:"name=ledger desc='emit merged content and ledger as one json object'"`
	Color  bool `cli:"name=color desc='force colored ledger output'"`

	Trace *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}
