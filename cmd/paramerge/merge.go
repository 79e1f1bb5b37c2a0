package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/opendsc/paramerge"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge needs at least one source file", cli.ErrUsage)
	}
	sources, err := readSources(cc, args)
	if err != nil {
		return err
	}
	out, err := paramerge.Merge(sources, cfg.mergeOpts()...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, out)
	return err
}
