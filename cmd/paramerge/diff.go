package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/opendsc/paramerge"
	"github.com/opendsc/paramerge/codec"
	"github.com/opendsc/paramerge/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff <from> <to>", cli.ErrUsage)
	}
	from, err := loadDoc(cc, args[0])
	if err != nil {
		return err
	}
	to, err := loadDoc(cc, args[1])
	if err != nil {
		return err
	}
	patch, err := paramerge.Diff(from, to)
	if err != nil {
		return err
	}
	return codec.Encode(patch, cc.Out, cfg.encOpts()...)
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch <doc> <patch>", cli.ErrUsage)
	}
	doc, err := loadDoc(cc, args[0])
	if err != nil {
		return err
	}
	p, err := loadDoc(cc, args[1])
	if err != nil {
		return err
	}
	out, err := paramerge.ApplyPatch(doc, p)
	if err != nil {
		return err
	}
	return codec.Encode(out, cc.Out, cfg.encOpts()...)
}

func loadDoc(cc *cli.Context, file string) (*ir.Node, error) {
	var (
		d   []byte
		err error
	)
	if file == "-" {
		d, err = io.ReadAll(cc.In)
	} else {
		d, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	node, err := codec.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", file, err)
	}
	return node, nil
}
