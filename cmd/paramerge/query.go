package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/opendsc/paramerge"
	"github.com/opendsc/paramerge/codec"
	"github.com/opendsc/paramerge/ir"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: query <expr> <file> [files]", cli.ErrUsage)
	}
	sources, err := readSources(cc, args[1:])
	if err != nil {
		return err
	}
	nodes := make([]*ir.Node, len(sources))
	for i, src := range sources {
		nodes[i], err = codec.Parse([]byte(src))
		if err != nil {
			return fmt.Errorf("could not parse %q: %w", args[1+i], err)
		}
	}
	merged := paramerge.Fold(nodes)
	res, err := paramerge.Query(merged, args[0])
	if err != nil {
		return err
	}
	switch v := res.(type) {
	case string:
		_, err = fmt.Fprintln(cc.Out, v)
	default:
		d, jerr := json.Marshal(v)
		if jerr != nil {
			return jerr
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
	}
	return err
}
