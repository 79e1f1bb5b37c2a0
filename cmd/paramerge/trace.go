package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/opendsc/paramerge"
	"github.com/opendsc/paramerge/ir"
)

func trace(cfg *TraceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Trace.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: trace needs at least one source file", cli.ErrUsage)
	}
	contents, err := readSources(cc, args)
	if err != nil {
		return err
	}
	sources := make([]paramerge.Source, len(args))
	for i, file := range args {
		sources[i] = paramerge.Source{
			ScopeName:  scopeName(file, i),
			Precedence: i + 1,
			Content:    contents[i],
		}
	}
	res, err := paramerge.MergeWithProvenance(sources, cfg.mergeOpts()...)
	if err != nil {
		return err
	}
	if cfg.Ledger {
		d, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	}
	if _, err := io.WriteString(cc.Out, res.MergedContent); err != nil {
		return err
	}
	return writeLedger(cfg, cc.Out, res.Provenance)
}

func scopeName(file string, i int) string {
	if file == "-" {
		return fmt.Sprintf("stdin-%d", i)
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeLedger(cfg *TraceConfig, w io.Writer, ledger paramerge.Ledger) error {
	if len(ledger) == 0 {
		return nil
	}
	useColor := cfg.Color
	if !useColor {
		if f, ok := w.(*os.File); ok {
			useColor = isatty.IsTerminal(f.Fd())
		}
	}
	pathFmt, scopeFmt := fmt.Sprintf, fmt.Sprintf
	if useColor {
		pathFmt = color.New(color.FgCyan).SprintfFunc()
		scopeFmt = color.New(color.FgGreen).SprintfFunc()
	}
	if _, err := fmt.Fprintf(w, "---\n# provenance\n"); err != nil {
		return err
	}
	for _, path := range slices.Sorted(maps.Keys(ledger)) {
		rec := ledger[path]
		_, err := fmt.Fprintf(w, "%s: %s (precedence %d) = %s\n",
			pathFmt("%s", path), scopeFmt("%s", rec.ScopeName), rec.Precedence, valueString(rec.Value))
		if err != nil {
			return err
		}
		for _, ov := range rec.OverriddenValues {
			_, err := fmt.Fprintf(w, "  overrode %s (precedence %d) = %s\n",
				ov.ScopeName, ov.Precedence, valueString(ov.Value))
			if err != nil {
				return err
			}
		}
		if !useColor || len(rec.OverriddenValues) == 0 {
			continue
		}
		prev := rec.OverriddenValues[0].Value
		if rec.Value.Type != ir.StringType || prev.Type != ir.StringType {
			continue
		}
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(prev.String, rec.Value.String, false)
		if _, err := fmt.Fprintf(w, "  diff: %s\n", dmp.DiffPrettyText(diffs)); err != nil {
			return err
		}
	}
	return nil
}

func valueString(node *ir.Node) string {
	d, err := json.Marshal(node)
	if err != nil {
		return fmt.Sprintf("<err: %v>", err)
	}
	return string(d)
}
