package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/doctree/ir"
	"github.com/signadot/doctree/yamlio"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getDocFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getDocFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if ir.Equal(y1, y2) {
		return nil
	}
	c1, err := yamlio.Marshal(y1)
	if err != nil {
		return err
	}
	c2, err := yamlio.Marshal(y2)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(c1), string(c2), true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	useColor := cfg.Color || (cfg.Out == "" && isatty.IsTerminal(os.Stdout.Fd()))
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			if useColor {
				ins.Fprint(cc.Out, d.Text)
			} else {
				fmt.Fprintf(cc.Out, "{+%s+}", d.Text)
			}
		case diffmatchpatch.DiffDelete:
			if useColor {
				del.Fprint(cc.Out, d.Text)
			} else {
				fmt.Fprintf(cc.Out, "[-%s-]", d.Text)
			}
		default:
			fmt.Fprint(cc.Out, d.Text)
		}
	}
	return cli.ExitCodeErr(1)
}
