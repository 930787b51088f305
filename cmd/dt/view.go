package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/doctree/yamlio"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := getDocFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		d, err := yamlio.Marshal(node)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
