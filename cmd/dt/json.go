package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/doctree/yamlio"
)

func jsonOut(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		cfg.JSON.Usage(cc, err)
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
		d, err := yamlio.MarshalJSON(node)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
