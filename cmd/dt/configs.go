package main

import (
	"os"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Out      string
	CloseOut func() error

	Main *cli.Command
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

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type JSONConfig struct {
	*MainConfig
	JSON *cli.Command
}

type DiffConfig struct {
	Color bool `cli:"name=color desc='force colored diff output'"`

	*MainConfig
	Diff *cli.Command
}

type EvalConfig struct {
	Expr string

	*MainConfig
	Eval *cli.Command
}
