package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts := []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
	}
	return cli.NewCommandAt(&cfg.Main, "dt").
		WithSynopsis("dt [opts] command [opts]").
		WithDescription("dt works with yaml documents through the doctree node model.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dtMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			JSONCommand(cfg),
			DiffCommand(cfg),
			EvalCommand(cfg),
		)
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("parse documents and re-emit them canonically").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("json").
		WithAliases("j").
		WithSynopsis("json [files]").
		WithDescription("emit documents as json").
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonOut(cfg, cc, args)
		})
	cfg.JSON = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file> <file>").
		WithDescription("diff the canonical forms of two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "e",
			Description: "expression to evaluate against each document",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.Expr = a
				return a, nil
			}, "(expr)"),
		},
	}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval -e <expr> [files]").
		WithDescription("evaluate an expression against decoded documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}
