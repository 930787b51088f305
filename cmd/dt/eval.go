package main

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/signadot/doctree/yamlio"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: eval requires -e", cli.ErrUsage)
	}
	program, err := expr.Compile(cfg.Expr,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", cfg.Expr, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := getDocFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		env, _ := yamlio.Plain(node).(map[string]any)
		if env == nil {
			env = map[string]any{}
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q against %s: %w", cfg.Expr, arg, err)
		}
		d, err := json.Marshal(out)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, string(d))
	}
	return nil
}
