package main

import (
	"fmt"

	"github.com/objson/go-objson/encode"
	"github.com/objson/go-objson/eval"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.X == "" {
		return fmt.Errorf("%w: eval requires -x <expr>", cli.ErrUsage)
	}
	arg, err := oneArg(args)
	if err != nil {
		return err
	}
	doc, err := readDoc(arg)
	if err != nil {
		return fail(err)
	}
	res, err := eval.Eval(doc, cfg.X)
	if err != nil {
		return fail(err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}
