package main

import (
	"fmt"

	"github.com/objson/go-objson/encode"

	"github.com/scott-cotton/cli"
)

func describe(cfg *DescribeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Describe.Parse(cc, args)
	if err != nil {
		return err
	}
	arg, err := oneArg(args)
	if err != nil {
		return err
	}
	node, err := readDoc(arg)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(cc.Out, encode.Describe(node))
	return nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	arg, err := oneArg(args)
	if err != nil {
		return err
	}
	node, err := readDoc(arg)
	if err != nil {
		return fail(err)
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}
