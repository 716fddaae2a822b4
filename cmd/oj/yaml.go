package main

import (
	"fmt"

	"github.com/objson/go-objson/encode"
	"github.com/objson/go-objson/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func yamlCmd(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	arg, err := oneArg(args)
	if err != nil {
		return err
	}
	if cfg.R {
		return yamlIn(cfg, cc, arg)
	}
	node, err := readDoc(arg)
	if err != nil {
		return fail(err)
	}
	d, err := yaml.Marshal(ir.ToAny(node))
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

func yamlIn(cfg *YAMLConfig, cc *cli.Context, arg string) error {
	d, err := readRaw(arg)
	if err != nil {
		return err
	}
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return fail(err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return fail(err)
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}
