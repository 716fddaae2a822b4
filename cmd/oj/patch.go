package main

import (
	"fmt"

	objson "github.com/objson/go-objson"
	"github.com/objson/go-objson/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one document", cli.ErrUsage)
	}
	patchNode, err := readDoc(args[0])
	if err != nil {
		return fail(err)
	}
	docArg := "-"
	if len(args) == 2 {
		docArg = args[1]
	}
	doc, err := readDoc(docArg)
	if err != nil {
		return fail(err)
	}
	res, err := objson.MergePatch(doc, patchNode)
	if err != nil {
		return fail(err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}
