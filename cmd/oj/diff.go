package main

import (
	"fmt"

	objson "github.com/objson/go-objson"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	from, err := readDoc(args[0])
	if err != nil {
		return fail(err)
	}
	to, err := readDoc(args[1])
	if err != nil {
		return fail(err)
	}
	if objson.Equal(from, to) {
		return nil
	}
	fmt.Fprintln(cc.Out, objson.DiffText(from, to))
	return cli.ExitCodeErr(1)
}
