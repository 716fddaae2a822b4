package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/objson/go-objson/ir"
	"github.com/objson/go-objson/parse"

	"github.com/scott-cotton/cli"
)

func ojMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readDoc reads and parses one document from the named file, or from
// stdin when arg is "-" or empty.
func readDoc(arg string) (*ir.Node, error) {
	d, err := readRaw(arg)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d)
	if err != nil {
		if arg == "" || arg == "-" {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", arg, err)
	}
	return node, nil
}

func readRaw(arg string) ([]byte, error) {
	var r io.Reader
	if arg == "" || arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	return io.ReadAll(r)
}

// fail prints err and maps it to exit status 1.
func fail(err error) error {
	fmt.Fprintln(os.Stderr, err)
	return cli.ExitCodeErr(1)
}

func oneArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected at most one file argument", cli.ErrUsage)
	}
}
