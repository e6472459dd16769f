package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/reweave/reweave/htmldiff"
	"github.com/reweave/reweave/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := normalized(cc, args[0])
	if err != nil {
		return err
	}
	b, err := normalized(cc, args[1])
	if err != nil {
		return err
	}
	diffs := htmldiff.Diff(a, b)
	if !htmldiff.Changed(diffs) {
		return nil
	}
	if _, err := fmt.Fprintln(cc.Out, htmldiff.Format(diffs, cfg.colorize(cc.Out))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// normalized parses then serializes, so formatting differences do not
// show up as diffs.
func normalized(cc *cli.Context, path string) (string, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return "", err
	}
	root, err := parse.ParseString(string(d))
	if err != nil {
		return "", fmt.Errorf("error parsing %s: %w", path, err)
	}
	return parse.String(root)
}
