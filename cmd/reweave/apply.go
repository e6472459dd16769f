package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/reweave/reweave"
	"github.com/reweave/reweave/parse"
	"github.com/reweave/reweave/recipe"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Recipe == "" {
		return fmt.Errorf("%w: apply requires -r <recipe>", cli.ErrUsage)
	}
	rec, err := recipe.LoadFile(cfg.Recipe)
	if err != nil {
		return err
	}
	pairs, err := rec.Pairs()
	if err != nil {
		return fmt.Errorf("error compiling recipe %s: %w", cfg.Recipe, err)
	}
	for _, arg := range inputs(args) {
		d, err := readInput(cc, arg)
		if err != nil {
			return err
		}
		out, err := applyInput(cfg, pairs, string(d))
		if err != nil {
			return fmt.Errorf("error transforming %s: %w", arg, err)
		}
		if _, err := fmt.Fprintln(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}

func applyInput(cfg *ApplyConfig, pairs []reweave.Pair, markup string) (string, error) {
	if !cfg.Fragment {
		return reweave.DocumentString(markup, pairs...)
	}
	roots, err := parse.Fragment(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	out, err := reweave.TransformFragment(roots, pairs)
	if err != nil {
		return "", err
	}
	return parse.ForestString(out)
}
