package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/reweave/reweave"
	"github.com/reweave/reweave/dom"
	"github.com/reweave/reweave/parse"
)

func selectRun(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	sel, err := cfg.selector()
	if err != nil {
		return err
	}
	for _, arg := range inputs(args) {
		d, err := readInput(cc, arg)
		if err != nil {
			return err
		}
		roots, err := cfg.roots(string(d))
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		matches, err := reweave.Select(roots, sel)
		if err != nil {
			return fmt.Errorf("error selecting in %s: %w", arg, err)
		}
		for _, m := range matches {
			s, err := parse.String(m)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cc.Out, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cfg *SelectConfig) selector() (reweave.Selector, error) {
	var sels []reweave.Selector
	if cfg.Tag != "" {
		sels = append(sels, reweave.Tag(cfg.Tag))
	}
	if cfg.Class != "" {
		sels = append(sels, reweave.Class(cfg.Class))
	}
	if cfg.ID != "" {
		sels = append(sels, reweave.ID(cfg.ID))
	}
	if cfg.Expr != "" {
		sel, err := reweave.Expr(cfg.Expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		sels = append(sels, sel)
	}
	if len(sels) == 0 {
		return nil, fmt.Errorf("%w: select requires at least one of -tag, -class, -id, -e", cli.ErrUsage)
	}
	if len(sels) == 1 {
		return sels[0], nil
	}
	return reweave.And(sels...), nil
}

func (cfg *SelectConfig) roots(markup string) ([]*dom.Node, error) {
	if cfg.Fragment {
		return parse.Fragment(strings.NewReader(markup))
	}
	root, err := parse.ParseString(markup)
	if err != nil {
		return nil, err
	}
	return []*dom.Node{root}, nil
}
