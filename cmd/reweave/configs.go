package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colorized diff output'"`

	Main *cli.Command
}

// colorize follows the terminal unless -color forces it on.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ApplyConfig struct {
	*MainConfig

	Recipe   string `cli:"name=r aliases=recipe desc='recipe file (yaml)'"`
	Fragment bool   `cli:"name=fragment aliases=frag desc='treat inputs as fragments'"`

	Apply *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Tag      string `cli:"name=tag desc='select by tag name'"`
	Class    string `cli:"name=class desc='select by class token'"`
	ID       string `cli:"name=id desc='select by id'"`
	Expr     string `cli:"name=e aliases=expr desc='select by expression'"`
	Fragment bool   `cli:"name=fragment aliases=frag desc='treat inputs as fragments'"`

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
