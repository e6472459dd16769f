package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// readInput reads one input, "-" meaning the command's stdin.
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path == "-" {
		r = cc.In
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return d, nil
}

// inputs defaults to stdin when no files are named.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
