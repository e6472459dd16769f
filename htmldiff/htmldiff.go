// Package htmldiff reports textual differences between trees via
// their normalized serializations. Parsing then serializing both
// sides first removes formatting noise, so remaining diffs are
// structural or content changes.
package htmldiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/reweave/reweave/dom"
	"github.com/reweave/reweave/parse"
)

func Diff(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// Trees diffs the serializations of two trees.
func Trees(from, to *dom.Node) ([]diffpatch.Diff, error) {
	a, err := parse.String(from)
	if err != nil {
		return nil, err
	}
	b, err := parse.String(to)
	if err != nil {
		return nil, err
	}
	return Diff(a, b), nil
}

func Changed(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

var (
	insColor = color.New(color.FgGreen).SprintFunc()
	delColor = color.New(color.FgRed, color.CrossedOut).SprintFunc()
)

// Format renders diffs as one string, inserts and deletes marked
// inline; with colorize they are green and struck-through red instead
// of bracketed.
func Format(diffs []diffpatch.Diff, colorize bool) string {
	buf := &strings.Builder{}
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffEqual:
			buf.WriteString(d.Text)
		case diffpatch.DiffInsert:
			if colorize {
				buf.WriteString(insColor(d.Text))
			} else {
				buf.WriteString("{+" + d.Text + "+}")
			}
		case diffpatch.DiffDelete:
			if colorize {
				buf.WriteString(delColor(d.Text))
			} else {
				buf.WriteString("{-" + d.Text + "-}")
			}
		}
	}
	return buf.String()
}
