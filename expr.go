package reweave

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/reweave/reweave/dom"
	"github.com/reweave/reweave/zipper"
)

// Expr compiles src as a boolean expression over the matched element
// and returns it as a selector. The environment exposes tag, id,
// attrs (map), classes (list), and text (concatenated content), e.g.
//
//	Expr(`tag == "a" && attrs["href"] startsWith "https:"`)
//
// Compilation errors surface eagerly; evaluation errors abort the
// walk like any other selector failure.
func Expr(src string) (Selector, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling selector expression: %w", err)
	}
	return func(loc zipper.Loc) (bool, error) {
		n := loc.Node()
		if n.Type != dom.ElementType {
			return false, nil
		}
		attrs := n.AttrMap()
		if attrs == nil {
			attrs = map[string]string{}
		}
		classes := n.Classes()
		if classes == nil {
			classes = []string{}
		}
		env := map[string]any{
			"tag":     n.Tag,
			"id":      n.ID(),
			"attrs":   attrs,
			"classes": classes,
			"text":    n.TextContent(),
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return false, fmt.Errorf("selector expression: %w", err)
		}
		b, ok := out.(bool)
		if !ok {
			return false, fmt.Errorf("selector expression returned %T, not bool", out)
		}
		return b, nil
	}, nil
}
