// Package recipe compiles declarative YAML rule files into selector
// and transformer pairs. Recipes are a CLI convenience: they cover
// the common primitives and combinators, not a selector grammar;
// anything richer is composed in code against the root package.
package recipe

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/reweave/reweave"
)

// sortedKeys keeps rule compilation deterministic across runs.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type Recipe struct {
	Rules []Rule `yaml:"rules"`
}

// Rule is one (selector, transformer) pair: match describes the
// positions, then the rewrite applied there.
type Rule struct {
	Match Match  `yaml:"match"`
	Then  Action `yaml:"then"`
}

// Match describes a conjunction of selector primitives, optionally
// anchored under an ancestor chain (within, outermost first).
type Match struct {
	Tag     string            `yaml:"tag,omitempty"`
	ID      string            `yaml:"id,omitempty"`
	Class   []string          `yaml:"class,omitempty"`
	Attrs   map[string]string `yaml:"attrs,omitempty"`
	HasAttr []string          `yaml:"hasAttr,omitempty"`
	AttrRe  map[string]string `yaml:"attrRe,omitempty"`
	Expr    string            `yaml:"expr,omitempty"`
	Within  []Match           `yaml:"within,omitempty"`
}

// Action describes the rewrite. Steps compose in the order of the
// struct fields; remove and unwrap are terminal and exclusive.
type Action struct {
	Text        *string           `yaml:"text,omitempty"`
	HTML        *string           `yaml:"html,omitempty"`
	SetAttrs    map[string]string `yaml:"setAttrs,omitempty"`
	RemoveAttrs []string          `yaml:"removeAttrs,omitempty"`
	AddClass    []string          `yaml:"addClass,omitempty"`
	RemoveClass []string          `yaml:"removeClass,omitempty"`
	Wrap        string            `yaml:"wrap,omitempty"`
	WrapAttrs   map[string]string `yaml:"wrapAttrs,omitempty"`
	Unwrap      bool              `yaml:"unwrap,omitempty"`
	Remove      bool              `yaml:"remove,omitempty"`
}

func Load(r io.Reader) (*Recipe, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading recipe: %w", err)
	}
	res := &Recipe{}
	if err := yaml.Unmarshal(d, res); err != nil {
		return nil, fmt.Errorf("error decoding recipe: %w", err)
	}
	return res, nil
}

func LoadFile(path string) (*Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Pairs compiles the recipe's rules, in order, into engine pairs.
func (r *Recipe) Pairs() ([]reweave.Pair, error) {
	res := make([]reweave.Pair, 0, len(r.Rules))
	for i := range r.Rules {
		rule := &r.Rules[i]
		sel, err := rule.Match.selector()
		if err != nil {
			return nil, fmt.Errorf("rule %d match: %w", i, err)
		}
		tr, err := rule.Then.transformer()
		if err != nil {
			return nil, fmt.Errorf("rule %d action: %w", i, err)
		}
		res = append(res, reweave.Pair{Sel: sel, Tr: tr})
	}
	return res, nil
}

func (m *Match) selector() (reweave.Selector, error) {
	var sels []reweave.Selector
	if m.Tag != "" {
		sels = append(sels, reweave.Tag(m.Tag))
	}
	if m.ID != "" {
		sels = append(sels, reweave.ID(m.ID))
	}
	if len(m.Class) > 0 {
		sels = append(sels, reweave.Class(m.Class...))
	}
	for _, k := range sortedKeys(m.Attrs) {
		sels = append(sels, reweave.Attr(k, m.Attrs[k]))
	}
	for _, k := range m.HasAttr {
		sels = append(sels, reweave.HasAttr(k))
	}
	for _, k := range sortedKeys(m.AttrRe) {
		re, err := regexp.Compile(m.AttrRe[k])
		if err != nil {
			return nil, fmt.Errorf("attrRe %q: %w", k, err)
		}
		sels = append(sels, reweave.AttrRe(k, re))
	}
	if m.Expr != "" {
		sel, err := reweave.Expr(m.Expr)
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
	}
	if len(sels) == 0 {
		return nil, ErrEmptyMatch
	}
	self := reweave.And(sels...)
	if len(sels) == 1 {
		self = sels[0]
	}
	if len(m.Within) == 0 {
		return self, nil
	}
	chain := make([]reweave.Selector, 0, len(m.Within)+1)
	for i := range m.Within {
		anc := &m.Within[i]
		if len(anc.Within) > 0 {
			return nil, fmt.Errorf("within may not nest")
		}
		sel, err := anc.selector()
		if err != nil {
			return nil, err
		}
		chain = append(chain, sel)
	}
	chain = append(chain, self)
	return reweave.Descendant(chain...)
}

func (a *Action) transformer() (reweave.Transformer, error) {
	if a.Remove && a.Unwrap {
		return nil, fmt.Errorf("%w: remove and unwrap are exclusive", ErrBadAction)
	}
	var steps []reweave.Transformer
	if a.Text != nil {
		steps = append(steps, reweave.TextContent(*a.Text))
	}
	if a.HTML != nil {
		steps = append(steps, reweave.HTMLContent(*a.HTML))
	}
	for _, k := range sortedKeys(a.SetAttrs) {
		steps = append(steps, reweave.SetAttr(k, a.SetAttrs[k]))
	}
	for _, k := range a.RemoveAttrs {
		steps = append(steps, reweave.RemoveAttr(k))
	}
	if len(a.AddClass) > 0 {
		steps = append(steps, reweave.AddClass(a.AddClass...))
	}
	if len(a.RemoveClass) > 0 {
		steps = append(steps, reweave.RemoveClass(a.RemoveClass...))
	}
	if a.Wrap != "" {
		steps = append(steps, reweave.Wrap(a.Wrap, a.WrapAttrs))
	}
	if a.Unwrap {
		steps = append(steps, reweave.Unwrap())
	}
	if a.Remove {
		steps = append(steps, reweave.Remove())
	}
	if len(steps) == 0 {
		return nil, ErrEmptyAction
	}
	if len(steps) == 1 {
		return steps[0], nil
	}
	return reweave.Do(steps...), nil
}
