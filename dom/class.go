package dom

import "strings"

// Classes returns the class tokens of an element, in attribute order.
func (n *Node) Classes() []string {
	v, ok := n.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

func (n *Node) HasClass(name string) bool {
	for _, c := range n.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass adds name to the class attribute without disturbing the
// other tokens. Adding a token already present is a no-op.
func (n *Node) AddClass(name string) {
	if n.HasClass(name) {
		return
	}
	v, ok := n.Attr("class")
	if !ok || v == "" {
		n.SetAttr("class", name)
		return
	}
	n.SetAttr("class", v+" "+name)
}

// RemoveClass removes name from the class attribute, leaving the other
// tokens alone. When the last token goes, the attribute goes with it.
func (n *Node) RemoveClass(name string) {
	classes := n.Classes()
	kept := classes[:0]
	for _, c := range classes {
		if c != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		n.DelAttr("class")
		return
	}
	n.SetAttr("class", strings.Join(kept, " "))
}
