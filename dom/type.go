package dom

import "fmt"

type Type int

const (
	TextType Type = iota
	ElementType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TextType:    "Text",
		ElementType: "Element",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Text":    TextType,
		"Element": ElementType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		TextType,
		ElementType,
	}
}

func (t Type) IsLeaf() bool {
	return t == TextType
}
