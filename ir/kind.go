package ir

import "fmt"

// Kind identifies the primitive type of a resolved value.
type Kind int

const (
	StringKind Kind = iota
	BoolKind
	IntKind
	UintKind
	BigKind
	DecimalKind
	FloatKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		StringKind:  "String",
		BoolKind:    "Bool",
		IntKind:     "Int",
		UintKind:    "Uint",
		BigKind:     "Big",
		DecimalKind: "Decimal",
		FloatKind:   "Float",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"String":  StringKind,
		"Bool":    BoolKind,
		"Int":     IntKind,
		"Uint":    UintKind,
		"Big":     BigKind,
		"Decimal": DecimalKind,
		"Float":   FloatKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		StringKind,
		BoolKind,
		IntKind,
		UintKind,
		BigKind,
		DecimalKind,
		FloatKind,
	}
}

// IsNumeric reports whether values of this kind came from the numeric
// literal grammar.
func (k Kind) IsNumeric() bool {
	switch k {
	case IntKind, UintKind, BigKind, DecimalKind, FloatKind:
		return true
	default:
		return false
	}
}
