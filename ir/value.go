package ir

import (
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Value is the typed form of a raw configuration value. Exactly one of the
// payload fields is meaningful, selected by Kind. Width applies to IntKind
// and UintKind and is one of 8, 16, 32, 64.
type Value struct {
	Kind  Kind
	Width int

	Str   string
	Bool  bool
	Int   int64
	Uint  uint64
	Big   *big.Int
	Dec   decimal.Decimal
	Float float64
}

func String(s string) Value {
	return Value{Kind: StringKind, Str: s}
}

func Bool(b bool) Value {
	return Value{Kind: BoolKind, Bool: b}
}

func Int(v int64, width int) Value {
	return Value{Kind: IntKind, Width: width, Int: v}
}

func Uint(v uint64, width int) Value {
	return Value{Kind: UintKind, Width: width, Uint: v}
}

func Big(v *big.Int) Value {
	return Value{Kind: BigKind, Big: v}
}

func Decimal(v decimal.Decimal) Value {
	return Value{Kind: DecimalKind, Dec: v}
}

func Float(v float64) Value {
	return Value{Kind: FloatKind, Float: v}
}

// Render gives the canonical text form of the value as emitted by the
// expanded serialization mode.
func (v Value) Render() string {
	switch v.Kind {
	case StringKind:
		return v.Str
	case BoolKind:
		return strconv.FormatBool(v.Bool)
	case IntKind:
		return strconv.FormatInt(v.Int, 10)
	case UintKind:
		return strconv.FormatUint(v.Uint, 10)
	case BigKind:
		if v.Big == nil {
			return "0"
		}
		return v.Big.String()
	case DecimalKind:
		return v.Dec.String()
	case FloatKind:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	return ""
}

// Equal reports semantic equality. go-cmp picks this up in tests; it is
// also what resolver idempotence is stated in terms of.
func (v Value) Equal(w Value) bool {
	if v.Kind != w.Kind || v.Width != w.Width {
		return false
	}
	switch v.Kind {
	case StringKind:
		return v.Str == w.Str
	case BoolKind:
		return v.Bool == w.Bool
	case IntKind:
		return v.Int == w.Int
	case UintKind:
		return v.Uint == w.Uint
	case BigKind:
		if v.Big == nil || w.Big == nil {
			return v.Big == w.Big
		}
		return v.Big.Cmp(w.Big) == 0
	case DecimalKind:
		return v.Dec.Equal(w.Dec)
	case FloatKind:
		return v.Float == w.Float
	}
	return false
}
