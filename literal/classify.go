// Package literal infers the most specific primitive type for an
// already-substituted configuration value: booleans, then the numeric
// literal grammar with width and multiplier suffixes, then plain strings.
package literal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/confit-format/confit/ir"
	"github.com/shopspring/decimal"
)

// Classify converts a substituted string into its typed value. Strings
// matching the numeric grammar that fit no candidate representation come
// back as the unchanged string plus an error wrapping ErrNumericLiteral;
// out-of-range literals never silently truncate.
func Classify(s string, loc Locale) (ir.Value, error) {
	t := strings.TrimSpace(s)
	if b, ok := scanBool(t); ok {
		return ir.Bool(b), nil
	}
	n, ok := scanNumeric(t, loc)
	if !ok {
		return ir.String(s), nil
	}
	v, err := n.value()
	if err != nil {
		return ir.String(s), fmt.Errorf("%w: %q: %v", ErrNumericLiteral, t, err)
	}
	return v, nil
}

// unsuffixed inference covers the signed 32-bit representation; no width
// suffix selects it explicitly.
var intWidths = map[string]int{"y": 8, "s": 16, "l": 64}

var uintWidths = map[string]int{"uy": 8, "us": 16, "u": 32, "ul": 64}

// value applies the decided suffix precedence: the scanned magnitude is
// scaled by the multiplier, the sign applies to the scaled magnitude, and
// the width conversion runs last with a range check.
func (n numeric) value() (ir.Value, error) {
	switch n.width {
	case "y", "s", "l":
		return n.intValue(intWidths[n.width], false)
	case "uy", "us", "u", "ul":
		return n.intValue(uintWidths[n.width], true)
	case "n":
		return n.bigValue()
	case "d":
		d, err := n.exact()
		if err != nil {
			return ir.Value{}, err
		}
		return ir.Decimal(d), nil
	}
	return n.inferred()
}

// exact computes the scaled, signed value without loss.
func (n numeric) exact() (decimal.Decimal, error) {
	var d decimal.Decimal
	if n.hex {
		b, ok := new(big.Int).SetString(n.hexDigits, 16)
		if !ok {
			return d, fmt.Errorf("bad hex digits %q", n.hexDigits)
		}
		d = decimal.NewFromBigInt(b, 0)
	} else {
		var err error
		d, err = decimal.NewFromString(n.canon)
		if err != nil {
			return d, fmt.Errorf("magnitude out of range")
		}
	}
	if n.mult > 0 {
		d = d.Mul(decimal.NewFromInt(1 << (10 * n.mult)))
	}
	if n.neg {
		d = d.Neg()
	}
	return d, nil
}

func (n numeric) intValue(width int, unsigned bool) (ir.Value, error) {
	d, err := n.exact()
	if err != nil {
		return ir.Value{}, err
	}
	if !d.IsInteger() {
		return ir.Value{}, fmt.Errorf("fractional value for integer width")
	}
	b := d.BigInt()
	if unsigned {
		u, ok := fitsUint(b, width)
		if !ok {
			return ir.Value{}, fmt.Errorf("out of range for uint%d", width)
		}
		return ir.Uint(u, width), nil
	}
	i, ok := fitsInt(b, width)
	if !ok {
		return ir.Value{}, fmt.Errorf("out of range for int%d", width)
	}
	return ir.Int(i, width), nil
}

func (n numeric) bigValue() (ir.Value, error) {
	d, err := n.exact()
	if err != nil {
		return ir.Value{}, err
	}
	if !d.IsInteger() {
		return ir.Value{}, fmt.Errorf("fractional value for arbitrary-precision integer")
	}
	return ir.Big(d.BigInt()), nil
}

// inferred handles the no-suffix case: 32-bit signed integer, then 64-bit
// signed integer, then fixed-point decimal, then 64-bit float; the first
// representation that holds the value without overflow wins. Exponent
// forms go straight to float, mirroring the per-representation string
// parses of the original chain.
func (n numeric) inferred() (ir.Value, error) {
	if n.hasExp {
		f, err := strconv.ParseFloat(n.canon, 64)
		if err != nil || math.IsInf(f, 0) {
			return ir.Value{}, fmt.Errorf("out of range for float64")
		}
		if n.mult > 0 {
			f *= float64(int64(1) << (10 * n.mult))
		}
		if n.neg {
			f = -f
		}
		if math.IsInf(f, 0) {
			return ir.Value{}, fmt.Errorf("out of range for float64")
		}
		return ir.Float(f), nil
	}
	d, err := n.exact()
	if err != nil {
		return ir.Value{}, err
	}
	// A decimal point rules the integer candidates out even when the
	// fraction is zero ("2.0" is decimal, not int); a multiplier scales
	// first, so "1.5kb" still lands on the integral 1536.
	if d.IsInteger() && (!n.hasFrac || n.mult > 0) {
		b := d.BigInt()
		if i, ok := fitsInt(b, 32); ok {
			return ir.Int(i, 32), nil
		}
		if i, ok := fitsInt(b, 64); ok {
			return ir.Int(i, 64), nil
		}
	}
	return ir.Decimal(d), nil
}

func fitsInt(b *big.Int, width int) (int64, bool) {
	if !b.IsInt64() {
		return 0, false
	}
	i := b.Int64()
	switch width {
	case 8:
		if i < math.MinInt8 || i > math.MaxInt8 {
			return 0, false
		}
	case 16:
		if i < math.MinInt16 || i > math.MaxInt16 {
			return 0, false
		}
	case 32:
		if i < math.MinInt32 || i > math.MaxInt32 {
			return 0, false
		}
	}
	return i, true
}

func fitsUint(b *big.Int, width int) (uint64, bool) {
	if !b.IsUint64() {
		return 0, false
	}
	u := b.Uint64()
	switch width {
	case 8:
		if u > math.MaxUint8 {
			return 0, false
		}
	case 16:
		if u > math.MaxUint16 {
			return 0, false
		}
	case 32:
		if u > math.MaxUint32 {
			return 0, false
		}
	}
	return u, true
}
