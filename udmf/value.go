// Package udmf holds the attribute records of UDMF maps after parsing. A Table has one
// global record and any number of named groups ("thing", "linedef", ...), each an ordered
// list of records. A record maps attribute names to values of one of four kinds, and
// reading a value as another kind applies a fixed coercion.
//
// Group names are case-insensitive. Attribute names are case-sensitive.
package udmf

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the stored type of a Value.
type Kind int

const (
	Bool Kind = iota
	Int
	Float
	String
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single attribute value.
type Value struct {
	kind Kind
	b    bool
	i    int
	f    float64
	s    string
}

func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

func IntValue(i int) Value { return Value{kind: Int, i: i} }

func FloatValue(f float64) Value { return Value{kind: Float, f: f} }

func StringValue(s string) Value { return Value{kind: String, s: s} }

func (v Value) Kind() Kind { return v.kind }

// AsBool is true for a true bool, a nonzero number or a nonempty string. Strings are not
// parsed, so "false" is true.
func (v Value) AsBool() bool {
	switch v.kind {
	case Int:
		return v.i != 0
	case Float:
		return v.f != 0
	case String:
		return v.s != ""
	}
	return v.b
}

// AsInt converts v to an integer. Floats are truncated toward zero. Strings are parsed as
// UDMF integers (decimal, 0-prefixed octal or 0x-prefixed hex) and fail if they are not one.
func (v Value) AsInt() (int, error) {
	switch v.kind {
	case Bool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case Float:
		return int(math.Trunc(v.f)), nil
	case String:
		return parseInt(v.s)
	}
	return v.i, nil
}

// parseInt reads a UDMF integer: an optional sign, then decimal digits, 0 and octal digits,
// or 0x and hex digits. Digit separators and other prefixes are rejected.
func parseInt(s string) (int, error) {
	text := strings.TrimSpace(s)
	sign, digits := "", text
	if digits != "" && (digits[0] == '-' || digits[0] == '+') {
		sign, digits = digits[:1], digits[1:]
	}
	base := 10
	switch {
	case len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X"):
		base, digits = 16, digits[2:]
	case len(digits) > 1 && digits[0] == '0':
		base, digits = 8, digits[1:]
	}
	if digits == "" || digits[0] == '-' || digits[0] == '+' || strings.ContainsRune(digits, '_') {
		return 0, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrSyntax}
	}
	n, err := strconv.ParseInt(sign+digits, base, 0)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// AsFloat converts v to a float. Strings are parsed and fail if they are not a number.
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case Bool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case Int:
		return float64(v.i), nil
	case String:
		return strconv.ParseFloat(strings.TrimSpace(v.s), 64)
	}
	return v.f, nil
}

// AsString renders v as text. Integral floats keep a trailing ".0" so that they read back
// as floats.
func (v Value) AsString() string {
	switch v.kind {
	case Bool:
		return strconv.FormatBool(v.b)
	case Int:
		return strconv.Itoa(v.i)
	case Float:
		s := strconv.FormatFloat(v.f, 'f', -1, 64)
		if !strings.ContainsAny(s, ".NI") {
			s += ".0"
		}
		return s
	}
	return v.s
}

func (v Value) String() string {
	return v.AsString()
}
