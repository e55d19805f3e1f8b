package gocalc

import (
	"math"
	"strconv"
	"strings"
)

type ValueType int

const (
	ValueInt ValueType = iota
	ValueDouble
)

// Value is the result of an evaluation: an integer, or a double once a
// division is involved.
type Value struct {
	t ValueType
	i int64
	f float64
}

func Int(i int64) Value {
	return Value{t: ValueInt, i: i}
}

func Double(f float64) Value {
	return Value{t: ValueDouble, f: f}
}

func (v Value) Type() ValueType {
	return v.t
}

func (v Value) IsInt() bool {
	return v.t == ValueInt
}

// Int64 returns the integer value; ok is false for doubles.
func (v Value) Int64() (i int64, ok bool) {
	return v.i, v.t == ValueInt
}

func (v Value) Float64() float64 {
	if v.t == ValueInt {
		return float64(v.i)
	}
	return v.f
}

func (v Value) isZero() bool {
	if v.t == ValueInt {
		return v.i == 0
	}
	return v.f == 0
}

// String formats integers plainly and doubles in their shortest form, always
// keeping a fractional part or exponent so 4/2 prints as 2.0. Exponent form
// is used below 1e-4 and from 1e16 on.
func (v Value) String() string {
	if v.t == ValueInt {
		return strconv.FormatInt(v.i, 10)
	}
	switch {
	case math.IsInf(v.f, 1):
		return "inf"
	case math.IsInf(v.f, -1):
		return "-inf"
	case math.IsNaN(v.f):
		return "nan"
	}
	abs := math.Abs(v.f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v.f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v.f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func addInt(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func subInt(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}
