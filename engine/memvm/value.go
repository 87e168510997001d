package memvm

import (
	"math"
	"unicode/utf16"

	"github.com/njs-api/njs-api/types"
)

// base provides the zero accessors so each concrete value only overrides
// what it carries.
type base struct{}

func (base) IsValid() bool    { return true }
func (base) Bool() bool       { return false }
func (base) Int32() int32     { return 0 }
func (base) Uint32() uint32   { return 0 }
func (base) Number() float64  { return 0 }
func (base) String() string   { return "" }
func (base) StringLen() int   { return 0 }

type invalidVal struct{ base }

func (invalidVal) IsValid() bool         { return false }
func (invalidVal) Type() types.ValueType { return types.ValueNone }

type undefinedVal struct{ base }

func (undefinedVal) Type() types.ValueType { return types.ValueNone }

type nullVal struct{ base }

func (nullVal) Type() types.ValueType { return types.ValueNone }

type boolVal struct {
	base
	v bool
}

func (boolVal) Type() types.ValueType { return types.ValueBool }
func (b boolVal) Bool() bool          { return b.v }

// numberVal stores every host number as a double and derives the engine's
// internal representation the way V8-style engines do: integral values in
// int32 range read as Int32, larger non-negative integral values in uint32
// range read as Uint32, everything else as Double.
type numberVal struct {
	base
	v float64
}

func (n numberVal) Type() types.ValueType {
	if n.v == math.Trunc(n.v) && !math.IsInf(n.v, 0) {
		if n.v >= math.MinInt32 && n.v <= math.MaxInt32 {
			return types.ValueInt32
		}
		if n.v >= 0 && n.v <= math.MaxUint32 {
			return types.ValueUint32
		}
	}
	return types.ValueDouble
}

func (n numberVal) Int32() int32     { return int32(n.v) }
func (n numberVal) Uint32() uint32   { return uint32(n.v) }
func (n numberVal) Number() float64  { return n.v }

type stringVal struct {
	base
	v string
}

func (stringVal) Type() types.ValueType { return types.ValueString }
func (s stringVal) String() string      { return s.v }

func (s stringVal) StringLen() int { return utf16Len(s.v) }

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
