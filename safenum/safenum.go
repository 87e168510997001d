package safenum

import "github.com/njs-api/njs-api/result"

// MaxSafeInteger is the largest integer exactly representable as a double,
// 2^53-1. Equivalent to JavaScript's Number.MAX_SAFE_INTEGER.
const MaxSafeInteger = 1<<53 - 1

// MinSafeInteger is -(2^53-1).
const MinSafeInteger = -MaxSafeInteger

// Integer matches every native integer type that participates in conversion.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Cast converts between integer types, failing with InvalidValue when the
// source value is not representable in the destination. Both sign and width
// mismatches are checked; an in-range value converts exactly.
func Cast[Out, In Integer](in In) (Out, result.Code) {
	out := Out(in)
	if In(out) != in || (out < 0) != (in < 0) {
		return 0, result.InvalidValue
	}
	return out, result.Ok
}

// IsSafeInt reports whether x is exactly representable as a double, i.e.
// |x| <= 2^53-1. Types of 32 bits or less are always safe.
func IsSafeInt[T Integer](x T) bool {
	if x < 0 {
		return int64(x) >= MinSafeInteger
	}
	return uint64(x) <= MaxSafeInteger
}

// DoubleToInt64 converts a host double to int64 only when the double is a
// safe integer and round-trips exactly.
func DoubleToInt64(in float64) (int64, result.Code) {
	if in >= MinSafeInteger && in <= MaxSafeInteger {
		x := int64(in)
		if float64(x) == in {
			return x, result.Ok
		}
	}
	return 0, result.InvalidValue
}

// DoubleToUint64 is DoubleToInt64 for unsigned destinations; negative inputs
// fail.
func DoubleToUint64(in float64) (uint64, result.Code) {
	if in >= 0 && in <= MaxSafeInteger {
		x := int64(in)
		if float64(x) == in {
			return uint64(x), result.Ok
		}
	}
	return 0, result.InvalidValue
}
