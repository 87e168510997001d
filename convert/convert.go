package convert

import (
	"math"

	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/result"
	"github.com/njs-api/njs-api/safenum"
	"github.com/njs-api/njs-api/types"
)

// Pack converts a native value into a host value.
//
// 64-bit integers prefer the host's 32-bit representations when the value
// fits; otherwise they go through the double representation, failing with a
// distinct unsafe-conversion code when not exactly representable.
func Pack(ctx engine.Context, in any) (engine.Value, result.Code) {
	switch v := in.(type) {
	case bool:
		return made(ctx.NewBool(v))
	case int8:
		return made(ctx.NewInt32(int32(v)))
	case int16:
		return made(ctx.NewInt32(int32(v)))
	case int32:
		return made(ctx.NewInt32(v))
	case uint8:
		return made(ctx.NewUint32(uint32(v)))
	case uint16:
		return made(ctx.NewUint32(uint32(v)))
	case uint32:
		return made(ctx.NewUint32(v))
	case int:
		return packInt64(ctx, int64(v))
	case int64:
		return packInt64(ctx, v)
	case uint:
		return packUint64(ctx, uint64(v))
	case uint64:
		return packUint64(ctx, v)
	case float32:
		return made(ctx.NewDouble(float64(v)))
	case float64:
		return made(ctx.NewDouble(v))
	case types.Latin1Ref:
		return PackLatin1(ctx, v)
	case types.UTF8Ref:
		return PackUTF8(ctx, v)
	case types.UTF16Ref:
		return PackUTF16(ctx, v)
	default:
		return nil, result.InvalidValue
	}
}

func packInt64(ctx engine.Context, v int64) (engine.Value, result.Code) {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return made(ctx.NewInt32(int32(v)))
	}
	if !safenum.IsSafeInt(v) {
		return nil, result.UnsafeInt64Conversion
	}
	return made(ctx.NewDouble(float64(v)))
}

func packUint64(ctx engine.Context, v uint64) (engine.Value, result.Code) {
	if v <= math.MaxUint32 {
		return made(ctx.NewUint32(uint32(v)))
	}
	if !safenum.IsSafeInt(v) {
		return nil, result.UnsafeUint64Conversion
	}
	return made(ctx.NewDouble(float64(v)))
}

func made(v engine.Value) (engine.Value, result.Code) {
	if code := result.OfHandle(v); code != result.Ok {
		return nil, code
	}
	return v, result.Ok
}

// Unpack converts a host value into the native destination out, which must
// be a pointer to a supported native type.
func Unpack(ctx engine.Context, in engine.Value, out any) result.Code {
	if code := result.OfHandle(in); code != result.Ok {
		return code
	}

	switch dst := out.(type) {
	case *bool:
		if in.Type() != types.ValueBool {
			return result.InvalidValue
		}
		*dst = in.Bool()
		return result.Ok

	case *int8:
		return unpackSafeInt(in, dst)
	case *int16:
		return unpackSafeInt(in, dst)
	case *int32:
		return unpackSafeInt(in, dst)

	case *uint8:
		return unpackSafeUint(in, dst)
	case *uint16:
		return unpackSafeUint(in, dst)
	case *uint32:
		return unpackSafeUint(in, dst)

	case *int64:
		return unpackUnsafeInt(in, dst)
	case *int:
		return unpackUnsafeInt(in, dst)
	case *uint64:
		return unpackUnsafeUint(in, dst)
	case *uint:
		return unpackUnsafeUint(in, dst)

	case *float32:
		if !in.Type().IsNumber() {
			return result.InvalidValue
		}
		*dst = float32(in.Number())
		return result.Ok
	case *float64:
		if !in.Type().IsNumber() {
			return result.InvalidValue
		}
		*dst = in.Number()
		return result.Ok

	case *string:
		if in.Type() != types.ValueString {
			return result.InvalidValue
		}
		*dst = in.String()
		return result.Ok

	default:
		return result.InvalidValue
	}
}

// asInt32 succeeds when the host number is exactly a 32-bit signed integer,
// regardless of its internal representation.
func asInt32(in engine.Value) (int32, result.Code) {
	if !in.Type().IsNumber() {
		return 0, result.InvalidValue
	}
	n := in.Number()
	if n < math.MinInt32 || n > math.MaxInt32 || n != math.Trunc(n) {
		return 0, result.InvalidValue
	}
	return int32(n), result.Ok
}

// asUint32 succeeds when the host number is exactly a 32-bit unsigned
// integer.
func asUint32(in engine.Value) (uint32, result.Code) {
	if !in.Type().IsNumber() {
		return 0, result.InvalidValue
	}
	n := in.Number()
	if n < 0 || n > math.MaxUint32 || n != math.Trunc(n) {
		return 0, result.InvalidValue
	}
	return uint32(n), result.Ok
}

func unpackSafeInt[T int8 | int16 | int32](in engine.Value, dst *T) result.Code {
	v, code := asInt32(in)
	if code != result.Ok {
		return code
	}
	narrowed, code := safenum.Cast[T](v)
	if code != result.Ok {
		return code
	}
	*dst = narrowed
	return result.Ok
}

func unpackSafeUint[T uint8 | uint16 | uint32](in engine.Value, dst *T) result.Code {
	v, code := asUint32(in)
	if code != result.Ok {
		return code
	}
	narrowed, code := safenum.Cast[T](v)
	if code != result.Ok {
		return code
	}
	*dst = narrowed
	return result.Ok
}

func unpackUnsafeInt[T int64 | int](in engine.Value, dst *T) result.Code {
	if !in.Type().IsNumber() {
		return result.InvalidValue
	}
	v, code := safenum.DoubleToInt64(in.Number())
	if code != result.Ok {
		return code
	}
	narrowed, code := safenum.Cast[T](v)
	if code != result.Ok {
		return code
	}
	*dst = narrowed
	return result.Ok
}

func unpackUnsafeUint[T uint64 | uint](in engine.Value, dst *T) result.Code {
	if !in.Type().IsNumber() {
		return result.InvalidValue
	}
	v, code := safenum.DoubleToUint64(in.Number())
	if code != result.Ok {
		return code
	}
	narrowed, code := safenum.Cast[T](v)
	if code != result.Ok {
		return code
	}
	*dst = narrowed
	return result.Ok
}
