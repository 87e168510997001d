package convert

import (
	"cmp"
	"fmt"

	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/result"
)

// Serializer replaces the default pack/unpack for a type wholesale. The enum
// extension is the canonical implementation.
type Serializer interface {
	Serialize(ctx engine.Context, in any) (engine.Value, result.Code)
	Deserialize(ctx engine.Context, in engine.Value, out any) result.Code
}

// Validator guards the default conversion for a type's primitive category,
// e.g. a numeric range check.
type Validator interface {
	Validate(in any) result.Code
}

// PackWith packs through a concept: a Serializer takes over entirely, a
// Validator runs before the default pack. Passing anything else is a
// programming mistake and panics at the call site.
func PackWith(ctx engine.Context, concept any, in any) (engine.Value, result.Code) {
	switch c := concept.(type) {
	case Serializer:
		return c.Serialize(ctx, in)
	case Validator:
		if code := c.Validate(in); code != result.Ok {
			return nil, code
		}
		return Pack(ctx, in)
	default:
		panic(fmt.Sprintf("convert: %T is neither Serializer nor Validator", concept))
	}
}

// UnpackWith unpacks through a concept: a Serializer takes over entirely, a
// Validator runs after the default unpack.
func UnpackWith(ctx engine.Context, concept any, in engine.Value, out any) result.Code {
	switch c := concept.(type) {
	case Serializer:
		return c.Deserialize(ctx, in, out)
	case Validator:
		if code := Unpack(ctx, in, out); code != result.Ok {
			return code
		}
		return c.Validate(deref(out))
	default:
		panic(fmt.Sprintf("convert: %T is neither Serializer nor Validator", concept))
	}
}

// Range is a Validator that accepts values inside [Min, Max].
type Range[T cmp.Ordered] struct {
	Min T
	Max T
}

// NewRange builds an inclusive range validator.
func NewRange[T cmp.Ordered](minValue, maxValue T) Range[T] {
	return Range[T]{Min: minValue, Max: maxValue}
}

func (r Range[T]) Validate(in any) result.Code {
	v, ok := in.(T)
	if !ok {
		return result.InvalidValue
	}
	if v < r.Min || v > r.Max {
		return result.InvalidValueRange
	}
	return result.Ok
}

func deref(out any) any {
	switch p := out.(type) {
	case *bool:
		return *p
	case *int8:
		return *p
	case *int16:
		return *p
	case *int32:
		return *p
	case *int64:
		return *p
	case *int:
		return *p
	case *uint8:
		return *p
	case *uint16:
		return *p
	case *uint32:
		return *p
	case *uint64:
		return *p
	case *uint:
		return *p
	case *float32:
		return *p
	case *float64:
		return *p
	case *string:
		return *p
	default:
		return out
	}
}
