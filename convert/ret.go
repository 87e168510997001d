package convert

import (
	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/result"
)

// NullType and UndefinedType are sentinel markers so a native return site can
// say "return null" or "return undefined" through the same type-directed
// path used for every other value.
type NullType struct{}

type UndefinedType struct{}

var (
	Null      = NullType{}
	Undefined = UndefinedType{}
)

// PackReturn adapts a native return value for the host-visible return slot.
// An already-built host value passes through; the two sentinels map to the
// engine's null and undefined; everything else goes through Pack.
func PackReturn(ctx engine.Context, in any) (engine.Value, result.Code) {
	switch v := in.(type) {
	case engine.Value:
		return made(v)
	case NullType:
		return made(ctx.Null())
	case UndefinedType:
		return made(ctx.Undefined())
	default:
		return Pack(ctx, in)
	}
}
