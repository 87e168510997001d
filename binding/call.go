package binding

import (
	"github.com/njs-api/njs-api/convert"
	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/result"
	"github.com/njs-api/njs-api/wrap"
)

// Call is the context handed to every bound handler. It owns the result
// payload, so diagnostic construction never allocates on the failure path.
type Call struct {
	result.Mixin

	Ctx  engine.Context
	This engine.Value

	info *engine.CallInfo
}

// IsConstruct reports whether the invocation used construct semantics.
func (c *Call) IsConstruct() bool { return c.info.IsConstruct }

// ArgCount returns the number of script-supplied arguments.
func (c *Call) ArgCount() int { return len(c.info.Args) }

// Arg returns the i-th argument, or an invalid handle when out of range.
func (c *Call) Arg(i int) engine.Value {
	if i < 0 || i >= len(c.info.Args) {
		return nil
	}
	return c.info.Args[i]
}

// CheckArgCount fails with an arity diagnostic unless exactly n arguments
// were passed.
func (c *Call) CheckArgCount(n int) result.Code {
	if c.ArgCount() != n {
		return c.InvalidArgumentsLengthExact(n)
	}
	return result.Ok
}

// CheckArgRange fails unless the argument count lies in [minArgs, maxArgs].
func (c *Call) CheckArgRange(minArgs, maxArgs int) result.Code {
	if n := c.ArgCount(); n < minArgs || n > maxArgs {
		return c.InvalidArgumentsLengthRange(minArgs, maxArgs)
	}
	return result.Ok
}

// UnpackArg converts argument i into the native destination, recording the
// argument index in the payload on conversion failure.
func (c *Call) UnpackArg(i int, out any) result.Code {
	code := convert.Unpack(c.Ctx, c.Arg(i), out)
	return c.noteArg(i, code)
}

// UnpackArgWith is UnpackArg through a serializer or validator concept.
func (c *Call) UnpackArgWith(i int, concept any, out any) result.Code {
	code := convert.UnpackWith(c.Ctx, concept, c.Arg(i), out)
	return c.noteArg(i, code)
}

func (c *Call) noteArg(i int, code result.Code) result.Code {
	if code == result.InvalidHandle {
		// Out-of-range access reads as a plain invalid argument.
		return c.InvalidArgumentAt(i)
	}
	if code.IsValueError() && !c.Payload.HasArgument() {
		c.Payload.ArgIndex = i
	}
	return code
}

// Return adapts a native value into the host-visible return slot. Host
// values pass through; convert.Null and convert.Undefined return the
// engine's singletons.
func (c *Call) Return(v any) result.Code {
	hv, code := convert.PackReturn(c.Ctx, v)
	if code != result.Ok {
		return code
	}
	c.info.SetReturnValue(hv)
	return result.Ok
}

// ReturnWith packs the return value through a serializer or validator.
func (c *Call) ReturnWith(concept any, v any) result.Code {
	hv, code := convert.PackWith(c.Ctx, concept, v)
	if code != result.Ok {
		return code
	}
	c.info.SetReturnValue(hv)
	return result.Ok
}

// SetValue is available to setter handlers: the single assigned value.
func (c *Call) SetValue() engine.Value { return c.Arg(0) }

// Unwrap recovers the native object paired with the receiver, validating
// the type tag.
func (c *Call) Unwrap(tag uint32) (any, result.Code) {
	return wrap.Unwrap(c.This, tag)
}

// UnwrapUnsafe recovers the receiver's native object without validation.
// Only safe inside methods whose call signature guarantees the receiver
// type.
func (c *Call) UnwrapUnsafe() any {
	return wrap.UnwrapUnsafe(c.This)
}

// Wrap pairs a native object with the receiver, used inside constructors.
func (c *Call) Wrap(native any, tag uint32, fin wrap.Finalizer) (*wrap.Data, result.Code) {
	return wrap.Attach(c.Ctx, c.This, native, tag, fin)
}
