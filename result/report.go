package result

import (
	"fmt"
	"unicode/utf8"

	"github.com/njs-api/njs-api/types"
)

// Thrower is the single hook error materialization needs from the host
// context.
type Thrower interface {
	ThrowException(kind ExceptionKind, message string)
}

// Format maps a failing (Code, Payload) pair to the exception kind and
// message that should reach the script. The message template is selected by
// the band the code falls in, never by exhaustive per-code dispatch.
func Format(code Code, p *Payload) (ExceptionKind, string) {
	switch {
	case code.IsThrow():
		return ExceptionKind(code), p.Message

	case code.IsValueError():
		var base string
		switch {
		case p.ArgIndex == NoValue:
			base = "Invalid value"
		case p.ArgIndex == NoIndex:
			base = "Invalid argument"
		default:
			base = fmt.Sprintf("Invalid argument [%d]", p.ArgIndex)
		}

		switch code {
		case InvalidValueTypeID:
			return ExceptionTypeError, fmt.Sprintf("%s: Expected Type '%s'", base, types.TypeName(p.TypeID))
		case InvalidValueTypeName:
			return ExceptionTypeError, fmt.Sprintf("%s: Expected Type '%s'", base, p.TypeName)
		case InvalidValueCustom:
			return ExceptionTypeError, fmt.Sprintf("%s: %s", base, p.Message)
		default:
			return ExceptionTypeError, base
		}

	case code == InvalidArgumentsLength:
		if p.MinArgs < 0 || p.MaxArgs < 0 {
			return ExceptionTypeError, "Invalid number of arguments: (unspecified)"
		}
		if p.MinArgs == p.MaxArgs {
			return ExceptionTypeError, fmt.Sprintf("Invalid number of arguments: Required exactly %d", p.MinArgs)
		}
		return ExceptionTypeError, fmt.Sprintf("Invalid number of arguments: Required between %d..%d", p.MinArgs, p.MaxArgs)

	case code == InvalidConstructCall || code == AbstractConstructCall:
		className := p.ClassName
		if className == "" {
			className = "(anonymous)"
		}
		reason := "Use new operator"
		if code == AbstractConstructCall {
			reason = "Class is abstract"
		}
		return ExceptionTypeError, fmt.Sprintf("Cannot instantiate '%s': %s", className, reason)

	default:
		return ExceptionError, "Unknown error"
	}
}

// Report materializes a failing code as exactly one host exception. Bypass
// must be filtered by the caller; it never reaches this routine.
func Report(t Thrower, code Code, p *Payload) {
	if code == Ok || code == Bypass {
		return
	}
	kind, msg := Format(code, p)
	if len(msg) > MaxMessageSize {
		msg = clampMessage(msg)
	}
	t.ThrowException(kind, msg)
}

func clampMessage(msg string) string {
	cut := msg[:MaxMessageSize]
	// Do not split a multi-byte rune at the boundary.
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
