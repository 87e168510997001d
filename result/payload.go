package result

import "github.com/njs-api/njs-api/types"

// Buffer and diagnostic limits.
const (
	// MaxMessageSize bounds formatted error messages.
	MaxMessageSize = 256
)

// Argument index sentinels used in Payload.ArgIndex.
const (
	// NoValue means the payload describes a plain invalid value.
	NoValue = -1
	// NoIndex means an argument was invalid but its index is unknown.
	NoIndex = -2
)

// Payload carries structured diagnostic context for a failing Code. It is a
// fixed-size record with no owned heap data; which fields are meaningful
// depends on the code that produced it:
//
//	invalid-value band       ArgIndex + one of TypeID | TypeName | Message
//	arguments-length         MinArgs, MaxArgs
//	construct-call codes     ClassName
//	throw-mapped codes       Message
//
// Never read a field the producing code does not guarantee.
type Payload struct {
	ArgIndex  int
	TypeID    types.ValueType
	TypeName  string
	Message   string
	MinArgs   int
	MaxArgs   int
	ClassName string
}

// Reset invalidates the payload. Only the fields used to detect
// initialization are touched.
func (p *Payload) Reset() {
	p.ArgIndex = NoValue
	p.MinArgs = NoValue
	p.MaxArgs = NoValue
	p.TypeName = ""
	p.Message = ""
	p.ClassName = ""
}

// HasArgument reports whether an argument index was recorded.
func (p *Payload) HasArgument() bool { return p.ArgIndex >= 0 }

// Mixin embeds a payload and provides the producer-side helpers that pair a
// returned Code with its diagnostic context. Call contexts embed it so error
// construction never allocates.
type Mixin struct {
	Payload Payload
}

func (m *Mixin) InvalidValue() Code {
	return InvalidValue
}

func (m *Mixin) InvalidValueTypeID(id types.ValueType) Code {
	m.Payload.TypeID = id
	return InvalidValueTypeID
}

func (m *Mixin) InvalidValueTypeName(name string) Code {
	m.Payload.TypeName = name
	return InvalidValueTypeName
}

func (m *Mixin) InvalidValueCustom(message string) Code {
	m.Payload.Message = message
	return InvalidValueCustom
}

func (m *Mixin) InvalidArgument() Code {
	m.Payload.ArgIndex = NoIndex
	return InvalidValue
}

func (m *Mixin) InvalidArgumentAt(index int) Code {
	m.Payload.ArgIndex = index
	return InvalidValue
}

func (m *Mixin) InvalidArgumentTypeID(index int, id types.ValueType) Code {
	m.Payload.ArgIndex = index
	m.Payload.TypeID = id
	return InvalidValueTypeID
}

func (m *Mixin) InvalidArgumentTypeName(index int, name string) Code {
	m.Payload.ArgIndex = index
	m.Payload.TypeName = name
	return InvalidValueTypeName
}

func (m *Mixin) InvalidArgumentCustom(index int, message string) Code {
	m.Payload.ArgIndex = index
	m.Payload.Message = message
	return InvalidValueCustom
}

func (m *Mixin) InvalidArgumentsLength() Code {
	return InvalidArgumentsLength
}

func (m *Mixin) InvalidArgumentsLengthExact(n int) Code {
	m.Payload.MinArgs = n
	m.Payload.MaxArgs = n
	return InvalidArgumentsLength
}

func (m *Mixin) InvalidArgumentsLengthRange(minArgs, maxArgs int) Code {
	m.Payload.MinArgs = minArgs
	m.Payload.MaxArgs = maxArgs
	return InvalidArgumentsLength
}

func (m *Mixin) InvalidConstructCall(className string) Code {
	m.Payload.ClassName = className
	return InvalidConstructCall
}

func (m *Mixin) AbstractConstructCall(className string) Code {
	m.Payload.ClassName = className
	return AbstractConstructCall
}

// ThrowNew records a message and returns the throw-mapped code for the given
// exception kind.
func (m *Mixin) ThrowNew(kind ExceptionKind, message string) Code {
	m.Payload.Message = message
	return Code(kind)
}
