package engine

// CallInfo carries one invocation from the engine into native code: a
// function or constructor call, or an accessor hit. For setter callbacks
// Args holds the single assigned value.
type CallInfo struct {
	Ctx         Context
	This        Value
	Args        []Value
	Data        any
	IsConstruct bool

	ret Value
}

// SetReturnValue stores the value the engine hands back to script code.
func (ci *CallInfo) SetReturnValue(v Value) { ci.ret = v }

// ReturnValue returns the stored return value, or an invalid handle when the
// callback never set one.
func (ci *CallInfo) ReturnValue() Value { return ci.ret }

// Callback is a native entry point invoked by the engine.
type Callback func(info *CallInfo)

// ClassTemplate registers the script-visible shape of a native class:
// named statics, prototype methods with a this-bound calling convention, and
// accessor pairs. Templates support single-parent inheritance and reserve a
// fixed number of internal slots per instance; the wrap bridge uses two.
type ClassTemplate interface {
	Name() string

	Inherit(parent ClassTemplate)
	SetInternalFieldCount(n int)

	AddStatic(name Value, cb Callback)
	AddMethod(name Value, cb Callback)
	// AddAccessor installs a property accessor. A nil setter makes the
	// property read-only.
	AddAccessor(name Value, getter, setter Callback)

	// Constructor returns the class function object for installing on an
	// exports object.
	Constructor(ctx Context) Value

	// NewInstance constructs an instance without running script-visible
	// construction logic twice; used by native return paths.
	NewInstance(ctx Context) (Value, bool)
}
