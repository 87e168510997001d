package engine

import "github.com/njs-api/njs-api/types"

// Value is an opaque handle to a host-managed value.
//
// Accessors must only be called when Type reports the matching value type;
// otherwise they return the zero value. An invalid handle has Type ValueNone
// and IsValid false.
type Value interface {
	IsValid() bool
	Type() types.ValueType

	Bool() bool
	Int32() int32
	Uint32() uint32
	// Number returns the numeric value for any of the Int32, Uint32 and
	// Double representations.
	Number() float64
	// String returns the UTF-8 text of a string value.
	String() string
	// StringLen returns the length of a string value in UTF-16 code units.
	StringLen() int
}

// Object extends Value for object handles with internal (opaque) slots. The
// wrap bridge stores its native record and type tag in two such slots.
type Object interface {
	Value
	InternalFieldCount() int
	InternalField(i int) any
	SetInternalField(i int, v any)
}

// AsObject narrows a handle to an object with internal fields.
func AsObject(v Value) (Object, bool) {
	o, ok := v.(Object)
	return o, ok && o.IsValid() && o.Type() == types.ValueObject
}

// Persistent is a GC-safe reference to a host value. It outlives handle
// scopes and may be captured by native code across asynchronous boundaries.
//
// While weak, the referenced object is eligible for collection and the
// registered finalizer runs when the GC determines no live references remain.
type Persistent interface {
	// Local re-enters the value as a live handle. Only valid on the VM
	// thread, inside a context.
	Local(ctx Context) Value

	// SetWeak arms collection: once the GC finds no other references, it
	// invokes fn exactly once.
	SetWeak(fn func())

	// ClearWeak pins the object again; a previously armed finalizer will
	// not run.
	ClearWeak()

	IsWeak() bool

	// Reset drops the reference entirely.
	Reset()
}
