package engine

import "github.com/njs-api/njs-api/result"

// Context is the bridge's window into a live host execution context. All
// methods must run on the VM thread.
//
// Operations that can fail because script code raised (property access,
// invocation) return ok=false with the exception left pending; callers
// propagate result.Bypass in that case instead of reporting a second error.
type Context interface {
	result.Thrower

	Runtime() Runtime

	// Constructors. A failed construction (e.g. an over-long string)
	// yields an invalid handle, normalized by result.OfHandle.
	Undefined() Value
	Null() Value
	NewBool(v bool) Value
	NewInt32(v int32) Value
	NewUint32(v uint32) Value
	NewDouble(v float64) Value
	// NewString builds a host string from UTF-8 text. Fails with an
	// invalid handle if the text exceeds MaxStringLength code units.
	NewString(s string) Value
	// NewInternalizedString interns the name so repeated registrations of
	// the same property share one host string.
	NewInternalizedString(s string) Value
	NewObject() Value
	NewArray(length int) Value

	// MaxStringLength is the engine's limit on string length in UTF-16
	// code units.
	MaxStringLength() int

	// Property access by key or index.
	Get(obj Value, key Value) (Value, bool)
	Set(obj Value, key Value, v Value) bool
	GetIndex(obj Value, index uint32) (Value, bool)
	SetIndex(obj Value, index uint32, v Value) bool

	// Invocation and construction.
	Call(fn Value, this Value, args ...Value) (Value, bool)
	New(ctor Value, args ...Value) (Value, bool)

	HasPendingException() bool
	TakePendingException() Value

	// MakePersistent promotes a handle to a GC-safe reference.
	MakePersistent(v Value) Persistent

	// NewClassTemplate starts a class registration. The constructor
	// callback observes construct calls; data is delivered back through
	// CallInfo.Data.
	NewClassTemplate(name string, ctor Callback, data any) ClassTemplate
}

// Runtime is the per-VM anchor that survives across contexts. Asynchronous
// completions use it to enter a fresh scoped context.
type Runtime interface {
	// Enter runs fn on the VM thread inside a freshly entered context.
	// Required when a call was not triggered by the VM itself, e.g. a
	// task completion.
	Enter(fn func(Context))

	// TaskRunner returns the runner used to schedule native work off the
	// VM thread.
	TaskRunner() TaskRunner
}

// TaskRunner schedules a work callback off the VM thread and, after it
// completes, a done callback back on the VM thread. Completions run in work
// completion order, not submission order.
type TaskRunner interface {
	Post(work func(), done func())
}
