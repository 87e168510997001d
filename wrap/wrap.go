package wrap

import (
	"go.uber.org/zap"

	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/result"
)

// Internal slot layout on wrapped host objects. Class templates that wrap
// natives must reserve at least NumInternalFields slots.
const (
	slotData = 0
	slotTag  = 1

	NumInternalFields = 2
)

// Finalizer frees the native object once both the native refcount and the
// host GC agree no references remain. It runs on the VM thread inside the
// GC's weak callback, so it must not raise through the host.
type Finalizer func(native any)

// Data is the per-native-object pairing record. It never outlives its native
// object, and a host object is never paired with more than one native.
type Data struct {
	native    any
	tag       uint32
	refCount  int
	object    engine.Persistent
	finalizer Finalizer
	handle    Handle
	table     *Table
	finalized bool
}

// Attach pairs native with a freshly constructed host object. The pairing
// starts Attached-Weak: refcount zero, collectible, finalizer armed.
//
// Fails with OutOfMemory when native is nil (the allocate-and-wrap
// convention), InvalidValue when obj is not an object, and InvalidState when
// the object's template did not reserve the two internal slots.
func Attach(ctx engine.Context, obj engine.Value, native any, tag uint32, fin Finalizer) (*Data, result.Code) {
	if native == nil {
		return nil, result.OutOfMemory
	}
	o, ok := engine.AsObject(obj)
	if !ok {
		return nil, result.InvalidValue
	}
	if o.InternalFieldCount() < NumInternalFields {
		return nil, result.InvalidState
	}
	if o.InternalField(slotData) != nil {
		// Re-wrapping an already paired object breaks the 1:1 invariant.
		return nil, result.InvalidState
	}

	d := &Data{
		native:    native,
		tag:       tag,
		finalizer: fin,
		object:    ctx.MakePersistent(obj),
		table:     live,
	}
	o.SetInternalField(slotData, d)
	o.SetInternalField(slotTag, tag)

	d.handle = live.add(d)
	d.object.SetWeak(d.finalize)

	Logger().Debug("wrap: attached",
		zap.Uint32("tag", tag),
		zap.Uint32("handle", uint32(d.handle)))
	return d, result.Ok
}

// New is Attach for the allocate-and-wrap call sites: native is the result
// of an allocation that may have failed, and the typed pointer comes back so
// construction can continue on it.
func New[T any](ctx engine.Context, obj engine.Value, native *T, tag uint32, fin Finalizer) (*T, result.Code) {
	if code := result.OfPtr(native); code != result.Ok {
		return nil, code
	}
	if _, code := Attach(ctx, obj, native, tag, fin); code != result.Ok {
		return nil, code
	}
	return native, result.Ok
}

// Native returns the paired native object.
func (d *Data) Native() any { return d.native }

// Tag returns the type tag recorded at attach time.
func (d *Data) Tag() uint32 { return d.tag }

// RefCount returns the native-side ownership count.
func (d *Data) RefCount() int { return d.refCount }

// Collectible reports whether the host GC may finalize the pairing.
func (d *Data) Collectible() bool { return d.object.IsWeak() }

// Object re-enters the paired host object as a live handle.
func (d *Data) Object(ctx engine.Context) engine.Value { return d.object.Local(ctx) }

// AddRef records native-side ownership, e.g. while an async task holds the
// object. The first reference pins the host object against collection.
func (d *Data) AddRef() {
	if d.finalized {
		panic("wrap: AddRef after finalization")
	}
	d.refCount++
	d.object.ClearWeak()
}

// Release drops one native-side reference. When the count returns to zero
// the host object becomes collectible again and the finalizer is re-armed.
func (d *Data) Release() {
	if d.refCount <= 0 {
		panic("wrap: Release without matching AddRef")
	}
	if d.object.IsWeak() {
		panic("wrap: refcounted object must not be weak")
	}
	d.refCount--
	if d.refCount == 0 {
		d.object.SetWeak(d.finalize)
	}
}

// finalize is the GC weak callback. It must only run once the refcount is
// zero; anything else is a use-after-free in the embedder.
func (d *Data) finalize() {
	if d.refCount != 0 {
		panic("wrap: finalizer ran with live native references")
	}
	d.finalized = true
	d.object.Reset()
	d.table.remove(d.handle)

	Logger().Debug("wrap: finalized",
		zap.Uint32("tag", d.tag),
		zap.Uint32("handle", uint32(d.handle)))

	if d.finalizer != nil {
		d.finalizer(d.native)
	}
	d.native = nil
}

// Unwrap validates that v is an object wrapped with the given tag and
// returns the paired native object. The tag check prevents a native of one
// wrapped type being reinterpreted as another.
func Unwrap(v engine.Value, tag uint32) (any, result.Code) {
	d, code := DataOf(v, tag)
	if code != result.Ok {
		return nil, code
	}
	return d.native, result.Ok
}

// DataOf is Unwrap returning the full pairing record, for callers that need
// AddRef/Release.
func DataOf(v engine.Value, tag uint32) (*Data, result.Code) {
	o, ok := engine.AsObject(v)
	if !ok {
		return nil, result.InvalidValue
	}
	if o.InternalFieldCount() < NumInternalFields {
		return nil, result.InvalidValue
	}
	gotTag, ok := o.InternalField(slotTag).(uint32)
	if !ok || gotTag != tag {
		return nil, result.InvalidValue
	}
	d, ok := o.InternalField(slotData).(*Data)
	if !ok {
		return nil, result.InvalidValue
	}
	return d, result.Ok
}

// UnwrapUnsafe skips validation. Only call it where the host's dispatch
// signature already guarantees the receiver's dynamic type, e.g. inside a
// method bound through a type-checked call signature.
func UnwrapUnsafe(v engine.Value) any {
	o := v.(engine.Object)
	return o.InternalField(slotData).(*Data).native
}
