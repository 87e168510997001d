package memvm

import (
	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/types"
)

// object backs every non-primitive value: plain objects, class instances,
// arrays, functions and error objects. The variant is carried in vt.
type object struct {
	base
	vt    types.ValueType
	props map[string]engine.Value
	elems map[uint32]engine.Value
	elemN uint32

	// internal slots, reserved per class template
	fields []any

	// class of an instance; property lookup consults its accessors and
	// methods before own properties
	class *Template

	// function payload
	call engine.Callback
	data any
	tmpl *Template // set on class constructor functions

	// set once the simulated GC collects the object
	dead bool
}

func newObject(vt types.ValueType) *object {
	return &object{vt: vt, props: make(map[string]engine.Value)}
}

func (o *object) IsValid() bool         { return !o.dead }
func (o *object) Type() types.ValueType { return o.vt }

func (o *object) InternalFieldCount() int { return len(o.fields) }

func (o *object) InternalField(i int) any {
	if i < 0 || i >= len(o.fields) {
		return nil
	}
	return o.fields[i]
}

func (o *object) SetInternalField(i int, v any) {
	if i >= 0 && i < len(o.fields) {
		o.fields[i] = v
	}
}
