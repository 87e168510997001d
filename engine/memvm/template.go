package memvm

import (
	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/types"
)

type accessor struct {
	get engine.Callback
	set engine.Callback // nil for read-only properties
}

// Template implements engine.ClassTemplate for the in-memory engine.
type Template struct {
	name       string
	ctor       engine.Callback
	data       any
	parent     *Template
	fieldCount int
	statics    map[string]engine.Callback
	methods    map[string]engine.Callback
	accessors  map[string]accessor
}

func newTemplate(name string, ctor engine.Callback, data any) *Template {
	return &Template{
		name:      name,
		ctor:      ctor,
		data:      data,
		statics:   make(map[string]engine.Callback),
		methods:   make(map[string]engine.Callback),
		accessors: make(map[string]accessor),
	}
}

func (t *Template) Name() string { return t.name }

func (t *Template) Inherit(parent engine.ClassTemplate) {
	t.parent = parent.(*Template)
}

func (t *Template) SetInternalFieldCount(n int) { t.fieldCount = n }

func (t *Template) AddStatic(name engine.Value, cb engine.Callback) {
	t.statics[name.String()] = cb
}

func (t *Template) AddMethod(name engine.Value, cb engine.Callback) {
	t.methods[name.String()] = cb
}

func (t *Template) AddAccessor(name engine.Value, getter, setter engine.Callback) {
	t.accessors[name.String()] = accessor{get: getter, set: setter}
}

// findAccessor walks the inheritance chain.
func (t *Template) findAccessor(name string) (accessor, bool) {
	for c := t; c != nil; c = c.parent {
		if a, ok := c.accessors[name]; ok {
			return a, true
		}
	}
	return accessor{}, false
}

// findMethod walks the inheritance chain.
func (t *Template) findMethod(name string) (engine.Callback, bool) {
	for c := t; c != nil; c = c.parent {
		if m, ok := c.methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// Constructor builds the class function object, with statics installed as
// properties.
func (t *Template) Constructor(ctx engine.Context) engine.Value {
	fn := newObject(types.ValueFunction)
	fn.call = t.ctor
	fn.data = t.data
	fn.tmpl = t
	for name, cb := range t.statics {
		s := newObject(types.ValueFunction)
		s.call = cb
		s.data = t.data
		fn.props[name] = s
	}
	return fn
}

// NewInstance builds an instance with reserved internal slots without
// running the constructor callback.
func (t *Template) NewInstance(ctx engine.Context) (engine.Value, bool) {
	inst := newObject(types.ValueObject)
	inst.fields = make([]any, t.fieldCount)
	inst.class = t
	return inst, true
}
