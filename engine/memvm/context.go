package memvm

import (
	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/result"
	"github.com/njs-api/njs-api/types"
)

// Context implements engine.Context against the in-memory runtime.
type Context struct {
	rt      *Runtime
	pending engine.Value
}

// NewContext enters the runtime directly. Enter is preferred; this exists
// for tests that want to hold the concrete type.
func NewContext(rt *Runtime) *Context { return &Context{rt: rt} }

func (c *Context) Runtime() engine.Runtime { return c.rt }

func (c *Context) ThrowException(kind result.ExceptionKind, message string) {
	err := newObject(types.ValueError)
	err.props["name"] = stringVal{v: exceptionName(kind)}
	err.props["message"] = stringVal{v: message}
	c.pending = err
}

func exceptionName(kind result.ExceptionKind) string {
	switch kind {
	case result.ExceptionTypeError:
		return "TypeError"
	case result.ExceptionRangeError:
		return "RangeError"
	case result.ExceptionSyntaxError:
		return "SyntaxError"
	case result.ExceptionReferenceError:
		return "ReferenceError"
	default:
		return "Error"
	}
}

func (c *Context) Undefined() engine.Value        { return undefinedVal{} }
func (c *Context) Null() engine.Value             { return nullVal{} }
func (c *Context) NewBool(v bool) engine.Value    { return boolVal{v: v} }
func (c *Context) NewInt32(v int32) engine.Value  { return numberVal{v: float64(v)} }
func (c *Context) NewUint32(v uint32) engine.Value { return numberVal{v: float64(v)} }
func (c *Context) NewDouble(v float64) engine.Value { return numberVal{v: v} }

func (c *Context) NewString(s string) engine.Value {
	if utf16Len(s) > c.rt.maxStrLen {
		return invalidVal{}
	}
	return stringVal{v: s}
}

func (c *Context) NewInternalizedString(s string) engine.Value {
	if v, ok := c.rt.interned[s]; ok {
		return v
	}
	v := c.NewString(s)
	if v.IsValid() {
		c.rt.interned[s] = v
	}
	return v
}

func (c *Context) NewObject() engine.Value { return newObject(types.ValueObject) }

func (c *Context) NewArray(length int) engine.Value {
	a := newObject(types.ValueArray)
	a.elems = make(map[uint32]engine.Value)
	a.elemN = uint32(length)
	return a
}

func (c *Context) MaxStringLength() int { return c.rt.maxStrLen }

func (c *Context) Get(obj engine.Value, key engine.Value) (engine.Value, bool) {
	o, ok := c.receiver(obj)
	if !ok {
		return invalidVal{}, false
	}
	name := key.String()

	if o.class != nil {
		if a, found := o.class.findAccessor(name); found {
			return c.invoke(a.get, o, nil, o.class.data)
		}
		if m, found := o.class.findMethod(name); found {
			fn := newObject(types.ValueFunction)
			fn.call = m
			fn.data = o.class.data
			return fn, true
		}
	}
	if o.vt == types.ValueArray && name == "length" {
		return numberVal{v: float64(o.elemN)}, true
	}
	if v, found := o.props[name]; found {
		return v, true
	}
	return undefinedVal{}, true
}

func (c *Context) Set(obj engine.Value, key engine.Value, v engine.Value) bool {
	o, ok := c.receiver(obj)
	if !ok {
		return false
	}
	name := key.String()

	if o.class != nil {
		if a, found := o.class.findAccessor(name); found {
			if a.set == nil {
				// read-only property; sloppy-mode assignment is a no-op
				return true
			}
			_, ok := c.invoke(a.set, o, []engine.Value{v}, o.class.data)
			return ok
		}
	}
	o.props[name] = v
	return true
}

func (c *Context) GetIndex(obj engine.Value, index uint32) (engine.Value, bool) {
	o, ok := c.receiver(obj)
	if !ok {
		return invalidVal{}, false
	}
	if o.elems != nil {
		if v, found := o.elems[index]; found {
			return v, true
		}
	}
	return undefinedVal{}, true
}

func (c *Context) SetIndex(obj engine.Value, index uint32, v engine.Value) bool {
	o, ok := c.receiver(obj)
	if !ok {
		return false
	}
	if o.elems == nil {
		o.elems = make(map[uint32]engine.Value)
	}
	o.elems[index] = v
	if index >= o.elemN {
		o.elemN = index + 1
	}
	return true
}

func (c *Context) Call(fn engine.Value, this engine.Value, args ...engine.Value) (engine.Value, bool) {
	f, ok := fn.(*object)
	if !ok || !f.IsValid() || f.vt != types.ValueFunction || f.call == nil {
		c.ThrowException(result.ExceptionTypeError, "not a function")
		return invalidVal{}, false
	}
	if this == nil {
		this = undefinedVal{}
	}
	return c.invoke(f.call, this, args, f.data)
}

func (c *Context) New(ctor engine.Value, args ...engine.Value) (engine.Value, bool) {
	f, ok := ctor.(*object)
	if !ok || !f.IsValid() || f.tmpl == nil {
		c.ThrowException(result.ExceptionTypeError, "not a constructor")
		return invalidVal{}, false
	}
	inst := newObject(types.ValueObject)
	inst.fields = make([]any, f.tmpl.fieldCount)
	inst.class = f.tmpl

	if f.call != nil {
		info := &engine.CallInfo{
			Ctx:         c,
			This:        inst,
			Args:        args,
			Data:        f.data,
			IsConstruct: true,
		}
		f.call(info)
		if c.pending != nil {
			return invalidVal{}, false
		}
	}
	return inst, true
}

func (c *Context) HasPendingException() bool { return c.pending != nil }

func (c *Context) TakePendingException() engine.Value {
	p := c.pending
	c.pending = nil
	if p == nil {
		return invalidVal{}
	}
	return p
}

func (c *Context) MakePersistent(v engine.Value) engine.Persistent {
	p := &persistentRef{rt: c.rt, target: v}
	c.rt.persistents[p] = struct{}{}
	return p
}

func (c *Context) NewClassTemplate(name string, ctor engine.Callback, data any) engine.ClassTemplate {
	return newTemplate(name, ctor, data)
}

// invoke runs a callback and folds a pending exception into ok=false.
func (c *Context) invoke(cb engine.Callback, this engine.Value, args []engine.Value, data any) (engine.Value, bool) {
	info := &engine.CallInfo{
		Ctx:  c,
		This: this,
		Args: args,
		Data: data,
	}
	cb(info)
	if c.pending != nil {
		return invalidVal{}, false
	}
	if rv := info.ReturnValue(); rv != nil {
		return rv, true
	}
	return undefinedVal{}, true
}

// receiver narrows any value that can hold properties.
func (c *Context) receiver(v engine.Value) (*object, bool) {
	o, ok := v.(*object)
	if !ok || !o.IsValid() {
		c.ThrowException(result.ExceptionTypeError, "not an object")
		return nil, false
	}
	return o, true
}
