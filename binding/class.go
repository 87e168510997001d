package binding

import "github.com/njs-api/njs-api/wrap"

// Class is the declarative description of one native class, built once at
// module initialization and consumed by Register.
type Class struct {
	name           string
	ctor           Handler
	abstract       bool
	internalFields int
	items          []Item
}

// NewClass starts a class declaration.
func NewClass(name string) *Class {
	return &Class{
		name:           name,
		internalFields: wrap.NumInternalFields,
	}
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Items returns the ordered binding records.
func (c *Class) Items() []Item { return c.items }

// Constructor installs the construct-call handler. Without one, construct
// calls fail as abstract.
func (c *Class) Constructor(h Handler) *Class {
	c.ctor = h
	return c
}

// Abstract forbids direct instantiation; construct calls fail with an
// abstract-construct-call diagnostic.
func (c *Class) Abstract() *Class {
	c.abstract = true
	return c
}

// InternalFields overrides the number of internal slots reserved per
// instance. The default reserves the two slots the wrap bridge needs.
func (c *Class) InternalFields(n int) *Class {
	c.internalFields = n
	return c
}

// Static appends a class-level function.
func (c *Class) Static(name string, h Handler) *Class {
	return c.add(KindStatic, name, h)
}

// Method appends an instance method.
func (c *Class) Method(name string, h Handler) *Class {
	return c.add(KindMethod, name, h)
}

// Getter appends a property getter. Pair it with an adjacent Setter of the
// same name for a read-write accessor.
func (c *Class) Getter(name string, h Handler) *Class {
	return c.add(KindGetter, name, h)
}

// Setter appends a property setter. It must be adjacent to the getter of
// the same name.
func (c *Class) Setter(name string, h Handler) *Class {
	return c.add(KindSetter, name, h)
}

func (c *Class) add(kind ItemKind, name string, h Handler) *Class {
	c.items = append(c.items, Item{Kind: kind, Name: name, Func: h})
	return c
}
