package binding

import "github.com/njs-api/njs-api/result"

// ItemKind classifies one binding record.
type ItemKind uint8

const (
	KindStatic ItemKind = iota + 1
	KindMethod
	KindGetter
	KindSetter
)

var itemKindNames = map[ItemKind]string{
	KindStatic: "static",
	KindMethod: "method",
	KindGetter: "getter",
	KindSetter: "setter",
}

func (k ItemKind) String() string {
	if s, ok := itemKindNames[k]; ok {
		return s
	}
	return "invalid"
}

// Handler is a bound native entry point. It reports failure through the
// result protocol; the dispatch boundary materializes the code.
type Handler func(c *Call) result.Code

// Item is one binding record: a static function, instance method, getter or
// setter. Items are immutable once built; ordering matters only for
// getter/setter adjacency.
type Item struct {
	Kind  ItemKind
	Flags uint32
	Name  string
	Func  Handler
}
