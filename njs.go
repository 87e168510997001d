package njsapi

import (
	"github.com/njs-api/njs-api/binding"
	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/result"
)

// Module groups class declarations that register together on one exports
// object, the shape a host module init hook wants.
type Module struct {
	classes []*binding.Class
}

// NewModule starts an empty module declaration.
func NewModule() *Module { return &Module{} }

// Class appends a class declaration.
func (m *Module) Class(c *binding.Class) *Module {
	m.classes = append(m.classes, c)
	return m
}

// Register installs every declared class on exports in declaration order.
// Registration stops at the first failure; already installed classes stay
// installed.
func (m *Module) Register(ctx engine.Context, exports engine.Value) result.Code {
	if code := result.OfHandle(exports); code != result.Ok {
		return code
	}
	for _, c := range m.classes {
		if _, code := binding.Register(ctx, exports, c, nil); code != result.Ok {
			return code
		}
	}
	return result.Ok
}
