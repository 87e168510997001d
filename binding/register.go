package binding

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/result"
)

// Register populates a host class template from the class declaration and
// installs the class constructor on exports under the class name. It runs
// once per class per runtime; templates are cached by the engine.
//
// A malformed item table (a setter with no adjacent getter of the same
// name) is a programming mistake and panics here rather than surfacing at
// call time.
func Register(ctx engine.Context, exports engine.Value, c *Class, parent engine.ClassTemplate) (engine.ClassTemplate, result.Code) {
	tmpl := ctx.NewClassTemplate(c.name, constructTrampoline(c), c)
	if parent != nil {
		tmpl.Inherit(parent)
	}
	tmpl.SetInternalFieldCount(c.internalFields)

	items := c.items
	for i := 0; i < len(items); i++ {
		item := items[i]

		name := ctx.NewInternalizedString(item.Name)
		if code := result.OfHandle(name); code != result.Ok {
			return nil, code
		}

		switch item.Kind {
		case KindStatic:
			tmpl.AddStatic(name, trampoline(item.Func))

		case KindMethod:
			tmpl.AddMethod(name, trampoline(item.Func))

		case KindGetter, KindSetter:
			var getter, setter Handler
			paired := KindSetter
			if item.Kind == KindGetter {
				getter = item.Func
			} else {
				setter = item.Func
				paired = KindGetter
			}

			// Consume an adjacent opposite item of the same name as
			// the other half of the accessor.
			if i+1 < len(items) && items[i+1].Kind == paired && items[i+1].Name == item.Name {
				if getter == nil {
					getter = items[i+1].Func
				} else {
					setter = items[i+1].Func
				}
				i++
			}

			if getter == nil {
				panic(fmt.Sprintf("binding: setter %q on class %q has no adjacent getter", item.Name, c.name))
			}

			var setterCb engine.Callback
			if setter != nil {
				setterCb = trampoline(setter)
			}
			tmpl.AddAccessor(name, trampoline(getter), setterCb)

		default:
			panic(fmt.Sprintf("binding: invalid item kind %d on class %q", item.Kind, c.name))
		}
	}

	className := ctx.NewInternalizedString(c.name)
	if code := result.OfHandle(className); code != result.Ok {
		return nil, code
	}
	if !ctx.Set(exports, className, tmpl.Constructor(ctx)) {
		return nil, result.Bypass
	}

	Logger().Debug("binding: class registered",
		zap.String("class", c.name),
		zap.Int("items", len(items)))
	return tmpl, result.Ok
}

// trampoline wraps a handler into the engine callback invoked at the
// outermost dispatch boundary. Any failing code except Bypass materializes
// as exactly one host exception.
func trampoline(h Handler) engine.Callback {
	return func(info *engine.CallInfo) {
		call := &Call{Ctx: info.Ctx, This: info.This, info: info}
		call.Payload.Reset()

		code := h(call)
		if code == result.Ok || code == result.Bypass {
			return
		}
		result.Report(info.Ctx, code, &call.Payload)
	}
}

// constructTrampoline guards construct semantics before delegating to the
// class constructor handler.
func constructTrampoline(c *Class) engine.Callback {
	return func(info *engine.CallInfo) {
		call := &Call{Ctx: info.Ctx, This: info.This, info: info}
		call.Payload.Reset()

		var code result.Code
		switch {
		case !info.IsConstruct:
			code = call.InvalidConstructCall(c.name)
		case c.abstract || c.ctor == nil:
			code = call.AbstractConstructCall(c.name)
		default:
			code = c.ctor(call)
		}

		if code == result.Ok || code == result.Bypass {
			return
		}
		result.Report(info.Ctx, code, &call.Payload)
	}
}
