// Package binding turns a flat table of binding items into a populated host
// class template.
//
// An embedder declares a class once with the builder:
//
//	cls := binding.NewClass("File").
//		Constructor(newFile).
//		Method("read", fileRead).
//		Getter("size", fileSize).
//		Static("open", fileOpen)
//	tmpl, code := binding.Register(ctx, exports, cls, nil)
//
// Registration walks the item table in order. A getter or setter is paired
// with an adjacent opposite item of the same name into one accessor;
// accessors without a setter are read-only; a setter with no adjacent getter
// is a definition mistake and panics at registration time. Property names
// are interned so repeated instances share one host string.
//
// Every handler runs inside a Call context that owns the result payload.
// The trampoline installed on the template is the outermost dispatch
// boundary: it materializes any failing code as exactly one host exception
// and suppresses nothing but Bypass.
package binding
