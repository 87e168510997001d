// Package njsapi bridges native Go objects and values into an embedded
// script engine: type-directed value conversion, a refcount-aware object
// lifetime pairing, and a declarative class binding registry.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	njsapi/          Root package with module-level registration
//	├── types/       Native trait classification and host value types
//	├── safenum/     Exact integer conversion and safe-integer checks
//	├── result/      Result codes, diagnostic payloads, error materialization
//	├── engine/      Abstract host engine interfaces
//	│   └── memvm/   In-memory reference engine for tests and tools
//	├── convert/     Native ↔ host value conversion with concept extensions
//	├── wrap/        Native object pairing and GC lifetime bridge
//	├── binding/     Declarative class declarations and dispatch trampolines
//	├── enum/        Enumeration string tables as a conversion concept
//	└── task/        Off-thread native work with VM-thread completion
//
// # Quick Start
//
// Declare a class once and register it during module initialization:
//
//	cls := binding.NewClass("Counter").
//	    Constructor(func(c *binding.Call) result.Code {
//	        _, code := c.Wrap(&counter{}, tagCounter, nil)
//	        return code
//	    }).
//	    Method("add", addHandler)
//
//	mod := njsapi.NewModule().Class(cls)
//	if code := mod.Register(ctx, exports); code != result.Ok {
//	    // report through the host
//	}
//
// Handlers receive a binding.Call, convert arguments with UnpackArg, and
// report failure through result codes; the dispatch boundary turns a failing
// code into exactly one host exception.
package njsapi
