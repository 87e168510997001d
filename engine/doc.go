// Package engine defines the collaborator interfaces the bridge consumes
// from a concrete host scripting engine.
//
// The bridge never depends on a particular VM; it talks to the engine through
// Value (opaque handle), Context (constructors, property access, invocation,
// exception raising), ClassTemplate (class registration), Persistent
// (GC-safe references with weak finalization) and TaskRunner (off-thread
// work with on-thread completion).
//
// Handles are only meaningful on the thread that owns their Context. A Value
// can be invalid ("empty"), which is distinct from holding null or undefined.
package engine
