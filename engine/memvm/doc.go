// Package memvm is an in-memory host engine used by tests, examples and the
// inspector tool.
//
// It implements the engine interfaces with plain Go values: numbers carry
// the Int32/Uint32/Double representation split the bridge's fast paths rely
// on, objects have property maps and internal slots, and class templates
// dispatch through the same callback shape a production engine would use.
//
// Garbage collection is simulated: Collect finalizes every persistent
// reference currently in the weak state, treating "weak" as "unreachable".
// That pessimistic model is exactly what the wrap bridge's state machine
// has to survive.
package memvm
