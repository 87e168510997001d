// Package result implements the result code and payload protocol used by
// every fallible operation in the bridge.
//
// Operations return a Code instead of a Go error so that failure can cross
// finalizer and completion-callback boundaries where raising is unsafe. Codes
// are partitioned into contiguous bands (throw-mapped, invalid-value,
// arguments-length, construct-call) and band membership is checked by range
// comparison, so a new code inside a band needs no dispatch changes.
//
// A Payload carries structured diagnostic context (argument index, expected
// type, argument count bounds, class name) without heap allocation on the
// failure path. Only the fields implied by the producing Code are valid;
// consumers re-derive the shape from the code.
//
// Format turns a (Code, Payload) pair into an exception kind and message;
// Report raises it through the host context. Bypass is the one code that must
// never be materialized: it means an exception is already pending.
package result
