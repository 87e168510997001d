// Package enum converts between native integer enumerations and their
// string tokens.
//
// An enumeration covers a contiguous value range [start, end] and stores one
// token per value in a compact null-separated blob, in range order. A token
// prefixed with the alternate marker registers a second accepted spelling
// for the preceding value without consuming an index slot. During parsing a
// hyphen in a stored token is treated as skippable, so "rgb-24" and "rgb24"
// both match.
//
// Enum implements the conversion engine's serializer concept, so enum-typed
// arguments and return values use the same call sites as primitives.
package enum
