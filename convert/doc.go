// Package convert implements the pack/unpack conversion engine between
// native Go values and host engine values.
//
// Conversion strategy is selected by the trait category of the native type
// (types.KindOf). Safe integers (32-bit and below) map directly to the
// host's integer representations; 64-bit integers take a fast path to a
// 32-bit representation when the value fits and otherwise fall back to the
// double representation after a safe-integer check. Strings are built from
// length-tagged references in one of three encodings and read back through
// explicit length-bounded operations.
//
// A second dispatch axis, the concept extension, lets a type supply its own
// serializer (replacing pack/unpack wholesale) or a validator (a guard
// composed around the default conversion). PackWith and UnpackWith accept
// either, so call sites stay identical for primitives, enums and ranged
// integers.
package convert
