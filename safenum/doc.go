// Package safenum provides bounds-checked numeric conversions for values that
// must round-trip through the host engine's double-precision number type.
//
// The host's universal number cannot represent the full 64-bit integer
// domain, only integers with |x| <= 2^53-1 ("safe integers"). Every
// unsafe-width conversion is therefore checked explicitly instead of being
// silently truncated.
package safenum
