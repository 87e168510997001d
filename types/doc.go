// Package types classifies native Go types for the conversion engine.
//
// Every native type that participates in marshaling belongs to exactly one
// trait Kind, determined by signedness and width. Integer types of 32 bits or
// less are "safe" because they round-trip exactly through the host engine's
// double-precision number representation; 64-bit types are "unsafe" and every
// conversion of them is range checked.
//
// The package also defines the engine-independent ValueType enumeration with
// its static name table, and the length-tagged string references (Latin-1,
// UTF-8, UTF-16) used by string packing.
package types
