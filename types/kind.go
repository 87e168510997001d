package types

import "strconv"

// Kind is the trait category of a native type.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBool
	KindSafeInt
	KindSafeUint
	KindUnsafeInt
	KindUnsafeUint
	KindFloat
	KindDouble
	KindStrRef
)

var kindNames = [...]string{
	KindUnknown:    "unknown",
	KindBool:       "bool",
	KindSafeInt:    "safe-int",
	KindSafeUint:   "safe-uint",
	KindUnsafeInt:  "unsafe-int",
	KindUnsafeUint: "unsafe-uint",
	KindFloat:      "float",
	KindDouble:     "double",
	KindStrRef:     "string-ref",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) IsPrimitive() bool { return k >= KindBool && k <= KindDouble }
func (k Kind) IsInt() bool       { return k >= KindSafeInt && k <= KindUnsafeUint }
func (k Kind) IsSigned() bool    { return k == KindSafeInt || k == KindUnsafeInt }
func (k Kind) IsUnsigned() bool  { return k == KindSafeUint || k == KindUnsafeUint }
func (k Kind) IsReal() bool      { return k == KindFloat || k == KindDouble }
func (k Kind) IsStrRef() bool    { return k == KindStrRef }

// KindOf returns the trait category of a native value.
//
// Platform-sized int and uint classify by their actual width, so on 64-bit
// targets they are unsafe and every conversion of them is range checked.
func KindOf(v any) Kind {
	switch v.(type) {
	case bool:
		return KindBool
	case int8, int16, int32:
		return KindSafeInt
	case uint8, uint16, uint32:
		return KindSafeUint
	case int64:
		return KindUnsafeInt
	case uint64:
		return KindUnsafeUint
	case int:
		if strconv.IntSize == 64 {
			return KindUnsafeInt
		}
		return KindSafeInt
	case uint:
		if strconv.IntSize == 64 {
			return KindUnsafeUint
		}
		return KindSafeUint
	case float32:
		return KindFloat
	case float64:
		return KindDouble
	case Latin1Ref, UTF8Ref, UTF16Ref:
		return KindStrRef
	default:
		return KindUnknown
	}
}

// KindOfPtr classifies the pointee of an output destination used by Unpack.
// Returns KindUnknown for anything that is not a supported pointer type.
func KindOfPtr(v any) Kind {
	switch v.(type) {
	case *bool:
		return KindBool
	case *int8, *int16, *int32:
		return KindSafeInt
	case *uint8, *uint16, *uint32:
		return KindSafeUint
	case *int64:
		return KindUnsafeInt
	case *uint64:
		return KindUnsafeUint
	case *int:
		if strconv.IntSize == 64 {
			return KindUnsafeInt
		}
		return KindSafeInt
	case *uint:
		if strconv.IntSize == 64 {
			return KindUnsafeUint
		}
		return KindSafeUint
	case *float32:
		return KindFloat
	case *float64:
		return KindDouble
	case *string:
		return KindStrRef
	default:
		return KindUnknown
	}
}
