package result

// ExceptionKind selects which host exception class an error materializes as.
type ExceptionKind uint32

const (
	ExceptionNone ExceptionKind = iota
	ExceptionError
	ExceptionTypeError
	ExceptionRangeError
	ExceptionSyntaxError
	ExceptionReferenceError
)

// Code is the engine-neutral result of a fallible operation.
type Code uint32

const (
	Ok Code = 0

	// Throw-mapped codes raise the matching host exception kind with the
	// message stored in the payload. Values intentionally equal the
	// ExceptionKind they map to.
	ThrowError          Code = Code(ExceptionError)
	ThrowTypeError      Code = Code(ExceptionTypeError)
	ThrowRangeError     Code = Code(ExceptionRangeError)
	ThrowSyntaxError    Code = Code(ExceptionSyntaxError)
	ThrowReferenceError Code = Code(ExceptionReferenceError)

	InvalidState Code = iota + 4 // 10
	InvalidHandle
	OutOfMemory

	InvalidValue
	InvalidValueTypeID
	InvalidValueTypeName
	InvalidValueCustom
	InvalidValueRange
	UnsafeInt64Conversion
	UnsafeUint64Conversion

	InvalidArgumentsLength

	InvalidConstructCall
	AbstractConstructCall

	// Bypass is not an error. It tells the dispatch boundary that an
	// exception was already raised through another channel and no second
	// error must be reported.
	Bypass

	throwFirst = ThrowError
	throwLast  = ThrowReferenceError
	valueFirst = InvalidValue
	valueLast  = UnsafeUint64Conversion
)

func (c Code) IsOk() bool { return c == Ok }

// IsThrow reports whether the code maps 1:1 to a host exception kind.
func (c Code) IsThrow() bool { return c >= throwFirst && c <= throwLast }

// IsValueError reports whether the code is in the invalid-value band.
func (c Code) IsValueError() bool { return c >= valueFirst && c <= valueLast }

var codeNames = map[Code]string{
	Ok:                     "ok",
	ThrowError:             "throw-error",
	ThrowTypeError:         "throw-type-error",
	ThrowRangeError:        "throw-range-error",
	ThrowSyntaxError:       "throw-syntax-error",
	ThrowReferenceError:    "throw-reference-error",
	InvalidState:           "invalid-state",
	InvalidHandle:          "invalid-handle",
	OutOfMemory:            "out-of-memory",
	InvalidValue:           "invalid-value",
	InvalidValueTypeID:     "invalid-value-type-id",
	InvalidValueTypeName:   "invalid-value-type-name",
	InvalidValueCustom:     "invalid-value-custom",
	InvalidValueRange:      "invalid-value-range",
	UnsafeInt64Conversion:  "unsafe-int64-conversion",
	UnsafeUint64Conversion: "unsafe-uint64-conversion",
	InvalidArgumentsLength: "invalid-arguments-length",
	InvalidConstructCall:   "invalid-construct-call",
	AbstractConstructCall:  "abstract-construct-call",
	Bypass:                 "bypass",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return "unknown"
}
