package result

// Validity is satisfied by host value handles, which can be empty or invalid
// independently of holding null or undefined.
type Validity interface {
	IsValid() bool
}

// Maybe pairs a value with the code of the operation that produced it.
type Maybe[T any] struct {
	Value T
	Code  Code
}

func (m Maybe[T]) IsOk() bool { return m.Code == Ok }

// Just wraps a successful value.
func Just[T any](v T) Maybe[T] { return Maybe[T]{Value: v} }

// Fail wraps a failure code.
func Fail[T any](c Code) Maybe[T] { return Maybe[T]{Code: c} }

// The Of* helpers normalize heterogeneous "could have failed" values into a
// single Code so callers can use one check-and-propagate idiom.

// OfHandle maps an empty/invalid host handle to InvalidHandle.
func OfHandle(v Validity) Code {
	if v == nil || !v.IsValid() {
		return InvalidHandle
	}
	return Ok
}

// OfPtr maps a nil pointer to OutOfMemory, the convention for failed native
// allocation.
func OfPtr[T any](p *T) Code {
	if p == nil {
		return OutOfMemory
	}
	return Ok
}

// OfMaybe extracts the code from a Maybe.
func OfMaybe[T any](m Maybe[T]) Code { return m.Code }
