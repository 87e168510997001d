package types

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"bool", true, KindBool},
		{"int8", int8(0), KindSafeInt},
		{"int16", int16(0), KindSafeInt},
		{"int32", int32(0), KindSafeInt},
		{"uint8", uint8(0), KindSafeUint},
		{"uint32", uint32(0), KindSafeUint},
		{"int64", int64(0), KindUnsafeInt},
		{"uint64", uint64(0), KindUnsafeUint},
		{"float32", float32(0), KindFloat},
		{"float64", float64(0), KindDouble},
		{"latin1", Latin1("x"), KindStrRef},
		{"utf8", UTF8("x"), KindStrRef},
		{"utf16", UTF16(nil), KindStrRef},
		{"unsupported", struct{}{}, KindUnknown},
		{"nil", nil, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.in); got != tt.want {
				t.Fatalf("KindOf(%T) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKindOfPtr(t *testing.T) {
	var (
		b   bool
		i32 int32
		u64 uint64
		f64 float64
		s   string
	)
	tests := []struct {
		in   any
		want Kind
	}{
		{&b, KindBool},
		{&i32, KindSafeInt},
		{&u64, KindUnsafeUint},
		{&f64, KindDouble},
		{&s, KindStrRef},
		{b, KindUnknown}, // non-pointer
	}
	for _, tt := range tests {
		if got := KindOfPtr(tt.in); got != tt.want {
			t.Errorf("KindOfPtr(%T) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !KindSafeInt.IsPrimitive() || !KindSafeInt.IsInt() || !KindSafeInt.IsSigned() {
		t.Fatalf("safe-int predicates")
	}
	if KindSafeInt.IsUnsigned() || KindSafeInt.IsReal() {
		t.Fatalf("safe-int predicates")
	}
	if !KindUnsafeUint.IsUnsigned() || KindUnsafeUint.IsSigned() {
		t.Fatalf("unsafe-uint predicates")
	}
	if !KindDouble.IsReal() || KindDouble.IsInt() {
		t.Fatalf("double predicates")
	}
	if KindStrRef.IsPrimitive() || !KindStrRef.IsStrRef() {
		t.Fatalf("string-ref predicates")
	}
	if KindUnknown.IsPrimitive() {
		t.Fatalf("unknown predicates")
	}
}

func TestTypeNames(t *testing.T) {
	tests := []struct {
		id   ValueType
		want string
	}{
		{ValueNone, "?"},
		{ValueBool, "Boolean"},
		{ValueInt32, "Int32"},
		{ValueString, "String"},
		{ValueObject, "Object"},
		{ValueArrayBuffer, "ArrayBuffer"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.id); got != tt.want {
			t.Errorf("TypeName(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestIsNumber(t *testing.T) {
	for _, id := range []ValueType{ValueInt32, ValueUint32, ValueDouble} {
		if !id.IsNumber() {
			t.Errorf("%v.IsNumber() = false", id)
		}
	}
	for _, id := range []ValueType{ValueNone, ValueBool, ValueString} {
		if id.IsNumber() {
			t.Errorf("%v.IsNumber() = true", id)
		}
	}
}
