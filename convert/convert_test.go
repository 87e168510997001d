package convert_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/njs-api/njs-api/convert"
	"github.com/njs-api/njs-api/engine/memvm"
	"github.com/njs-api/njs-api/result"
	"github.com/njs-api/njs-api/types"
)

func newContext(t *testing.T) *memvm.Context {
	t.Helper()
	return memvm.NewContext(memvm.NewRuntime(nil))
}

func TestPackRepresentations(t *testing.T) {
	ctx := newContext(t)

	tests := []struct {
		name string
		in   any
		want types.ValueType
	}{
		{"bool", true, types.ValueBool},
		{"int8", int8(-1), types.ValueInt32},
		{"int16", int16(300), types.ValueInt32},
		{"int32", int32(-70000), types.ValueInt32},
		{"uint8", uint8(255), types.ValueInt32},
		{"uint16", uint16(65535), types.ValueInt32},
		{"uint32 small", uint32(12), types.ValueInt32},
		{"uint32 large", uint32(3000000000), types.ValueUint32},
		{"float64", 1.5, types.ValueDouble},
		{"float32", float32(0.25), types.ValueDouble},
		{"int64 in int32", int64(-7), types.ValueInt32},
		{"int64 above int32", int64(3000000000), types.ValueUint32},
		{"int64 above uint32", int64(1) << 40, types.ValueDouble},
		{"uint64 in uint32", uint64(7), types.ValueInt32},
		{"uint64 above uint32", uint64(1) << 40, types.ValueDouble},
		{"string utf8", types.UTF8("hi"), types.ValueString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, code := convert.Pack(ctx, tt.in)
			if code != result.Ok {
				t.Fatalf("Pack(%v) = %v", tt.in, code)
			}
			if got := v.Type(); got != tt.want {
				t.Fatalf("Pack(%v).Type() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPackUnsafe64(t *testing.T) {
	ctx := newContext(t)

	// 2^53-1 is the largest exactly representable integer.
	if _, code := convert.Pack(ctx, int64(1)<<53-1); code != result.Ok {
		t.Fatalf("max safe int64: %v", code)
	}
	if _, code := convert.Pack(ctx, int64(1)<<53); code != result.UnsafeInt64Conversion {
		t.Fatalf("2^53 int64 = %v, want UnsafeInt64Conversion", code)
	}
	if _, code := convert.Pack(ctx, -(int64(1) << 53)); code != result.UnsafeInt64Conversion {
		t.Fatalf("-2^53 int64 = %v, want UnsafeInt64Conversion", code)
	}
	if _, code := convert.Pack(ctx, uint64(1)<<53); code != result.UnsafeUint64Conversion {
		t.Fatalf("2^53 uint64 = %v, want UnsafeUint64Conversion", code)
	}
}

func TestPackUnsupported(t *testing.T) {
	ctx := newContext(t)
	if _, code := convert.Pack(ctx, struct{}{}); code != result.InvalidValue {
		t.Fatalf("Pack(struct{}{}) = %v, want InvalidValue", code)
	}
}

func TestUnpackNarrowing(t *testing.T) {
	ctx := newContext(t)

	var i8 int8
	if code := convert.Unpack(ctx, ctx.NewInt32(127), &i8); code != result.Ok || i8 != 127 {
		t.Fatalf("int8 = %d, %v", i8, code)
	}
	if code := convert.Unpack(ctx, ctx.NewInt32(128), &i8); code != result.InvalidValue {
		t.Fatalf("overflow int8 = %v, want InvalidValue", code)
	}

	var u8 uint8
	if code := convert.Unpack(ctx, ctx.NewInt32(-1), &u8); code != result.InvalidValue {
		t.Fatalf("negative into uint8 = %v, want InvalidValue", code)
	}
}

func TestUnpackRepresentationWidening(t *testing.T) {
	ctx := newContext(t)

	// 2^32 is held as a double; it exceeds uint32 but fits uint64.
	v := ctx.NewDouble(4294967296)

	var u32 uint32
	if code := convert.Unpack(ctx, v, &u32); code != result.InvalidValue {
		t.Fatalf("2^32 into uint32 = %v, want InvalidValue", code)
	}

	var u64 uint64
	if code := convert.Unpack(ctx, v, &u64); code != result.Ok || u64 != 1<<32 {
		t.Fatalf("2^32 into uint64 = %d, %v", u64, code)
	}
}

func TestUnpackCrossRepresentation(t *testing.T) {
	ctx := newContext(t)

	// A Uint32-represented number still unpacks into int64.
	var i64 int64
	if code := convert.Unpack(ctx, ctx.NewUint32(3000000000), &i64); code != result.Ok || i64 != 3000000000 {
		t.Fatalf("uint32 rep into int64 = %d, %v", i64, code)
	}

	// Fractional doubles never unpack into integers.
	var i32 int32
	if code := convert.Unpack(ctx, ctx.NewDouble(1.5), &i32); code != result.InvalidValue {
		t.Fatalf("1.5 into int32 = %v, want InvalidValue", code)
	}

	var f float64
	if code := convert.Unpack(ctx, ctx.NewDouble(1.5), &f); code != result.Ok || f != 1.5 {
		t.Fatalf("1.5 into float64 = %g, %v", f, code)
	}
}

func TestUnpackTypeMismatch(t *testing.T) {
	ctx := newContext(t)

	var b bool
	if code := convert.Unpack(ctx, ctx.NewInt32(1), &b); code != result.InvalidValue {
		t.Fatalf("number into bool = %v", code)
	}

	var s string
	if code := convert.Unpack(ctx, ctx.NewBool(true), &s); code != result.InvalidValue {
		t.Fatalf("bool into string = %v", code)
	}

	var i int32
	if code := convert.Unpack(ctx, nil, &i); code != result.InvalidHandle {
		t.Fatalf("nil handle = %v, want InvalidHandle", code)
	}
}

func TestStringRoundTrip(t *testing.T) {
	ctx := newContext(t)

	v, code := convert.PackUTF8(ctx, types.UTF8("héllo"))
	if code != result.Ok {
		t.Fatalf("PackUTF8: %v", code)
	}

	b, code := convert.ReadUTF8(v)
	if code != result.Ok || string(b) != "héllo" {
		t.Fatalf("ReadUTF8 = %q, %v", b, code)
	}

	u, code := convert.ReadUTF16(v)
	if code != result.Ok {
		t.Fatalf("ReadUTF16: %v", code)
	}
	v2, code := convert.PackUTF16(ctx, types.UTF16(u))
	if code != result.Ok || v2.String() != "héllo" {
		t.Fatalf("UTF-16 round trip = %q, %v", v2.String(), code)
	}
}

func TestLatin1Substitution(t *testing.T) {
	ctx := newContext(t)

	v, code := convert.PackLatin1(ctx, types.Latin1("caf\xe9"))
	if code != result.Ok || v.String() != "café" {
		t.Fatalf("PackLatin1 = %q, %v", v.String(), code)
	}

	// Reading text above U+00FF substitutes instead of failing.
	snowman, _ := convert.PackUTF8(ctx, types.UTF8("a☃b"))
	b, code := convert.ReadLatin1(snowman)
	if code != result.Ok {
		t.Fatalf("ReadLatin1: %v", code)
	}
	if len(b) != 3 || b[0] != 'a' || b[2] != 'b' {
		t.Fatalf("ReadLatin1 = %v", b)
	}
}

func TestStringLengthLimit(t *testing.T) {
	rt := memvm.NewRuntime(nil)
	rt.SetMaxStringLength(3)
	ctx := memvm.NewContext(rt)

	if _, code := convert.PackUTF8(ctx, types.UTF8("abcd")); code != result.InvalidValue {
		t.Fatalf("over-long pack = %v, want InvalidValue", code)
	}
	if _, code := convert.PackUTF8(ctx, types.UTF8("abc")); code != result.Ok {
		t.Fatalf("at-limit pack = %v", code)
	}
}

func TestRangeValidator(t *testing.T) {
	ctx := newContext(t)
	r := convert.NewRange[int32](0, 100)

	var out int32
	if code := convert.UnpackWith(ctx, r, ctx.NewInt32(50), &out); code != result.Ok || out != 50 {
		t.Fatalf("in-range = %d, %v", out, code)
	}
	if code := convert.UnpackWith(ctx, r, ctx.NewInt32(101), &out); code != result.InvalidValueRange {
		t.Fatalf("out-of-range = %v, want InvalidValueRange", code)
	}

	if _, code := convert.PackWith(ctx, r, int32(101)); code != result.InvalidValueRange {
		t.Fatalf("pack out-of-range = %v", code)
	}
	if v, code := convert.PackWith(ctx, r, int32(7)); code != result.Ok || v.Int32() != 7 {
		t.Fatalf("pack in-range = %v, %v", v, code)
	}
}

func TestConceptPanicsOnBadConcept(t *testing.T) {
	ctx := newContext(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	convert.PackWith(ctx, "not a concept", 1)
}

func TestPackReturn(t *testing.T) {
	ctx := newContext(t)

	// Host values pass through untouched.
	hv := ctx.NewString("x")
	got, code := convert.PackReturn(ctx, hv)
	if code != result.Ok || got != hv {
		t.Fatalf("pass-through = %v, %v", got, code)
	}

	if v, code := convert.PackReturn(ctx, convert.Null); code != result.Ok || v != ctx.Null() {
		t.Fatalf("Null sentinel = %v, %v", v, code)
	}
	if v, code := convert.PackReturn(ctx, convert.Undefined); code != result.Ok || v != ctx.Undefined() {
		t.Fatalf("Undefined sentinel = %v, %v", v, code)
	}

	v, code := convert.PackReturn(ctx, int32(5))
	if code != result.Ok || v.Int32() != 5 {
		t.Fatalf("native value = %v, %v", v, code)
	}
}

func TestUnpackAllWidths(t *testing.T) {
	ctx := newContext(t)
	v := ctx.NewInt32(42)

	var (
		i16 int16
		i32 int32
		i64 int64
		i   int
		u16 uint16
		u32 uint32
		u64 uint64
		u   uint
	)
	dsts := []any{&i16, &i32, &i64, &i, &u16, &u32, &u64, &u}
	for _, dst := range dsts {
		if code := convert.Unpack(ctx, v, dst); code != result.Ok {
			t.Fatalf("Unpack into %T = %v", dst, code)
		}
	}
	got := []int64{int64(i16), int64(i32), i64, int64(i), int64(u16), int64(u32), int64(u64), int64(u)}
	want := []int64{42, 42, 42, 42, 42, 42, 42, 42}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unpacked values mismatch (-want +got):\n%s", diff)
	}
}
