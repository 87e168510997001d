package result

import (
	"strings"
	"testing"

	"github.com/njs-api/njs-api/types"
)

// Code values are wire-stable: hosts on the far side of a C boundary match
// on the numbers, not the names.
func TestCodeValues(t *testing.T) {
	tests := []struct {
		code Code
		want uint32
	}{
		{Ok, 0},
		{ThrowError, 1},
		{ThrowTypeError, 2},
		{ThrowRangeError, 3},
		{ThrowSyntaxError, 4},
		{ThrowReferenceError, 5},
		{InvalidState, 10},
		{InvalidHandle, 11},
		{OutOfMemory, 12},
		{InvalidValue, 13},
		{InvalidValueTypeID, 14},
		{InvalidValueTypeName, 15},
		{InvalidValueCustom, 16},
		{InvalidValueRange, 17},
		{UnsafeInt64Conversion, 18},
		{UnsafeUint64Conversion, 19},
		{InvalidArgumentsLength, 20},
		{InvalidConstructCall, 21},
		{AbstractConstructCall, 22},
		{Bypass, 23},
	}
	for _, tt := range tests {
		if uint32(tt.code) != tt.want {
			t.Errorf("%s = %d, want %d", tt.code, uint32(tt.code), tt.want)
		}
	}
}

func TestCodeBands(t *testing.T) {
	for _, c := range []Code{ThrowError, ThrowTypeError, ThrowReferenceError} {
		if !c.IsThrow() {
			t.Errorf("%s should be in the throw band", c)
		}
	}
	for _, c := range []Code{Ok, InvalidState, OutOfMemory, Bypass} {
		if c.IsThrow() {
			t.Errorf("%s should not be in the throw band", c)
		}
	}
	for _, c := range []Code{InvalidValue, InvalidValueTypeID, InvalidValueRange, UnsafeUint64Conversion} {
		if !c.IsValueError() {
			t.Errorf("%s should be in the value band", c)
		}
	}
	for _, c := range []Code{Ok, InvalidState, InvalidArgumentsLength, Bypass} {
		if c.IsValueError() {
			t.Errorf("%s should not be in the value band", c)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		prep     func(m *Mixin) Code
		wantKind ExceptionKind
		wantMsg  string
	}{
		{
			name:     "throw with message",
			prep:     func(m *Mixin) Code { return m.ThrowNew(ExceptionRangeError, "out of bounds") },
			wantKind: ExceptionRangeError,
			wantMsg:  "out of bounds",
		},
		{
			name:     "plain invalid value",
			prep:     func(m *Mixin) Code { return m.InvalidValue() },
			wantKind: ExceptionTypeError,
			wantMsg:  "Invalid value",
		},
		{
			name:     "invalid argument without index",
			prep:     func(m *Mixin) Code { return m.InvalidArgument() },
			wantKind: ExceptionTypeError,
			wantMsg:  "Invalid argument",
		},
		{
			name:     "invalid argument with index",
			prep:     func(m *Mixin) Code { return m.InvalidArgumentAt(2) },
			wantKind: ExceptionTypeError,
			wantMsg:  "Invalid argument [2]",
		},
		{
			name:     "expected type by id",
			prep:     func(m *Mixin) Code { return m.InvalidArgumentTypeID(0, types.ValueString) },
			wantKind: ExceptionTypeError,
			wantMsg:  "Invalid argument [0]: Expected Type 'String'",
		},
		{
			name:     "expected type by name",
			prep:     func(m *Mixin) Code { return m.InvalidValueTypeName("Widget") },
			wantKind: ExceptionTypeError,
			wantMsg:  "Invalid value: Expected Type 'Widget'",
		},
		{
			name:     "custom detail",
			prep:     func(m *Mixin) Code { return m.InvalidArgumentCustom(1, "must be even") },
			wantKind: ExceptionTypeError,
			wantMsg:  "Invalid argument [1]: must be even",
		},
		{
			name:     "arity exact",
			prep:     func(m *Mixin) Code { return m.InvalidArgumentsLengthExact(2) },
			wantKind: ExceptionTypeError,
			wantMsg:  "Invalid number of arguments: Required exactly 2",
		},
		{
			name:     "arity range",
			prep:     func(m *Mixin) Code { return m.InvalidArgumentsLengthRange(1, 3) },
			wantKind: ExceptionTypeError,
			wantMsg:  "Invalid number of arguments: Required between 1..3",
		},
		{
			name:     "arity unspecified",
			prep:     func(m *Mixin) Code { return m.InvalidArgumentsLength() },
			wantKind: ExceptionTypeError,
			wantMsg:  "Invalid number of arguments: (unspecified)",
		},
		{
			name:     "construct without new",
			prep:     func(m *Mixin) Code { return m.InvalidConstructCall("Widget") },
			wantKind: ExceptionTypeError,
			wantMsg:  "Cannot instantiate 'Widget': Use new operator",
		},
		{
			name:     "abstract construct",
			prep:     func(m *Mixin) Code { return m.AbstractConstructCall("Shape") },
			wantKind: ExceptionTypeError,
			wantMsg:  "Cannot instantiate 'Shape': Class is abstract",
		},
		{
			name:     "construct with no recorded class",
			prep:     func(m *Mixin) Code { m.Payload.Reset(); return InvalidConstructCall },
			wantKind: ExceptionTypeError,
			wantMsg:  "Cannot instantiate '(anonymous)': Use new operator",
		},
		{
			name:     "state errors have no template",
			prep:     func(m *Mixin) Code { return InvalidState },
			wantKind: ExceptionError,
			wantMsg:  "Unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Mixin
			m.Payload.Reset()
			code := tt.prep(&m)
			kind, msg := Format(code, &m.Payload)
			if kind != tt.wantKind || msg != tt.wantMsg {
				t.Fatalf("Format(%s) = (%d, %q), want (%d, %q)", code, kind, msg, tt.wantKind, tt.wantMsg)
			}
		})
	}
}

type recordingThrower struct {
	thrown int
	kind   ExceptionKind
	msg    string
}

func (r *recordingThrower) ThrowException(kind ExceptionKind, msg string) {
	r.thrown++
	r.kind = kind
	r.msg = msg
}

func TestReport(t *testing.T) {
	var m Mixin
	m.Payload.Reset()

	var th recordingThrower
	Report(&th, Ok, &m.Payload)
	Report(&th, Bypass, &m.Payload)
	if th.thrown != 0 {
		t.Fatalf("Ok/Bypass must not throw, got %d", th.thrown)
	}

	code := m.InvalidArgumentAt(0)
	Report(&th, code, &m.Payload)
	if th.thrown != 1 || th.kind != ExceptionTypeError || th.msg != "Invalid argument [0]" {
		t.Fatalf("Report = %d, (%d, %q)", th.thrown, th.kind, th.msg)
	}
}

func TestReportClampsMessage(t *testing.T) {
	var m Mixin
	m.Payload.Reset()
	code := m.ThrowNew(ExceptionError, strings.Repeat("é", MaxMessageSize))

	var th recordingThrower
	Report(&th, code, &m.Payload)
	if len(th.msg) > MaxMessageSize {
		t.Fatalf("message length %d exceeds %d", len(th.msg), MaxMessageSize)
	}
	// The clamp never splits a rune.
	if !strings.HasSuffix(th.msg, "é") {
		t.Fatalf("clamp split a rune: %q", th.msg[len(th.msg)-4:])
	}
}

func TestOfHelpers(t *testing.T) {
	if code := OfHandle(nil); code != InvalidHandle {
		t.Fatalf("OfHandle(nil) = %v", code)
	}

	var p *int
	if code := OfPtr(p); code != OutOfMemory {
		t.Fatalf("OfPtr(nil) = %v", code)
	}
	v := 1
	if code := OfPtr(&v); code != Ok {
		t.Fatalf("OfPtr(&v) = %v", code)
	}

	if m := Just(42); !m.IsOk() || m.Value != 42 {
		t.Fatalf("Just = %+v", m)
	}
	if m := Fail[int](InvalidState); m.IsOk() || OfMaybe(m) != InvalidState {
		t.Fatalf("Fail = %+v", m)
	}
}
