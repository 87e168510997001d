package convert

import (
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/result"
	"github.com/njs-api/njs-api/types"
)

// latin1Encoder substitutes code points above U+00FF instead of failing,
// matching how engines narrow strings to one-byte reads.
var latin1Encoder = encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())

// PackLatin1 builds a host string from Latin-1 bytes. The reference carries
// an explicit length; data is never assumed to be null terminated.
func PackLatin1(ctx engine.Context, ref types.Latin1Ref) (engine.Value, result.Code) {
	if ref.Len() > ctx.MaxStringLength() {
		return nil, result.InvalidValue
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(ref.Data)
	if err != nil {
		return nil, result.InvalidValue
	}
	return made(ctx.NewString(string(decoded)))
}

// PackUTF8 builds a host string from UTF-8 bytes.
func PackUTF8(ctx engine.Context, ref types.UTF8Ref) (engine.Value, result.Code) {
	s := string(ref.Data)
	if utf16Len(s) > ctx.MaxStringLength() {
		return nil, result.InvalidValue
	}
	return made(ctx.NewString(s))
}

// PackUTF16 builds a host string from UTF-16 code units.
func PackUTF16(ctx engine.Context, ref types.UTF16Ref) (engine.Value, result.Code) {
	if ref.Len() > ctx.MaxStringLength() {
		return nil, result.InvalidValue
	}
	return made(ctx.NewString(string(utf16.Decode(ref.Data))))
}

// ReadLatin1 reads a host string as Latin-1 bytes. Code points above U+00FF
// are substituted, never dropped, so the output length matches the string's
// code unit count for BMP-only text.
func ReadLatin1(in engine.Value) ([]byte, result.Code) {
	if code := result.OfHandle(in); code != result.Ok {
		return nil, code
	}
	if in.Type() != types.ValueString {
		return nil, result.InvalidValue
	}
	b, err := latin1Encoder.Bytes([]byte(in.String()))
	if err != nil {
		return nil, result.InvalidValue
	}
	return b, result.Ok
}

// ReadUTF8 reads a host string as UTF-8 bytes.
func ReadUTF8(in engine.Value) ([]byte, result.Code) {
	if code := result.OfHandle(in); code != result.Ok {
		return nil, code
	}
	if in.Type() != types.ValueString {
		return nil, result.InvalidValue
	}
	return []byte(in.String()), result.Ok
}

// ReadUTF16 reads a host string as UTF-16 code units.
func ReadUTF16(in engine.Value) ([]uint16, result.Code) {
	if code := result.OfHandle(in); code != result.Ok {
		return nil, code
	}
	if in.Type() != types.ValueString {
		return nil, result.InvalidValue
	}
	return utf16.Encode([]rune(in.String())), result.Ok
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
