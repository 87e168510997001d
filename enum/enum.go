package enum

import (
	"fmt"
	"strings"

	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/result"
	"github.com/njs-api/njs-api/safenum"
	"github.com/njs-api/njs-api/types"
)

const (
	// MaxTokenLength bounds a single token. Longer parse inputs fail
	// immediately without scanning the table.
	MaxTokenLength = 64

	// AltMarker prefixes a token that is an alternate spelling of the
	// previous value.
	AltMarker = '@'

	// Separator joins tokens in the data blob.
	Separator = "\x00"
)

// Enum is an immutable enumeration table. Build instances once at module
// initialization with New.
type Enum struct {
	start  int
	end    int
	tokens []string
}

// New builds an enumeration covering [start, end] from a null-separated
// token blob. The number of non-alternate tokens must equal end-start+1;
// a mismatch is a definition mistake and panics.
func New(start, end int, data string) *Enum {
	e := &Enum{
		start:  start,
		end:    end,
		tokens: strings.Split(data, Separator),
	}

	count := 0
	for _, tok := range e.tokens {
		if tok == "" {
			panic("enum: empty token in data blob")
		}
		if len(tok) > MaxTokenLength {
			panic(fmt.Sprintf("enum: token %q exceeds %d bytes", tok, MaxTokenLength))
		}
		if tok[0] == AltMarker {
			if count == 0 {
				panic("enum: alternate token before first value")
			}
			continue
		}
		count++
	}
	if count != end-start+1 {
		panic(fmt.Sprintf("enum: %d tokens for range [%d, %d]", count, start, end))
	}
	return e
}

// Start returns the first enumerator value.
func (e *Enum) Start() int { return e.start }

// End returns the last enumerator value.
func (e *Enum) End() int { return e.end }

// Stringify returns the primary token for a zero-based index, skipping
// alternate spellings. Out-of-range indexes report not found.
func (e *Enum) Stringify(index int) (string, bool) {
	if index < 0 {
		return "", false
	}
	i := 0
	for _, tok := range e.tokens {
		if tok[0] == AltMarker {
			continue
		}
		if i == index {
			return tok, true
		}
		i++
	}
	return "", false
}

// Parse scans the table for a token matching in and returns its zero-based
// index. Alternate spellings resolve to the index of their primary token.
func (e *Enum) Parse(in string) (int, bool) {
	if len(in) == 0 || len(in) > MaxTokenLength {
		return 0, false
	}
	index := -1
	for _, tok := range e.tokens {
		alt := tok[0] == AltMarker
		if alt {
			tok = tok[1:]
		} else {
			index++
		}
		if matchToken(tok, in) {
			return index, true
		}
	}
	return 0, false
}

// matchToken compares a stored token against input, skipping ignorable
// characters on the token side so both spellings match.
func matchToken(tok, in string) bool {
	ti, ii := 0, 0
	for ii < len(in) {
		if ti >= len(tok) {
			return false
		}
		switch {
		case tok[ti] == in[ii]:
			ti++
			ii++
		case ignorable(tok[ti]):
			ti++
		default:
			return false
		}
	}
	return ti == len(tok)
}

func ignorable(c byte) bool { return c == '-' }

// Serialize converts a native enumerator value to a host string. Implements
// the conversion engine's serializer concept.
func (e *Enum) Serialize(ctx engine.Context, in any) (engine.Value, result.Code) {
	v, ok := toInt(in)
	if !ok {
		return nil, result.InvalidValue
	}
	tok, found := e.Stringify(int(v) - e.start)
	if !found {
		return nil, result.InvalidValue
	}
	hv := ctx.NewString(tok)
	if code := result.OfHandle(hv); code != result.Ok {
		return nil, code
	}
	return hv, result.Ok
}

// Deserialize converts a host string back to the native enumerator value.
func (e *Enum) Deserialize(ctx engine.Context, in engine.Value, out any) result.Code {
	if code := result.OfHandle(in); code != result.Ok {
		return code
	}
	if in.Type() != types.ValueString {
		return result.InvalidValue
	}
	if in.StringLen() > MaxTokenLength {
		return result.InvalidValue
	}

	index, found := e.Parse(in.String())
	if !found {
		return result.InvalidValue
	}
	return assignInt(out, int64(index+e.start))
}

func toInt(in any) (int64, bool) {
	switch v := in.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	default:
		return 0, false
	}
}

func assignInt(out any, v int64) result.Code {
	switch dst := out.(type) {
	case *int:
		return assign(dst, v)
	case *int8:
		return assign(dst, v)
	case *int16:
		return assign(dst, v)
	case *int32:
		return assign(dst, v)
	case *int64:
		*dst = v
		return result.Ok
	case *uint8:
		return assign(dst, v)
	case *uint16:
		return assign(dst, v)
	case *uint32:
		return assign(dst, v)
	default:
		return result.InvalidValue
	}
}

func assign[T safenum.Integer](dst *T, v int64) result.Code {
	narrowed, code := safenum.Cast[T](v)
	if code != result.Ok {
		return code
	}
	*dst = narrowed
	return result.Ok
}
