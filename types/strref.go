package types

// String references wrap caller-owned character data together with an
// explicit length and encoding. They are not containers; the referenced data
// must stay alive for the duration of the call that consumes them. Data is
// never assumed to be null terminated.

// Latin1Ref references single-byte ISO 8859-1 encoded text.
type Latin1Ref struct {
	Data []byte
}

// UTF8Ref references UTF-8 encoded text.
type UTF8Ref struct {
	Data []byte
}

// UTF16Ref references UTF-16 code units.
type UTF16Ref struct {
	Data []uint16
}

// Latin1 wraps a Go string whose bytes are Latin-1 code points.
func Latin1(s string) Latin1Ref { return Latin1Ref{Data: []byte(s)} }

// UTF8 wraps a Go string as a UTF-8 reference.
func UTF8(s string) UTF8Ref { return UTF8Ref{Data: []byte(s)} }

// UTF16 wraps UTF-16 code units.
func UTF16(u []uint16) UTF16Ref { return UTF16Ref{Data: u} }

func (r Latin1Ref) Len() int { return len(r.Data) }
func (r UTF8Ref) Len() int   { return len(r.Data) }
func (r UTF16Ref) Len() int  { return len(r.Data) }
