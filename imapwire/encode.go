package imapwire

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
)

// encoder accumulates wire bytes for a single AST value. Every AST type's
// encode method is total: construction-time validation already ruled out
// anything encode could fail on.
type encoder struct {
	buf bytes.Buffer
}

func newEncoder() *encoder { return &encoder{} }

func (e *encoder) bytes() []byte { return e.buf.Bytes() }

func (e *encoder) writeByte(b byte)      { e.buf.WriteByte(b) }
func (e *encoder) writeString(s string)  { e.buf.WriteString(s) }
func (e *encoder) writeBytes(b []byte)   { e.buf.Write(b) }
func (e *encoder) writeSpace()           { e.buf.WriteByte(' ') }
func (e *encoder) writeCRLF()            { e.buf.WriteString("\r\n") }
func (e *encoder) writeUint(v uint64)    { e.buf.WriteString(strconv.FormatUint(v, 10)) }
func (e *encoder) writeInt(v int64)      { e.buf.WriteString(strconv.FormatInt(v, 10)) }

func (e *encoder) writeNIL() { e.buf.WriteString("NIL") }

func (e *encoder) writeList(n int, each func(i int)) {
	e.writeByte('(')
	for i := 0; i < n; i++ {
		if i > 0 {
			e.writeSpace()
		}
		each(i)
	}
	e.writeByte(')')
}

// writeQuotedBytes escapes '"' and '\' and wraps in double quotes.
func (e *encoder) writeQuotedBytes(b []byte) {
	e.writeByte('"')
	for _, c := range b {
		if c == '"' || c == '\\' {
			e.writeByte('\\')
		}
		e.writeByte(c)
	}
	e.writeByte('"')
}

func (e *encoder) writeLiteralBytes(b []byte, mode LiteralMode) {
	e.writeByte('{')
	e.writeUint(uint64(len(b)))
	if mode == NonSync {
		e.writeByte('+')
	}
	e.writeByte('}')
	e.writeCRLF()
	e.writeBytes(b)
}

func (e *encoder) writeAtom(a Atom)       { e.writeBytes(a.b) }
func (e *encoder) writeAtomExt(a AtomExt) { e.writeBytes(a.b) }
func (e *encoder) writeTag(t Tag)         { e.writeBytes(t.b) }
func (e *encoder) writeText(t Text)       { e.writeBytes(t.b) }
func (e *encoder) writeCharset(c Charset) {
	if c.isAtom {
		e.writeAtom(c.atom)
	} else {
		e.writeQuotedBytes(c.quoted.b)
	}
}

func (e *encoder) writeIString(s IString) {
	if lit, ok := s.Literal(); ok {
		e.writeLiteralBytes(lit.b, lit.mode)
		return
	}
	q, _ := s.Quoted()
	e.writeQuotedBytes(q.b)
}

func (e *encoder) writeNString(n NString) {
	if n.IsNil() {
		e.writeNIL()
		return
	}
	v, _ := n.Value()
	e.writeIString(v)
}

// writeAString emits the form the AString holds: its atom, or its
// IString's quoted or literal form. It does not re-derive a narrower form
// from the bytes; writeNarrowestString does that.
func (e *encoder) writeAString(a AString) {
	if at, ok := a.Atom(); ok {
		e.writeAtomExt(at)
		return
	}
	s, _ := a.IString()
	e.writeIString(s)
}

// writeNarrowestString re-derives the narrowest form from raw bytes,
// used by response encoders that hold plain []byte/string rather than a
// validated AString (e.g. envelope fields decoded off the wire).
func (e *encoder) writeNarrowestString(b []byte) {
	if err := ValidateAtomExt(b); err == nil {
		e.writeBytes(b)
		return
	}
	if err := ValidateQuoted(b); err == nil {
		e.writeQuotedBytes(b)
		return
	}
	e.writeLiteralBytes(b, Sync)
}

func (e *encoder) writeMailbox(m Mailbox) {
	if m.inbox {
		e.writeString("INBOX")
		return
	}
	// The stored AString is written as is; no modified UTF-7 encoding is
	// applied here (DecodedName decodes it on the way out).
	e.writeAString(m.other)
}

func (e *encoder) writeFlag(f Flag)         { e.writeString(f.String()) }
func (e *encoder) writeFlagPerm(f FlagPerm) { e.writeString(f.String()) }

func (e *encoder) writeSequenceSet(s SequenceSet) {
	seqs := s.Sequences()
	for i, seq := range seqs {
		if i > 0 {
			e.writeByte(',')
		}
		e.writeSequence(seq)
	}
}

func (e *encoder) writeSeqOrUid(v SeqOrUid) {
	if v.IsAsterisk() {
		e.writeByte('*')
		return
	}
	n, _ := v.Value()
	e.writeUint(uint64(n))
}

func (e *encoder) writeSequence(s Sequence) {
	if from, to, ok := s.Range(); ok {
		e.writeSeqOrUid(from)
		e.writeByte(':')
		e.writeSeqOrUid(to)
		return
	}
	v, _ := s.Single()
	e.writeSeqOrUid(v)
}

func (e *encoder) writeNaiveDate(d NaiveDate) {
	// day-month-year, zero-padded to two digits for the day.
	fmt.Fprintf(&e.buf, "%02d-%s-%04d", d.Day(), monthAbbrev[d.Month()-1], d.Year())
}

func (e *encoder) writeDateTime(dt DateTime) {
	e.writeByte('"')
	fmt.Fprintf(&e.buf, "%2d-%s-%04d %02d:%02d:%02d %+03d%02d",
		dt.Date().Day(), monthAbbrev[dt.Date().Month()-1], dt.Date().Year(),
		dt.Hour(), dt.Minute(), dt.Second(),
		dt.OffsetMinutes()/60, abs(dt.OffsetMinutes()%60))
	e.writeByte('"')
}

// writeSecretAsBase64Token emits a SASL-IR initial response (RFC 4959):
// a zero-length response is the single character "=", anything else is
// standard base64 with padding.
func (e *encoder) writeSecretAsBase64Token(s Secret) {
	raw := s.Declassify()
	if len(raw) == 0 {
		e.writeByte('=')
		return
	}
	e.writeString(base64.StdEncoding.EncodeToString(raw))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
