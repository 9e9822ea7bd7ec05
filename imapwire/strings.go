package imapwire

import "bytes"

// debugAssertions gates the extra validity re-check the unvalidated
// constructors perform. It is off by default (matching the
// scanner, which trusts its own tokenization); flip it on in tests that
// want the parser's internal invariant double-checked.
var debugAssertions = false

func assertValid(typ string, b []byte, validate func([]byte) error) {
	if !debugAssertions {
		return
	}
	if err := validate(b); err != nil {
		panic("imapwire: internal invariant broken for " + typ + ": " + err.Error())
	}
}

// Atom is a maximal run of atom characters: visible 7-bit ASCII minus
// '(', ')', '{', space, controls, the list wildcards '%'/'*', the
// quoted-specials '"'/'\', and the response-special ']'.
type Atom struct{ b []byte }

func ValidateAtom(b []byte) error {
	if len(b) == 0 {
		return errInvalid("Atom", "must not be empty")
	}
	for i, c := range b {
		if !isAtomChar(c) {
			return errInvalidByte("Atom", "disallowed atom character", c, i)
		}
	}
	return nil
}

func NewAtom(b []byte) (Atom, error) {
	if err := ValidateAtom(b); err != nil {
		return Atom{}, err
	}
	return Atom{b: b}, nil
}

// unvalidatedAtom is used internally once the scanner has already
// checked the character class.
func unvalidatedAtom(b []byte) Atom {
	assertValid("Atom", b, ValidateAtom)
	return Atom{b: b}
}

func (a Atom) Bytes() []byte { return a.b }
func (a Atom) String() string { return string(a.b) }
func (a Atom) IntoOwned() Atom { return Atom{b: cloneBytes(a.b)} }

// AtomExt is an Atom that additionally permits ']', as used by response
// codes ("[" atom-or-atomext *(SP ...) "]").
type AtomExt struct{ b []byte }

func ValidateAtomExt(b []byte) error {
	if len(b) == 0 {
		return errInvalid("AtomExt", "must not be empty")
	}
	for i, c := range b {
		if !isAtomExtChar(c) {
			return errInvalidByte("AtomExt", "disallowed atom character", c, i)
		}
	}
	return nil
}

func NewAtomExt(b []byte) (AtomExt, error) {
	if err := ValidateAtomExt(b); err != nil {
		return AtomExt{}, err
	}
	return AtomExt{b: b}, nil
}

func unvalidatedAtomExt(b []byte) AtomExt {
	assertValid("AtomExt", b, ValidateAtomExt)
	return AtomExt{b: b}
}

func (a AtomExt) Bytes() []byte  { return a.b }
func (a AtomExt) String() string { return string(a.b) }
func (a AtomExt) IntoOwned() AtomExt { return AtomExt{b: cloneBytes(a.b)} }

// Quoted is a possibly-empty run of text characters, stored unescaped.
// The encoder re-escapes '"' and '\' on emit.
type Quoted struct{ b []byte }

func ValidateQuoted(b []byte) error {
	for i, c := range b {
		if !isTextChar(c) {
			return errInvalidByte("Quoted", "disallowed character in quoted string", c, i)
		}
		// Response-code text (the class used by Text) additionally bars
		// '[' and ']', but a bare Quoted string permits them: only Text
		// (below) excludes them.
		_ = i
	}
	return nil
}

func NewQuoted(b []byte) (Quoted, error) {
	if err := ValidateQuoted(b); err != nil {
		return Quoted{}, err
	}
	return Quoted{b: b}, nil
}

func unvalidatedQuoted(b []byte) Quoted {
	assertValid("Quoted", b, ValidateQuoted)
	return Quoted{b: b}
}

func (q Quoted) Bytes() []byte   { return q.b }
func (q Quoted) String() string  { return string(q.b) }
func (q Quoted) IntoOwned() Quoted { return Quoted{b: cloneBytes(q.b)} }

// LiteralMode distinguishes a synchronizing literal ({N}, requiring the
// sender to wait for a server continuation) from a non-synchronizing one
// ({N+}, LITERAL+/LITERAL-, sent immediately).
type LiteralMode int

const (
	Sync LiteralMode = iota
	NonSync
)

func (m LiteralMode) String() string {
	if m == NonSync {
		return "NonSync"
	}
	return "Sync"
}

// Literal is an arbitrary byte sequence with no NUL byte, carrying the
// wire mode it must be (or was) transmitted with.
type Literal struct {
	b    []byte
	mode LiteralMode
}

func ValidateLiteral(b []byte) error {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return errInvalidByte("Literal", "NUL byte not allowed in literal", 0, i)
	}
	return nil
}

func NewLiteral(b []byte, mode LiteralMode) (Literal, error) {
	if err := ValidateLiteral(b); err != nil {
		return Literal{}, err
	}
	return Literal{b: b, mode: mode}, nil
}

func unvalidatedLiteral(b []byte, mode LiteralMode) Literal {
	assertValid("Literal", b, ValidateLiteral)
	return Literal{b: b, mode: mode}
}

func (l Literal) Bytes() []byte      { return l.b }
func (l Literal) Mode() LiteralMode  { return l.mode }
func (l Literal) IntoOwned() Literal { return Literal{b: cloneBytes(l.b), mode: l.mode} }

// IString is the "string" production: Quoted or Literal.
type IString struct {
	literal bool
	quoted  Quoted
	lit     Literal
}

func IStringFromQuoted(q Quoted) IString { return IString{quoted: q} }
func IStringFromLiteral(l Literal) IString { return IString{literal: true, lit: l} }

func (s IString) IsLiteral() bool { return s.literal }
func (s IString) Quoted() (Quoted, bool) {
	if s.literal {
		return Quoted{}, false
	}
	return s.quoted, true
}
func (s IString) Literal() (Literal, bool) {
	if !s.literal {
		return Literal{}, false
	}
	return s.lit, true
}

func (s IString) Bytes() []byte {
	if s.literal {
		return s.lit.b
	}
	return s.quoted.b
}

func (s IString) IntoOwned() IString {
	if s.literal {
		return IStringFromLiteral(s.lit.IntoOwned())
	}
	return IStringFromQuoted(s.quoted.IntoOwned())
}

// NString is IString or nil (IMAP's NIL).
type NString struct {
	some bool
	val  IString
}

func NStringNil() NString                { return NString{} }
func NStringSome(s IString) NString       { return NString{some: true, val: s} }
func (n NString) IsNil() bool             { return !n.some }
func (n NString) Value() (IString, bool)  { return n.val, n.some }
func (n NString) Bytes() []byte {
	if !n.some {
		return nil
	}
	return n.val.Bytes()
}
func (n NString) IntoOwned() NString {
	if !n.some {
		return n
	}
	return NStringSome(n.val.IntoOwned())
}

// AString is AtomExt or IString (Quoted/Literal).
type AString struct {
	isAtom bool
	atom   AtomExt
	str    IString
}

func AStringFromAtom(a AtomExt) AString     { return AString{isAtom: true, atom: a} }
func AStringFromIString(s IString) AString  { return AString{str: s} }

func (a AString) IsAtom() bool { return a.isAtom }
func (a AString) Atom() (AtomExt, bool) {
	if !a.isAtom {
		return AtomExt{}, false
	}
	return a.atom, true
}
func (a AString) IString() (IString, bool) {
	if a.isAtom {
		return IString{}, false
	}
	return a.str, true
}
func (a AString) Bytes() []byte {
	if a.isAtom {
		return a.atom.b
	}
	return a.str.Bytes()
}
func (a AString) IntoOwned() AString {
	if a.isAtom {
		return AStringFromAtom(a.atom.IntoOwned())
	}
	return AStringFromIString(a.str.IntoOwned())
}

// Tag is a client-chosen command identifier: 1+ astring characters
// excluding '+' (so it can never be confused with a continuation marker).
type Tag struct{ b []byte }

func ValidateTag(b []byte) error {
	if len(b) == 0 {
		return errInvalid("Tag", "must not be empty")
	}
	for i, c := range b {
		if !isTagChar(c) {
			return errInvalidByte("Tag", "disallowed tag character", c, i)
		}
	}
	return nil
}

func NewTag(b []byte) (Tag, error) {
	if err := ValidateTag(b); err != nil {
		return Tag{}, err
	}
	return Tag{b: b}, nil
}

func unvalidatedTag(b []byte) Tag {
	assertValid("Tag", b, ValidateTag)
	return Tag{b: b}
}

func (t Tag) Bytes() []byte   { return t.b }
func (t Tag) String() string  { return string(t.b) }
func (t Tag) IntoOwned() Tag  { return Tag{b: cloneBytes(t.b)} }
func (t Tag) Equal(o Tag) bool { return bytes.Equal(t.b, o.b) }

// Text is 1+ text characters, additionally excluding '[' and ']' so it
// can never be confused with the start/end of a bracketed response code.
type Text struct{ b []byte }

func ValidateText(b []byte) error {
	if len(b) == 0 {
		return errInvalid("Text", "must not be empty")
	}
	for i, c := range b {
		if !isTextChar(c) {
			return errInvalidByte("Text", "disallowed character", c, i)
		}
		if c == '[' || c == ']' {
			return errInvalidByte("Text", "response-code bracket not allowed in free text", c, i)
		}
	}
	return nil
}

func NewText(b []byte) (Text, error) {
	if err := ValidateText(b); err != nil {
		return Text{}, err
	}
	return Text{b: b}, nil
}

func unvalidatedText(b []byte) Text {
	assertValid("Text", b, ValidateText)
	return Text{b: b}
}

func (t Text) Bytes() []byte  { return t.b }
func (t Text) String() string { return string(t.b) }
func (t Text) IntoOwned() Text { return Text{b: cloneBytes(t.b)} }

// QuotedChar is exactly one text character, or an escaped quoted-special
// ('"' or '\').
type QuotedChar struct{ c byte }

func NewQuotedChar(c byte) (QuotedChar, error) {
	if !isTextChar(c) && c != '"' && c != '\\' {
		return QuotedChar{}, errInvalidByte("QuotedChar", "disallowed character", c, 0)
	}
	return QuotedChar{c: c}, nil
}

func (q QuotedChar) Byte() byte { return q.c }

// Charset is Atom or Quoted.
type Charset struct {
	isAtom bool
	atom   Atom
	quoted Quoted
}

func CharsetFromAtom(a Atom) Charset    { return Charset{isAtom: true, atom: a} }
func CharsetFromQuoted(q Quoted) Charset { return Charset{quoted: q} }

func (c Charset) Bytes() []byte {
	if c.isAtom {
		return c.atom.b
	}
	return c.quoted.b
}
func (c Charset) String() string { return string(c.Bytes()) }

// ListCharString is the "list-mailbox" atom variant: like Atom but also
// permitting '%' and '*' (the list wildcards), used for LIST/LSUB globs.
type ListCharString struct{ b []byte }

func ValidateListCharString(b []byte) error {
	if len(b) == 0 {
		return errInvalid("ListCharString", "must not be empty")
	}
	for i, c := range b {
		if !isListChar(c) {
			return errInvalidByte("ListCharString", "disallowed list-char", c, i)
		}
	}
	return nil
}

func NewListCharString(b []byte) (ListCharString, error) {
	if err := ValidateListCharString(b); err != nil {
		return ListCharString{}, err
	}
	return ListCharString{b: b}, nil
}

func unvalidatedListCharString(b []byte) ListCharString {
	assertValid("ListCharString", b, ValidateListCharString)
	return ListCharString{b: b}
}

func (l ListCharString) Bytes() []byte { return l.b }

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
