package imapwire

import "fmt"

// ValidationError is returned by a string type's validating constructor
// when the input bytes fail that type's lexical rule. It carries the
// offending byte and its offset so a caller can point at the exact
// violation.
type ValidationError struct {
	Type   string
	Reason string
	Byte   byte
	Offset int
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("imapwire: invalid %s: %s (byte %q at offset %d)", e.Type, e.Reason, e.Byte, e.Offset)
	}
	return fmt.Sprintf("imapwire: invalid %s: %s", e.Type, e.Reason)
}

func errInvalid(typ, reason string) error {
	return &ValidationError{Type: typ, Reason: reason, Offset: -1}
}

func errInvalidByte(typ, reason string, b byte, offset int) error {
	return &ValidationError{Type: typ, Reason: reason, Byte: b, Offset: offset}
}

// FailKind enumerates the sub-kinds of a Failed decode.
type FailKind int

const (
	FailOther FailKind = iota
	FailBadNumber
	FailBadBase64
	FailBadDateTime
	FailLiteralContainsNull
	FailRecursionLimitExceeded
	FailUnbalancedList
	FailBadSyntax
)

func (k FailKind) String() string {
	switch k {
	case FailBadNumber:
		return "BadNumber"
	case FailBadBase64:
		return "BadBase64"
	case FailBadDateTime:
		return "BadDateTime"
	case FailLiteralContainsNull:
		return "LiteralContainsNull"
	case FailRecursionLimitExceeded:
		return "RecursionLimitExceeded"
	case FailUnbalancedList:
		return "UnbalancedList"
	case FailBadSyntax:
		return "BadSyntax"
	default:
		return "Other"
	}
}

// DecodeErrorKind distinguishes the three streaming outcomes a decoder can report.
type DecodeErrorKind int

const (
	// Incomplete means feeding strictly more bytes may let decoding succeed.
	Incomplete DecodeErrorKind = iota
	// LiteralFound means the peer has announced a literal of Length bytes;
	// the caller must grow its buffer (and, if Mode is sync, first emit a
	// continuation request) before decoding can proceed.
	LiteralFound
	// Failed means the input cannot become valid by appending more bytes.
	Failed
)

func (k DecodeErrorKind) String() string {
	switch k {
	case Incomplete:
		return "Incomplete"
	case LiteralFound:
		return "LiteralFound"
	case Failed:
		return "Failed"
	default:
		return "DecodeErrorKind(?)"
	}
}

// DecodeError is returned by every L3 decode entry point.
type DecodeError struct {
	Kind DecodeErrorKind

	// Valid when Kind == LiteralFound.
	Length uint32
	Mode   LiteralMode
	Tag    *Tag // filled in by the command-level wrapper, nil for Response

	// Valid when Kind == Failed.
	FailKind FailKind
	Err      error

	// needed is a diagnostic slot for how many more bytes would let
	// decoding proceed when Kind == Incomplete, after imap-codec's
	// nom::Needed. No decoder in this package sets it, so it is always 0,
	// and the streaming contract does not depend on it.
	needed int
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case Incomplete:
		return "imapwire: incomplete"
	case LiteralFound:
		return fmt.Sprintf("imapwire: literal announced: {%d%s}", e.Length, modeSuffix(e.Mode))
	default:
		if e.Err != nil {
			return fmt.Sprintf("imapwire: failed (%s): %v", e.FailKind, e.Err)
		}
		return fmt.Sprintf("imapwire: failed (%s)", e.FailKind)
	}
}

func modeSuffix(m LiteralMode) string {
	if m == NonSync {
		return "+"
	}
	return ""
}

func incompleteErr() *DecodeError {
	return &DecodeError{Kind: Incomplete}
}

func failedErr(kind FailKind, err error) *DecodeError {
	return &DecodeError{Kind: Failed, FailKind: kind, Err: err}
}

func literalFoundErr(length uint32, mode LiteralMode) *DecodeError {
	return &DecodeError{Kind: LiteralFound, Length: length, Mode: mode}
}
