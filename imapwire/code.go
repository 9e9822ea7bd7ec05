package imapwire

// Code is a bracketed response code, e.g. "[UIDNEXT 4]" in
// "* OK [UIDNEXT 4] Predicted next UID".
type Code interface {
	isCode()
}

type CodeAlert struct{}

func (CodeAlert) isCode() {}

type CodeBadCharset struct {
	Allowed []Charset
}

func (CodeBadCharset) isCode() {}

type CodeCapability struct {
	Capabilities []Atom
}

func (CodeCapability) isCode() {}

type CodeParse struct{}

func (CodeParse) isCode() {}

type CodePermanentFlags struct {
	Flags []FlagPerm
}

func (CodePermanentFlags) isCode() {}

type CodeReadOnly struct{}

func (CodeReadOnly) isCode() {}

type CodeReadWrite struct{}

func (CodeReadWrite) isCode() {}

type CodeTryCreate struct{}

func (CodeTryCreate) isCode() {}

type CodeUIDNext struct{ Next uint32 }

func (CodeUIDNext) isCode() {}

type CodeUIDValidity struct{ Value uint32 }

func (CodeUIDValidity) isCode() {}

type CodeUnseen struct{ SeqNum uint32 }

func (CodeUnseen) isCode() {}

// CodeCompressionActive is RFC 4978 COMPRESS's success code.
type CodeCompressionActive struct{}

func (CodeCompressionActive) isCode() {}

// CodeOverQuota is RFC 9208's quota-exceeded code.
type CodeOverQuota struct{}

func (CodeOverQuota) isCode() {}

// CodeHighestModSeq is RFC 7162 CONDSTORE's code, carried because the
// teacher's SELECT/EXAMINE response path exposes it even though
// CONDSTORE itself is not a named extension of this codec.
type CodeHighestModSeq struct{ Value int64 }

func (CodeHighestModSeq) isCode() {}

// CodeMetadata is RFC 5464 METADATA's response code, one of
// LONGENTRIES(n), MAXSIZE(n), TOOMANY, or NOPRIVATE.
type CodeMetadata struct {
	Sub CodeMetadataSub
}

func (CodeMetadata) isCode() {}

type CodeMetadataSub interface{ isCodeMetadataSub() }

type MetadataLongEntries struct{ N uint32 }

func (MetadataLongEntries) isCodeMetadataSub() {}

type MetadataMaxSize struct{ N uint32 }

func (MetadataMaxSize) isCodeMetadataSub() {}

type MetadataTooMany struct{}

func (MetadataTooMany) isCodeMetadataSub() {}

type MetadataNoPrivate struct{}

func (MetadataNoPrivate) isCodeMetadataSub() {}

// CodeOther preserves an unrecognized response code's atom and free-text
// argument verbatim, maintaining round-trip equality even though
// semantic equality across case variants is left undefined.
type CodeOther struct {
	Atom AtomExt
	Arg  []byte // raw bytes following the atom, up to the closing ']'; may be empty
}

func (CodeOther) isCode() {}
