package imapwire

// Part is a non-empty dotted path of positive part numbers addressing a
// MIME sub-part, e.g. "1.2.3" in "BODY[1.2.3]".
type Part struct {
	nums Vec1[uint32]
}

func NewPart(first uint32, rest ...uint32) (Part, error) {
	if first == 0 {
		return Part{}, errInvalid("Part", "part numbers are 1-indexed")
	}
	for _, n := range rest {
		if n == 0 {
			return Part{}, errInvalid("Part", "part numbers are 1-indexed")
		}
	}
	return Part{nums: NewVec1(first, rest...)}, nil
}

func (p Part) Numbers() []uint32 { return p.nums.Slice() }

// SectionSpec names the kind of a BODY[...] section specifier.
type SectionSpec int

const (
	SectionNone SectionSpec = iota
	SectionHeader
	SectionHeaderFields
	SectionHeaderFieldsNot
	SectionText
	SectionMime
)

// Section is a FETCH BODY[...] addressing value: an optional Part path
// plus an optional specifier, with a header-field-name list when the
// specifier is HEADER.FIELDS[.NOT].
type Section struct {
	Part    *Part
	Spec    SectionSpec
	Headers []AString // only meaningful for SectionHeaderFields(Not)
}

// Partial is a FETCH/BODY partial-range modifier: "<start.length>".
type Partial struct {
	Start  uint32
	Length uint32
}

// FetchAttribute is a single requested FETCH data item on the command
// side (FETCH/UID FETCH's fetch-att).
type FetchAttribute interface{ isFetchAttribute() }

type FetchMacro string

const (
	FetchMacroAll  FetchMacro = "ALL"
	FetchMacroFast FetchMacro = "FAST"
	FetchMacroFull FetchMacro = "FULL"
)

type FetchAttrMacro struct{ Macro FetchMacro }

func (FetchAttrMacro) isFetchAttribute() {}

type FetchAttrEnvelope struct{}

func (FetchAttrEnvelope) isFetchAttribute() {}

type FetchAttrFlags struct{}

func (FetchAttrFlags) isFetchAttribute() {}

type FetchAttrInternalDate struct{}

func (FetchAttrInternalDate) isFetchAttribute() {}

type FetchAttrRFC822 struct{ Part RFC822Part }

func (FetchAttrRFC822) isFetchAttribute() {}

type RFC822Part int

const (
	RFC822Whole RFC822Part = iota
	RFC822Header
	RFC822Size
	RFC822Text
)

type FetchAttrBody struct{} // bare BODY, equivalent to BODYSTRUCTURE without extension data

func (FetchAttrBody) isFetchAttribute() {}

type FetchAttrBodyStructure struct{}

func (FetchAttrBodyStructure) isFetchAttribute() {}

type FetchAttrBodySection struct {
	Peek    bool
	Section Section
	Partial *Partial
}

func (FetchAttrBodySection) isFetchAttribute() {}

type FetchAttrUID struct{}

func (FetchAttrUID) isFetchAttribute() {}

// FetchAttrModSeq is RFC 7162 CONDSTORE's MODSEQ fetch item, restored
// because FetchItemType enumerates it even outside
// the named extension list.
type FetchAttrModSeq struct{}

func (FetchAttrModSeq) isFetchAttribute() {}

// FetchAttrBinarySection is RFC 3516 BINARY's BINARY[<part>] / BINARY.PEEK.
type FetchAttrBinarySection struct {
	Peek    bool
	Part    *Part
	Partial *Partial
}

func (FetchAttrBinarySection) isFetchAttribute() {}

type FetchAttrBinarySize struct{ Part *Part }

func (FetchAttrBinarySize) isFetchAttribute() {}

// MessageDataItem is a single item inside an untagged FETCH response
// (the response-side twin of FetchAttribute).
type MessageDataItem interface{ isMessageDataItem() }

type MessageDataFlags struct{ Flags []Flag }

func (MessageDataFlags) isMessageDataItem() {}

type MessageDataEnvelope struct{ Envelope Envelope }

func (MessageDataEnvelope) isMessageDataItem() {}

type MessageDataInternalDate struct{ When DateTime }

func (MessageDataInternalDate) isMessageDataItem() {}

type MessageDataRFC822Size struct{ Size uint32 }

func (MessageDataRFC822Size) isMessageDataItem() {}

type MessageDataUID struct{ UID uint32 }

func (MessageDataUID) isMessageDataItem() {}

type MessageDataModSeq struct{ ModSeq int64 }

func (MessageDataModSeq) isMessageDataItem() {}

type MessageDataBody struct {
	Structure BodyStructure
	Extended  bool // true for BODYSTRUCTURE, false for bare BODY
}

func (MessageDataBody) isMessageDataItem() {}

type MessageDataBodySection struct {
	Section Section
	Origin  *uint32 // partial-origin, present only when a <start> was requested
	Data    NString
}

func (MessageDataBodySection) isMessageDataItem() {}

type MessageDataBinarySection struct {
	Part *Part
	Data []byte
}

func (MessageDataBinarySection) isMessageDataItem() {}

type MessageDataBinarySize struct {
	Part *Part
	Size uint32
}

func (MessageDataBinarySize) isMessageDataItem() {}
