package imapwire

import "fmt"

func upperBytesStr(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = upperByte(c)
	}
	return string(out)
}

// scanAtomUpper consumes one atom (dots included, per isAtomChar) and
// returns its upper-cased form, for keyword tokens like "RFC822.HEADER"
// or "BINARY.PEEK" that the lexical grammar cannot split from their base
// keyword without semantic knowledge. It stops before '[' so that a
// section such as "BODY[HEADER]" leaves its "[" for scanSection.
func (p *parser) scanAtomUpper() string {
	b := p.scanWhile(func(c byte) bool { return isAtomChar(c) && c != '[' })
	if len(b) == 0 {
		p.fail(FailBadSyntax, fmt.Errorf("expected atom"))
	}
	return upperBytesStr(b)
}

func (p *parser) scanPart() *Part {
	first := p.scanNumber()
	nums := []uint32{first}
	for {
		c, ok := p.peek()
		if !ok || c != '.' {
			break
		}
		// Only consume the '.' if what follows is another digit: the
		// section specifier (HEADER/TEXT/MIME/...) also starts with '.'.
		if p.pos+1 >= len(p.buf) {
			p.incomplete()
		}
		if p.buf[p.pos+1] < '0' || p.buf[p.pos+1] > '9' {
			break
		}
		p.advance(1)
		nums = append(nums, p.scanNumber())
	}
	part, err := NewPart(nums[0], nums[1:]...)
	if err != nil {
		p.fail(FailBadSyntax, err)
	}
	return &part
}

func (p *parser) scanHeaderList() []AString {
	p.expectByte('(')
	var out []AString
	if c, ok := p.peek(); ok && c == ')' {
		p.advance(1)
		return out
	}
	for {
		out = append(out, p.scanAString())
		c, ok := p.peek()
		if !ok {
			p.incomplete()
		}
		if c == ')' {
			p.advance(1)
			return out
		}
		p.expectSP()
	}
}

// scanSection parses "[" ... "]", assuming the attribute name (and any
// leading ".PEEK") was already consumed.
func (p *parser) scanSection() Section {
	p.expectByte('[')
	var s Section
	if c, ok := p.peek(); ok && c != ']' {
		if c >= '0' && c <= '9' {
			s.Part = p.scanPart()
			if c2, ok := p.peek(); ok && c2 == '.' {
				p.advance(1)
				s.Spec, s.Headers = p.scanSectionSpec()
			}
		} else {
			s.Spec, s.Headers = p.scanSectionSpec()
		}
	}
	p.expectByte(']')
	return s
}

func (p *parser) scanSectionSpec() (SectionSpec, []AString) {
	kw := p.scanAtomUpper()
	switch kw {
	case "HEADER":
		return SectionHeader, nil
	case "HEADER.FIELDS":
		p.expectSP()
		return SectionHeaderFields, p.scanHeaderList()
	case "HEADER.FIELDS.NOT":
		p.expectSP()
		return SectionHeaderFieldsNot, p.scanHeaderList()
	case "TEXT":
		return SectionText, nil
	case "MIME":
		return SectionMime, nil
	default:
		p.fail(FailBadSyntax, fmt.Errorf("unrecognized section specifier %q", kw))
		panic("unreachable")
	}
}

func (p *parser) scanPartial() *Partial {
	c, ok := p.peek()
	if !ok || c != '<' {
		return nil
	}
	p.advance(1)
	start := p.scanNumber()
	p.expectByte('.')
	length := p.scanNumber()
	p.expectByte('>')
	return &Partial{Start: start, Length: length}
}

// scanFetchAttribute parses one fetch-att. The atom's dots are part of
// its lexical token (isAtomChar permits '.'), so the whole dotted
// keyword is consumed up front and dispatched by exact match, rather
// than consumed piecewise; a following "[" section is scanned after it.
func (p *parser) scanFetchAttribute() FetchAttribute {
	kw := p.scanAtomUpper()
	switch kw {
	case "ALL", "FAST", "FULL":
		return FetchAttrMacro{Macro: FetchMacro(kw)}
	case "ENVELOPE":
		return FetchAttrEnvelope{}
	case "FLAGS":
		return FetchAttrFlags{}
	case "INTERNALDATE":
		return FetchAttrInternalDate{}
	case "RFC822":
		return FetchAttrRFC822{Part: RFC822Whole}
	case "RFC822.HEADER":
		return FetchAttrRFC822{Part: RFC822Header}
	case "RFC822.SIZE":
		return FetchAttrRFC822{Part: RFC822Size}
	case "RFC822.TEXT":
		return FetchAttrRFC822{Part: RFC822Text}
	case "BODYSTRUCTURE":
		return FetchAttrBodyStructure{}
	case "BODY", "BODY.PEEK":
		peek := kw == "BODY.PEEK"
		if c, ok := p.peek(); ok && c == '[' {
			sec := p.scanSection()
			partial := p.scanPartial()
			return FetchAttrBodySection{Peek: peek, Section: sec, Partial: partial}
		}
		return FetchAttrBody{}
	case "UID":
		return FetchAttrUID{}
	case "MODSEQ":
		return FetchAttrModSeq{}
	case "BINARY.SIZE":
		p.expectByte('[')
		var part *Part
		if c, ok := p.peek(); ok && c != ']' {
			part = p.scanPart()
		}
		p.expectByte(']')
		return FetchAttrBinarySize{Part: part}
	case "BINARY", "BINARY.PEEK":
		peek := kw == "BINARY.PEEK"
		p.expectByte('[')
		var part *Part
		if c, ok := p.peek(); ok && c != ']' {
			part = p.scanPart()
		}
		p.expectByte(']')
		partial := p.scanPartial()
		return FetchAttrBinarySection{Peek: peek, Part: part, Partial: partial}
	default:
		p.fail(FailBadSyntax, fmt.Errorf("unrecognized fetch attribute %q", kw))
		panic("unreachable")
	}
}

func (p *parser) scanFetchAttributeList() []FetchAttribute {
	if c, ok := p.peek(); ok && c != '(' {
		return []FetchAttribute{p.scanFetchAttribute()}
	}
	p.expectByte('(')
	var out []FetchAttribute
	if c, ok := p.peek(); ok && c == ')' {
		p.advance(1)
		return out
	}
	for {
		out = append(out, p.scanFetchAttribute())
		c, ok := p.peek()
		if !ok {
			p.incomplete()
		}
		if c == ')' {
			p.advance(1)
			return out
		}
		p.expectSP()
	}
}

func (p *parser) scanMessageDataItem() MessageDataItem {
	kw := p.scanAtomUpper()
	switch kw {
	case "FLAGS":
		p.expectSP()
		return MessageDataFlags{Flags: p.scanFlagList()}
	case "ENVELOPE":
		p.expectSP()
		return MessageDataEnvelope{Envelope: p.scanEnvelope()}
	case "INTERNALDATE":
		p.expectSP()
		return MessageDataInternalDate{When: p.scanDateTime()}
	case "RFC822.SIZE":
		p.expectSP()
		return MessageDataRFC822Size{Size: p.scanNumber()}
	case "UID":
		p.expectSP()
		return MessageDataUID{UID: p.scanNumber()}
	case "MODSEQ":
		p.expectSP()
		p.expectByte('(')
		v := p.scanNumber64()
		p.expectByte(')')
		return MessageDataModSeq{ModSeq: v}
	case "BODYSTRUCTURE":
		p.expectSP()
		return MessageDataBody{Structure: p.scanBodyStructure(), Extended: true}
	case "BODY":
		if c, ok := p.peek(); ok && c == '[' {
			sec := p.scanSection()
			var origin *uint32
			if c2, ok := p.peek(); ok && c2 == '<' {
				p.advance(1)
				n := p.scanNumber()
				p.expectByte('>')
				origin = &n
			}
			p.expectSP()
			return MessageDataBodySection{Section: sec, Origin: origin, Data: p.scanNString()}
		}
		p.expectSP()
		return MessageDataBody{Structure: p.scanBodyStructure(), Extended: false}
	case "BINARY.SIZE":
		p.expectByte('[')
		var part *Part
		if c, ok := p.peek(); ok && c != ']' {
			part = p.scanPart()
		}
		p.expectByte(']')
		p.expectSP()
		return MessageDataBinarySize{Part: part, Size: p.scanNumber()}
	case "BINARY":
		p.expectByte('[')
		var part *Part
		if c, ok := p.peek(); ok && c != ']' {
			part = p.scanPart()
		}
		p.expectByte(']')
		p.expectSP()
		if p.tryKeyword("NIL") {
			return MessageDataBinarySection{Part: part, Data: nil}
		}
		b, _ := p.scanLiteralBytes()
		return MessageDataBinarySection{Part: part, Data: b}
	default:
		p.fail(FailBadSyntax, fmt.Errorf("unrecognized fetch response item %q", kw))
		panic("unreachable")
	}
}
