package imapwire

func (e *encoder) writePart(p *Part) {
	if p == nil {
		return
	}
	nums := p.Numbers()
	for i, n := range nums {
		if i > 0 {
			e.writeByte('.')
		}
		e.writeUint(uint64(n))
	}
}

func (e *encoder) writeSection(s Section) {
	e.writeByte('[')
	wrote := false
	if s.Part != nil {
		e.writePart(s.Part)
		wrote = true
	}
	switch s.Spec {
	case SectionHeader:
		if wrote {
			e.writeByte('.')
		}
		e.writeString("HEADER")
	case SectionHeaderFields:
		if wrote {
			e.writeByte('.')
		}
		e.writeString("HEADER.FIELDS (")
		for i, h := range s.Headers {
			if i > 0 {
				e.writeSpace()
			}
			e.writeAString(h)
		}
		e.writeByte(')')
	case SectionHeaderFieldsNot:
		if wrote {
			e.writeByte('.')
		}
		e.writeString("HEADER.FIELDS.NOT (")
		for i, h := range s.Headers {
			if i > 0 {
				e.writeSpace()
			}
			e.writeAString(h)
		}
		e.writeByte(')')
	case SectionText:
		if wrote {
			e.writeByte('.')
		}
		e.writeString("TEXT")
	case SectionMime:
		if wrote {
			e.writeByte('.')
		}
		e.writeString("MIME")
	}
	e.writeByte(']')
}

func (e *encoder) writePartial(p *Partial) {
	if p == nil {
		return
	}
	e.writeByte('<')
	e.writeUint(uint64(p.Start))
	e.writeByte('.')
	e.writeUint(uint64(p.Length))
	e.writeByte('>')
}

func (e *encoder) writeFetchAttribute(a FetchAttribute) {
	switch v := a.(type) {
	case FetchAttrMacro:
		e.writeString(string(v.Macro))
	case FetchAttrEnvelope:
		e.writeString("ENVELOPE")
	case FetchAttrFlags:
		e.writeString("FLAGS")
	case FetchAttrInternalDate:
		e.writeString("INTERNALDATE")
	case FetchAttrRFC822:
		e.writeString("RFC822")
		switch v.Part {
		case RFC822Header:
			e.writeString(".HEADER")
		case RFC822Size:
			e.writeString(".SIZE")
		case RFC822Text:
			e.writeString(".TEXT")
		}
	case FetchAttrBody:
		e.writeString("BODY")
	case FetchAttrBodyStructure:
		e.writeString("BODYSTRUCTURE")
	case FetchAttrBodySection:
		e.writeString("BODY")
		if v.Peek {
			e.writeString(".PEEK")
		}
		e.writeSection(v.Section)
		e.writePartial(v.Partial)
	case FetchAttrUID:
		e.writeString("UID")
	case FetchAttrModSeq:
		e.writeString("MODSEQ")
	case FetchAttrBinarySection:
		e.writeString("BINARY")
		if v.Peek {
			e.writeString(".PEEK")
		}
		e.writeByte('[')
		e.writePart(v.Part)
		e.writeByte(']')
		e.writePartial(v.Partial)
	case FetchAttrBinarySize:
		e.writeString("BINARY.SIZE[")
		e.writePart(v.Part)
		e.writeByte(']')
	default:
		panic("imapwire: unknown FetchAttribute variant")
	}
}

func (e *encoder) writeMessageDataItem(item MessageDataItem) {
	switch v := item.(type) {
	case MessageDataFlags:
		e.writeString("FLAGS ")
		e.writeList(len(v.Flags), func(i int) { e.writeFlag(v.Flags[i]) })
	case MessageDataEnvelope:
		e.writeString("ENVELOPE ")
		e.writeEnvelope(v.Envelope)
	case MessageDataInternalDate:
		e.writeString("INTERNALDATE ")
		e.writeDateTime(v.When)
	case MessageDataRFC822Size:
		e.writeString("RFC822.SIZE ")
		e.writeUint(uint64(v.Size))
	case MessageDataUID:
		e.writeString("UID ")
		e.writeUint(uint64(v.UID))
	case MessageDataModSeq:
		e.writeString("MODSEQ (")
		e.writeInt(v.ModSeq)
		e.writeByte(')')
	case MessageDataBody:
		if v.Extended {
			e.writeString("BODYSTRUCTURE ")
		} else {
			e.writeString("BODY ")
		}
		e.writeBodyStructure(v.Structure)
	case MessageDataBodySection:
		e.writeString("BODY")
		e.writeSection(v.Section)
		if v.Origin != nil {
			e.writeByte('<')
			e.writeUint(uint64(*v.Origin))
			e.writeByte('>')
		}
		e.writeSpace()
		e.writeNString(v.Data)
	case MessageDataBinarySection:
		e.writeString("BINARY[")
		e.writePart(v.Part)
		e.writeString("] ")
		if v.Data == nil {
			e.writeNIL()
		} else {
			e.writeLiteralBytes(v.Data, Sync)
		}
	case MessageDataBinarySize:
		e.writeString("BINARY.SIZE[")
		e.writePart(v.Part)
		e.writeString("] ")
		e.writeUint(uint64(v.Size))
	default:
		panic("imapwire: unknown MessageDataItem variant")
	}
}
