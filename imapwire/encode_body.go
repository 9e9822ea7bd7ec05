package imapwire

func (e *encoder) writeNStringStr(s NString) { e.writeNString(s) }

func (e *encoder) writeAddress(a Address) {
	e.writeList(4, func(i int) {
		switch i {
		case 0:
			e.writeNString(a.Name)
		case 1:
			e.writeNString(a.ADL)
		case 2:
			e.writeNString(a.Mailbox)
		case 3:
			e.writeNString(a.Host)
		}
	})
}

func (e *encoder) writeAddressList(addrs []Address) {
	if addrs == nil {
		e.writeNIL()
		return
	}
	e.writeList(len(addrs), func(i int) { e.writeAddress(addrs[i]) })
}

func (e *encoder) writeEnvelope(env Envelope) {
	e.writeList(10, func(i int) {
		switch i {
		case 0:
			e.writeNString(env.Date)
		case 1:
			e.writeNString(env.Subject)
		case 2:
			e.writeAddressList(env.From)
		case 3:
			e.writeAddressList(env.Sender)
		case 4:
			e.writeAddressList(env.ReplyTo)
		case 5:
			e.writeAddressList(env.To)
		case 6:
			e.writeAddressList(env.CC)
		case 7:
			e.writeAddressList(env.BCC)
		case 8:
			e.writeNString(env.InReplyTo)
		case 9:
			e.writeNString(env.MessageID)
		}
	})
}

func (e *encoder) writeBodyParams(params []BodyParam) {
	if len(params) == 0 {
		e.writeNIL()
		return
	}
	e.writeList(len(params)*2, func(i int) {
		p := params[i/2]
		if i%2 == 0 {
			e.writeNarrowestString([]byte(p.Attribute))
		} else {
			e.writeNarrowestString([]byte(p.Value))
		}
	})
}

func (e *encoder) writeBodyFields(f BodyFields) {
	e.writeBodyParams(f.Params)
	e.writeSpace()
	e.writeNString(f.ID)
	e.writeSpace()
	e.writeNString(f.Description)
	e.writeSpace()
	e.writeAString(f.Encoding)
	e.writeSpace()
	e.writeUint(uint64(f.Size))
}

func (e *encoder) writeBodyExtension(ext BodyExtension) {
	switch v := ext.(type) {
	case BodyExtNString:
		e.writeNString(v.Value)
	case BodyExtNumber:
		e.writeUint(uint64(v.Value))
	case BodyExtList:
		e.writeList(len(v.Values), func(i int) { e.writeBodyExtension(v.Values[i]) })
	default:
		panic("imapwire: unknown BodyExtension variant")
	}
}

func (e *encoder) writeLanguage(lang []string) {
	switch len(lang) {
	case 0:
		e.writeNIL()
	case 1:
		e.writeNarrowestString([]byte(lang[0]))
	default:
		e.writeList(len(lang), func(i int) { e.writeNarrowestString([]byte(lang[i])) })
	}
}

func (e *encoder) writeBodyDisposition(d *BodyDisposition) {
	if d == nil {
		e.writeNIL()
		return
	}
	e.writeList(2, func(i int) {
		if i == 0 {
			e.writeNarrowestString([]byte(d.Type))
		} else {
			e.writeBodyParams(d.Params)
		}
	})
}

func (e *encoder) writeExtSingle(ext *BodyExtSingle) {
	if ext == nil {
		return
	}
	e.writeSpace()
	e.writeNString(ext.MD5)
	e.writeSpace()
	e.writeBodyDisposition(ext.Disposition)
	e.writeSpace()
	e.writeLanguage(ext.Language)
	e.writeSpace()
	e.writeNString(ext.Location)
	for _, x := range ext.Extensions {
		e.writeSpace()
		e.writeBodyExtension(x)
	}
}

func (e *encoder) writeBodyStructure(b BodyStructure) {
	e.writeByte('(')
	switch v := b.(type) {
	case BodyBasic:
		e.writeNarrowestString([]byte(v.Type))
		e.writeSpace()
		e.writeNarrowestString([]byte(v.Subtype))
		e.writeSpace()
		e.writeBodyFields(v.Fields)
		e.writeExtSingle(v.Ext)
	case BodyText:
		e.writeString(`"TEXT"`)
		e.writeSpace()
		e.writeNarrowestString([]byte(v.Subtype))
		e.writeSpace()
		e.writeBodyFields(v.Fields)
		e.writeSpace()
		e.writeUint(uint64(v.Lines))
		e.writeExtSingle(v.Ext)
	case BodyMessage:
		e.writeString(`"MESSAGE" "RFC822"`)
		e.writeSpace()
		e.writeBodyFields(v.Fields)
		e.writeSpace()
		e.writeEnvelope(v.Envelope)
		e.writeSpace()
		e.writeBodyStructure(v.Body)
		e.writeSpace()
		e.writeUint(uint64(v.Lines))
		e.writeExtSingle(v.Ext)
	case BodyMultipart:
		for _, part := range v.Parts.Slice() {
			e.writeBodyStructure(part)
		}
		e.writeSpace()
		e.writeNarrowestString([]byte(v.Subtype))
		if v.Ext != nil {
			e.writeSpace()
			e.writeBodyParams(v.Ext.Params)
			e.writeSpace()
			e.writeBodyDisposition(v.Ext.Disposition)
			e.writeSpace()
			e.writeLanguage(v.Ext.Language)
			e.writeSpace()
			e.writeNString(v.Ext.Location)
			for _, x := range v.Ext.Extensions {
				e.writeSpace()
				e.writeBodyExtension(x)
			}
		}
	default:
		panic("imapwire: unknown BodyStructure variant")
	}
	e.writeByte(')')
}

func (e *encoder) writeCodeMetadataSub(s CodeMetadataSub) {
	switch v := s.(type) {
	case MetadataLongEntries:
		e.writeString("LONGENTRIES ")
		e.writeUint(uint64(v.N))
	case MetadataMaxSize:
		e.writeString("MAXSIZE ")
		e.writeUint(uint64(v.N))
	case MetadataTooMany:
		e.writeString("TOOMANY")
	case MetadataNoPrivate:
		e.writeString("NOPRIVATE")
	default:
		panic("imapwire: unknown CodeMetadataSub variant")
	}
}

func (e *encoder) writeCode(c Code) {
	if c == nil {
		return
	}
	e.writeByte('[')
	switch v := c.(type) {
	case CodeAlert:
		e.writeString("ALERT")
	case CodeBadCharset:
		e.writeString("BADCHARSET")
		if len(v.Allowed) > 0 {
			e.writeSpace()
			e.writeList(len(v.Allowed), func(i int) { e.writeCharset(v.Allowed[i]) })
		}
	case CodeCapability:
		e.writeString("CAPABILITY")
		for _, a := range v.Capabilities {
			e.writeSpace()
			e.writeAtom(a)
		}
	case CodeParse:
		e.writeString("PARSE")
	case CodePermanentFlags:
		e.writeString("PERMANENTFLAGS ")
		e.writeList(len(v.Flags), func(i int) { e.writeFlagPerm(v.Flags[i]) })
	case CodeReadOnly:
		e.writeString("READ-ONLY")
	case CodeReadWrite:
		e.writeString("READ-WRITE")
	case CodeTryCreate:
		e.writeString("TRYCREATE")
	case CodeUIDNext:
		e.writeString("UIDNEXT ")
		e.writeUint(uint64(v.Next))
	case CodeUIDValidity:
		e.writeString("UIDVALIDITY ")
		e.writeUint(uint64(v.Value))
	case CodeUnseen:
		e.writeString("UNSEEN ")
		e.writeUint(uint64(v.SeqNum))
	case CodeCompressionActive:
		e.writeString("COMPRESSIONACTIVE")
	case CodeOverQuota:
		e.writeString("OVERQUOTA")
	case CodeHighestModSeq:
		e.writeString("HIGHESTMODSEQ ")
		e.writeInt(v.Value)
	case CodeMetadata:
		e.writeString("METADATA ")
		e.writeCodeMetadataSub(v.Sub)
	case CodeOther:
		e.writeAtomExt(v.Atom)
		if len(v.Arg) > 0 {
			e.writeSpace()
			e.writeBytes(v.Arg)
		}
	default:
		panic("imapwire: unknown Code variant")
	}
	e.writeByte(']')
}
