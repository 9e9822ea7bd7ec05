package imapwire

// EncodeCommand renders a full client command line, tag included,
// terminated by CRLF. The whole line is returned in one piece, Sync
// literals included: a caller sending a command with a Sync literal
// must itself stop after the "{N}\r\n" prefix and wait for the server's
// continuation before writing the literal's bytes.
func EncodeCommand(c Command) []byte {
	e := newEncoder()
	e.writeTag(c.Tag)
	e.writeSpace()
	e.writeCommandBody(c.Body)
	e.writeCRLF()
	return e.bytes()
}

func (e *encoder) writeSelectParameter(p SelectParameter) {
	switch v := p.(type) {
	case SelectParamCondstore:
		e.writeString("CONDSTORE")
	case SelectParamOther:
		e.writeAtomExt(v.Name)
		if len(v.Arg) > 0 {
			e.writeSpace()
			e.writeBytes(v.Arg)
		}
	default:
		panic("imapwire: unknown SelectParameter variant")
	}
}

func (e *encoder) writeEntryValues(entries []EntryValue) {
	e.writeList(len(entries)*2, func(i int) {
		ev := entries[i/2]
		if i%2 == 0 {
			e.writeAString(ev.Entry)
		} else {
			e.writeNString(ev.Value)
		}
	})
}

func (e *encoder) writeStatusItem(item StatusItem) {
	switch item {
	case StatusMessages:
		e.writeString("MESSAGES")
	case StatusRecent:
		e.writeString("RECENT")
	case StatusUIDNext:
		e.writeString("UIDNEXT")
	case StatusUIDValidity:
		e.writeString("UIDVALIDITY")
	case StatusUnseen:
		e.writeString("UNSEEN")
	case StatusHighestModSeq:
		e.writeString("HIGHESTMODSEQ")
	default:
		panic("imapwire: unknown StatusItem")
	}
}

func (e *encoder) writeCommandBody(body CommandBody) {
	switch v := body.(type) {
	case Capability:
		e.writeString("CAPABILITY")
	case Noop:
		e.writeString("NOOP")
	case Logout:
		e.writeString("LOGOUT")
	case StartTLS:
		e.writeString("STARTTLS")
	case Authenticate:
		e.writeString("AUTHENTICATE ")
		e.writeAtom(v.Mechanism)
		if v.InitialResponse != nil {
			e.writeSpace()
			e.writeSecretAsBase64Token(*v.InitialResponse)
		}
	case Login:
		e.writeString("LOGIN ")
		e.writeAString(v.Username)
		e.writeSpace()
		e.writeNarrowestString(v.Password.Declassify())
	case SelectExamine:
		if v.Examine {
			e.writeString("EXAMINE ")
		} else {
			e.writeString("SELECT ")
		}
		e.writeMailbox(v.Mailbox)
		if len(v.Parameters) > 0 {
			e.writeByte(' ')
			e.writeList(len(v.Parameters), func(i int) { e.writeSelectParameter(v.Parameters[i]) })
		}
	case Create:
		e.writeString("CREATE ")
		e.writeMailbox(v.Mailbox)
	case Delete:
		e.writeString("DELETE ")
		e.writeMailbox(v.Mailbox)
	case Rename:
		e.writeString("RENAME ")
		e.writeMailbox(v.From)
		e.writeSpace()
		e.writeMailbox(v.To)
	case Subscribe:
		e.writeString("SUBSCRIBE ")
		e.writeMailbox(v.Mailbox)
	case Unsubscribe:
		e.writeString("UNSUBSCRIBE ")
		e.writeMailbox(v.Mailbox)
	case List:
		e.writeString("LIST ")
		e.writeMailbox(v.Reference)
		e.writeSpace()
		e.writeBytes(v.Pattern.Bytes())
	case Lsub:
		e.writeString("LSUB ")
		e.writeMailbox(v.Reference)
		e.writeSpace()
		e.writeBytes(v.Pattern.Bytes())
	case StatusCmd:
		e.writeString("STATUS ")
		e.writeMailbox(v.Mailbox)
		e.writeByte(' ')
		e.writeList(len(v.Items), func(i int) { e.writeStatusItem(v.Items[i]) })
	case Append:
		e.writeString("APPEND ")
		e.writeMailbox(v.Mailbox)
		if len(v.Flags) > 0 {
			e.writeByte(' ')
			e.writeList(len(v.Flags), func(i int) { e.writeFlag(v.Flags[i]) })
		}
		if v.Date != nil {
			e.writeSpace()
			e.writeDateTime(*v.Date)
		}
		e.writeSpace()
		e.writeLiteralBytes(v.Message.Bytes(), v.Message.Mode())
	case Check:
		e.writeString("CHECK")
	case Close:
		e.writeString("CLOSE")
	case Expunge:
		if v.UIDSet != nil {
			e.writeString("UID EXPUNGE ")
			e.writeSequenceSet(*v.UIDSet)
		} else {
			e.writeString("EXPUNGE")
		}
	case Search:
		e.writeSearchCommand(v)
	case Fetch:
		e.writeFetchCommand(v)
	case Store:
		e.writeStoreCommand(v)
	case Copy:
		if v.UID {
			e.writeString("UID ")
		}
		e.writeString("COPY ")
		e.writeSequenceSet(v.Set)
		e.writeSpace()
		e.writeMailbox(v.Mailbox)
	case Move:
		if v.UID {
			e.writeString("UID ")
		}
		e.writeString("MOVE ")
		e.writeSequenceSet(v.Set)
		e.writeSpace()
		e.writeMailbox(v.Mailbox)
	case Idle:
		e.writeString("IDLE")
	case Enable:
		e.writeString("ENABLE")
		for _, a := range v.Capabilities {
			e.writeSpace()
			e.writeAtom(a)
		}
	case Compress:
		e.writeString("COMPRESS ")
		e.writeAtom(v.Algorithm)
	case GetQuota:
		e.writeString("GETQUOTA ")
		e.writeAString(v.Root)
	case GetQuotaRoot:
		e.writeString("GETQUOTAROOT ")
		e.writeMailbox(v.Mailbox)
	case SetQuota:
		e.writeString("SETQUOTA ")
		e.writeAString(v.Root)
		e.writeByte(' ')
		e.writeList(len(v.Resources)*2, func(i int) {
			r := v.Resources[i/2]
			if i%2 == 0 {
				e.writeAtom(r.Name)
			} else {
				e.writeUint(r.Limit)
			}
		})
	case GetMetadata:
		e.writeString("GETMETADATA ")
		e.writeGetMetadataOptions(v.Options)
		e.writeMailbox(v.Mailbox)
		e.writeByte(' ')
		if len(v.Entries) == 1 {
			e.writeAString(v.Entries[0])
		} else {
			e.writeList(len(v.Entries), func(i int) { e.writeAString(v.Entries[i]) })
		}
	case SetMetadata:
		e.writeString("SETMETADATA ")
		e.writeMailbox(v.Mailbox)
		e.writeSpace()
		e.writeEntryValues(v.Entries)
	case Thread:
		if v.UID {
			e.writeString("UID ")
		}
		e.writeString("THREAD ")
		e.writeAtom(v.Algorithm)
		e.writeSpace()
		e.writeCharset(v.Charset)
		e.writeSpace()
		e.writeSearchKey(v.Key)
	case ID:
		e.writeString("ID ")
		if v.Params == nil {
			e.writeNIL()
			break
		}
		e.writeList(len(v.Params), func(i int) { e.writeNString(v.Params[i]) })
	case Unselect:
		e.writeString("UNSELECT")
	default:
		panic("imapwire: unknown CommandBody variant")
	}
}

func (e *encoder) writeGetMetadataOptions(o GetMetadataOptions) {
	if o.MaxSize == nil && o.Depth == 0 {
		return
	}
	e.writeByte('(')
	first := true
	if o.MaxSize != nil {
		e.writeString("MAXSIZE ")
		e.writeUint(uint64(*o.MaxSize))
		first = false
	}
	if o.Depth != 0 {
		if !first {
			e.writeSpace()
		}
		e.writeString("DEPTH ")
		if o.Depth < 0 {
			e.writeString("infinity")
		} else {
			e.writeUint(uint64(o.Depth))
		}
	}
	e.writeString(") ")
}

func (e *encoder) writeSearchCommand(v Search) {
	if v.UID {
		e.writeString("UID ")
	}
	e.writeString("SEARCH ")
	if len(v.Return) > 0 {
		e.writeString("RETURN (")
		for i, r := range v.Return {
			if i > 0 {
				e.writeSpace()
			}
			switch r {
			case SearchReturnMin:
				e.writeString("MIN")
			case SearchReturnMax:
				e.writeString("MAX")
			case SearchReturnAll:
				e.writeString("ALL")
			case SearchReturnCount:
				e.writeString("COUNT")
			}
		}
		e.writeString(") ")
	}
	if v.Charset != nil {
		e.writeString("CHARSET ")
		e.writeCharset(*v.Charset)
		e.writeSpace()
	}
	e.writeSearchKey(v.Key)
}

func (e *encoder) writeFetchCommand(v Fetch) {
	if v.UID {
		e.writeString("UID ")
	}
	e.writeString("FETCH ")
	e.writeSequenceSet(v.Set)
	e.writeByte(' ')
	if len(v.Attributes) == 1 {
		if _, ok := v.Attributes[0].(FetchAttrMacro); ok {
			e.writeFetchAttribute(v.Attributes[0])
		} else {
			e.writeList(1, func(i int) { e.writeFetchAttribute(v.Attributes[i]) })
		}
	} else {
		e.writeList(len(v.Attributes), func(i int) { e.writeFetchAttribute(v.Attributes[i]) })
	}
	if v.ChangedSince != 0 {
		e.writeString(" (CHANGEDSINCE ")
		e.writeInt(v.ChangedSince)
		e.writeByte(')')
	}
}

func (e *encoder) writeStoreCommand(v Store) {
	if v.UID {
		e.writeString("UID ")
	}
	e.writeString("STORE ")
	e.writeSequenceSet(v.Set)
	if v.UnchangedSince != 0 {
		e.writeString(" (UNCHANGEDSINCE ")
		e.writeInt(v.UnchangedSince)
		e.writeByte(')')
	}
	e.writeSpace()
	switch v.Mode {
	case StoreAdd:
		e.writeByte('+')
	case StoreRemove:
		e.writeByte('-')
	}
	e.writeString("FLAGS")
	if v.Response == StoreSilent {
		e.writeString(".SILENT")
	}
	e.writeByte(' ')
	e.writeList(len(v.Flags), func(i int) { e.writeFlag(v.Flags[i]) })
}
