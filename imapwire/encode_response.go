package imapwire

// EncodeGreeting renders the server's opening line.
func EncodeGreeting(g Greeting) []byte {
	e := newEncoder()
	e.writeString("* ")
	switch g.Kind {
	case GreetingOK:
		e.writeString("OK")
	case GreetingPreAuth:
		e.writeString("PREAUTH")
	case GreetingBye:
		e.writeString("BYE")
	}
	if g.Code != nil {
		e.writeSpace()
		e.writeCode(g.Code)
	}
	e.writeSpace()
	e.writeText(g.Text)
	e.writeCRLF()
	return e.bytes()
}

// EncodeResponse renders any server response line: a status, a data
// response, or a continuation request.
func EncodeResponse(r Response) []byte {
	e := newEncoder()
	switch v := r.(type) {
	case Status:
		e.writeStatus(v)
	case dataWrapper:
		e.writeString("* ")
		e.writeData(v.Data)
		e.writeCRLF()
	case continuationWrapper:
		e.writeContinuation(v.Continuation)
		e.writeCRLF()
	default:
		panic("imapwire: unknown Response variant")
	}
	return e.bytes()
}

func (e *encoder) writeStatus(s Status) {
	if s.Tag != nil {
		e.writeTag(*s.Tag)
	} else {
		e.writeByte('*')
	}
	e.writeSpace()
	switch s.Kind {
	case StatusOK:
		e.writeString("OK")
	case StatusNO:
		e.writeString("NO")
	case StatusBAD:
		e.writeString("BAD")
	case StatusBYE:
		e.writeString("BYE")
	case StatusPreAuth:
		e.writeString("PREAUTH")
	}
	if s.Code != nil {
		e.writeSpace()
		e.writeCode(s.Code)
	}
	e.writeSpace()
	e.writeText(s.Text)
	e.writeCRLF()
}

func (e *encoder) writeMailboxAttrs(attrs []MailboxAttr) {
	e.writeList(len(attrs), func(i int) { e.writeString(string(attrs[i])) })
}

func (e *encoder) writeDelimiter(d byte) {
	if d == 0 {
		e.writeNIL()
		return
	}
	e.writeQuotedBytes([]byte{d})
}

func (e *encoder) writeThreadNode(n ThreadNode) {
	e.writeUint(uint64(n.Number))
	if len(n.Children) == 1 {
		e.writeSpace()
		e.writeThreadNode(n.Children[0])
		return
	}
	for _, c := range n.Children {
		e.writeSpace()
		e.writeByte('(')
		e.writeThreadNode(c)
		e.writeByte(')')
	}
}

func (e *encoder) writeData(d Data) {
	switch v := d.(type) {
	case DataCapability:
		e.writeString("CAPABILITY")
		for _, a := range v.Capabilities {
			e.writeSpace()
			e.writeAtom(a)
		}
	case DataList:
		e.writeString("LIST ")
		e.writeMailboxAttrs(v.Attrs)
		e.writeSpace()
		e.writeDelimiter(v.Delimiter)
		e.writeSpace()
		e.writeMailbox(v.Mailbox)
	case DataLsub:
		e.writeString("LSUB ")
		e.writeMailboxAttrs(v.Attrs)
		e.writeSpace()
		e.writeDelimiter(v.Delimiter)
		e.writeSpace()
		e.writeMailbox(v.Mailbox)
	case DataStatus:
		e.writeString("STATUS ")
		e.writeMailbox(v.Mailbox)
		e.writeByte(' ')
		e.writeList(len(v.Items), func(i int) {
			e.writeStatusItem(v.Items[i].Item)
			e.writeSpace()
			e.writeInt(v.Items[i].Value)
		})
	case DataSearch:
		e.writeString("SEARCH")
		for _, n := range v.Numbers {
			e.writeSpace()
			e.writeUint(uint64(n))
		}
		if v.ModSeq != 0 {
			e.writeString(" (MODSEQ ")
			e.writeInt(v.ModSeq)
			e.writeByte(')')
		}
	case DataFlags:
		e.writeString("FLAGS ")
		e.writeList(len(v.Flags), func(i int) { e.writeFlag(v.Flags[i]) })
	case DataExists:
		e.writeUint(uint64(v.Count))
		e.writeString(" EXISTS")
	case DataRecent:
		e.writeUint(uint64(v.Count))
		e.writeString(" RECENT")
	case DataExpunge:
		e.writeUint(uint64(v.SeqNum))
		e.writeString(" EXPUNGE")
	case DataFetch:
		e.writeUint(uint64(v.SeqNum))
		e.writeString(" FETCH ")
		items := v.Items.Slice()
		e.writeList(len(items), func(i int) { e.writeMessageDataItem(items[i]) })
	case DataEnabled:
		e.writeString("ENABLED")
		for _, a := range v.Capabilities {
			e.writeSpace()
			e.writeAtom(a)
		}
	case DataQuota:
		e.writeString("QUOTA ")
		e.writeAString(v.Root)
		e.writeByte(' ')
		e.writeList(len(v.Resources)*3, func(i int) {
			r := v.Resources[i/3]
			switch i % 3 {
			case 0:
				e.writeAtom(r.Name)
			case 1:
				e.writeUint(r.Usage)
			case 2:
				e.writeUint(r.Limit)
			}
		})
	case DataQuotaRoot:
		e.writeString("QUOTAROOT ")
		e.writeMailbox(v.Mailbox)
		for _, r := range v.Roots {
			e.writeSpace()
			e.writeAString(r)
		}
	case DataMetadata:
		e.writeString("METADATA ")
		e.writeMailbox(v.Mailbox)
		e.writeSpace()
		if len(v.Entries) > 0 && v.Entries[0].Value.IsNil() && allMetadataNilValues(v.Entries) {
			e.writeList(len(v.Entries), func(i int) { e.writeAString(v.Entries[i].Entry) })
		} else {
			e.writeEntryValues(v.Entries)
		}
	case DataThread:
		e.writeString("THREAD")
		for _, root := range v.Roots {
			e.writeSpace()
			e.writeByte('(')
			e.writeThreadNode(root)
			e.writeByte(')')
		}
	default:
		panic("imapwire: unknown Data variant")
	}
}

func allMetadataNilValues(entries []EntryValue) bool {
	for _, ev := range entries {
		if !ev.Value.IsNil() {
			return false
		}
	}
	return true
}

func (e *encoder) writeContinuation(c Continuation) {
	e.writeByte('+')
	switch v := c.(type) {
	case ContinuationBasic:
		if v.Code != nil {
			e.writeSpace()
			e.writeCode(v.Code)
		}
		e.writeSpace()
		e.writeText(v.Text)
	case ContinuationBase64:
		e.writeSpace()
		e.writeBytes(v.Data)
	default:
		panic("imapwire: unknown Continuation variant")
	}
}

// EncodeAuthenticateData renders a client's AUTHENTICATE continuation
// line: either a base64 blob or the "*" cancellation.
func EncodeAuthenticateData(a AuthenticateData) []byte {
	e := newEncoder()
	switch v := a.(type) {
	case AuthContinue:
		e.writeSecretAsBase64Token(v.Data)
	case AuthCancel:
		e.writeByte('*')
	default:
		panic("imapwire: unknown AuthenticateData variant")
	}
	e.writeCRLF()
	return e.bytes()
}

// EncodeIdleDone renders the client's "DONE" line ending IDLE.
func EncodeIdleDone() []byte {
	return []byte("DONE\r\n")
}
