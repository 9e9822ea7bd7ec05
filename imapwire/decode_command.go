package imapwire

import "fmt"

// DecodeCommand parses one full client command line, tag included. On a
// LiteralFound error the tag already scanned is attached, so a caller can
// still address its continuation response correctly.
func DecodeCommand(buf []byte) (cmd Command, consumed int, err *DecodeError) {
	defer func() {
		if err != nil && err.Kind == LiteralFound && len(cmd.Tag.b) > 0 {
			t := cmd.Tag
			err.Tag = &t
		}
	}()
	defer recoverDecode(&err)
	p := newParser(buf)
	cmd.Tag = p.scanTag()
	p.expectSP()
	cmd.Body = p.scanCommandBody()
	p.expectCRLF()
	return cmd, p.pos, nil
}

func (p *parser) scanSelectParameterList() []SelectParameter {
	p.expectByte('(')
	var out []SelectParameter
	if c, ok := p.peek(); ok && c == ')' {
		p.advance(1)
		return out
	}
	for {
		kw := p.peekAtomUpper()
		if kw == "CONDSTORE" {
			p.expectKeyword("CONDSTORE")
			out = append(out, SelectParamCondstore{})
		} else {
			name := unvalidatedAtomExt(p.scanAtomExtBytes())
			var arg []byte
			if c, ok := p.peek(); ok && c == ' ' {
				p.advance(1)
				start := p.pos
				for {
					c2, ok := p.peek()
					if !ok {
						p.incomplete()
					}
					if c2 == ')' {
						break
					}
					p.advance(1)
				}
				arg = cloneBytes(p.buf[start:p.pos])
			}
			out = append(out, SelectParamOther{Name: name, Arg: arg})
		}
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

func (p *parser) scanGetMetadataOptions() GetMetadataOptions {
	var opts GetMetadataOptions
	c, ok := p.peek()
	if !ok {
		p.incomplete()
	}
	if c != '(' {
		return opts
	}
	p.advance(1)
	for {
		kw := p.scanAtomUpper()
		p.expectSP()
		switch kw {
		case "MAXSIZE":
			n := p.scanNumber()
			opts.MaxSize = &n
		case "DEPTH":
			if p.tryKeyword("infinity") {
				opts.Depth = -1
			} else {
				opts.Depth = int(p.scanNumber())
			}
		default:
			p.fail(FailBadSyntax, fmt.Errorf("unrecognized GETMETADATA option %q", kw))
		}
		c, ok := p.peek()
		if !ok {
			p.incomplete()
		}
		if c == ')' {
			p.advance(1)
			p.expectSP()
			return opts
		}
		p.expectSP()
	}
}

func (p *parser) scanEntryValueList() []EntryValue {
	p.expectByte('(')
	var out []EntryValue
	for {
		entry := p.scanAString()
		p.expectSP()
		val := p.scanNString()
		out = append(out, EntryValue{Entry: entry, Value: val})
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

func (p *parser) scanAStringList() []AString {
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

func (p *parser) scanCommandBody() CommandBody {
	kw := p.scanAtomUpper()
	if kw == "UID" {
		p.expectSP()
		inner := p.scanAtomUpper()
		switch inner {
		case "COPY":
			p.expectSP()
			set := p.scanSequenceSet()
			p.expectSP()
			mbox := p.scanMailbox()
			return Copy{UID: true, Set: set, Mailbox: mbox}
		case "MOVE":
			p.expectSP()
			set := p.scanSequenceSet()
			p.expectSP()
			mbox := p.scanMailbox()
			return Move{UID: true, Set: set, Mailbox: mbox}
		case "FETCH":
			p.expectSP()
			f := p.scanFetchTail()
			f.UID = true
			return f
		case "STORE":
			p.expectSP()
			s := p.scanStoreTail()
			s.UID = true
			return s
		case "SEARCH":
			p.expectSP()
			s := p.scanSearchTail()
			s.UID = true
			return s
		case "EXPUNGE":
			p.expectSP()
			set := p.scanSequenceSet()
			return Expunge{UIDSet: &set}
		case "THREAD":
			p.expectSP()
			t := p.scanThreadTail()
			t.UID = true
			return t
		default:
			p.fail(FailBadSyntax, fmt.Errorf("unrecognized UID-prefixed command %q", inner))
		}
	}
	switch kw {
	case "CAPABILITY":
		return Capability{}
	case "NOOP":
		return Noop{}
	case "LOGOUT":
		return Logout{}
	case "STARTTLS":
		return StartTLS{}
	case "AUTHENTICATE":
		p.expectSP()
		mech := unvalidatedAtom(p.scanAtomBytes())
		var ir *Secret
		if c, ok := p.peek(); ok && c == ' ' {
			p.advance(1)
			start := p.pos
			for {
				c2, ok := p.peek()
				if !ok {
					p.incomplete()
				}
				if c2 == '\r' {
					break
				}
				p.advance(1)
			}
			decoded, err := decodeBase64(p.buf[start:p.pos])
			if err != nil {
				p.fail(FailBadBase64, err)
			}
			s := NewSecret(decoded)
			ir = &s
		}
		return Authenticate{Mechanism: mech, InitialResponse: ir}
	case "LOGIN":
		p.expectSP()
		user := p.scanAString()
		p.expectSP()
		pass := p.scanAString()
		return Login{Username: user, Password: NewSecret(pass.Bytes())}
	case "SELECT", "EXAMINE":
		p.expectSP()
		mbox := p.scanMailbox()
		var params []SelectParameter
		if c, ok := p.peek(); ok && c == ' ' {
			p.advance(1)
			params = p.scanSelectParameterList()
		}
		return SelectExamine{Examine: kw == "EXAMINE", Mailbox: mbox, Parameters: params}
	case "CREATE":
		p.expectSP()
		return Create{Mailbox: p.scanMailbox()}
	case "DELETE":
		p.expectSP()
		return Delete{Mailbox: p.scanMailbox()}
	case "RENAME":
		p.expectSP()
		from := p.scanMailbox()
		p.expectSP()
		to := p.scanMailbox()
		return Rename{From: from, To: to}
	case "SUBSCRIBE":
		p.expectSP()
		return Subscribe{Mailbox: p.scanMailbox()}
	case "UNSUBSCRIBE":
		p.expectSP()
		return Unsubscribe{Mailbox: p.scanMailbox()}
	case "LIST":
		p.expectSP()
		ref := p.scanMailbox()
		p.expectSP()
		pat := p.scanListCharString()
		return List{Reference: ref, Pattern: pat}
	case "LSUB":
		p.expectSP()
		ref := p.scanMailbox()
		p.expectSP()
		pat := p.scanListCharString()
		return Lsub{Reference: ref, Pattern: pat}
	case "STATUS":
		p.expectSP()
		mbox := p.scanMailbox()
		p.expectSP()
		p.expectByte('(')
		var items []StatusItem
		for {
			items = append(items, p.scanStatusItemKeyword())
			c, ok := p.peek()
			if !ok {
				p.incomplete()
			}
			if c == ')' {
				p.advance(1)
				break
			}
			p.expectSP()
		}
		return StatusCmd{Mailbox: mbox, Items: items}
	case "APPEND":
		p.expectSP()
		mbox := p.scanMailbox()
		var flags []Flag
		if c, ok := p.peek(); ok && c == ' ' {
			save := p.pos
			p.advance(1)
			if c2, _ := p.peek(); c2 == '(' {
				flags = p.scanFlagList()
			} else {
				p.pos = save
			}
		}
		var date *DateTime
		if c, ok := p.peek(); ok && c == ' ' {
			save := p.pos
			p.advance(1)
			if c2, _ := p.peek(); c2 == '"' {
				d := p.scanDateTime()
				date = &d
			} else {
				p.pos = save
			}
		}
		p.expectSP()
		b, mode := p.scanLiteralBytes()
		lit, err := NewLiteral(b, mode)
		if err != nil {
			p.fail(FailLiteralContainsNull, err)
		}
		return Append{Mailbox: mbox, Flags: flags, Date: date, Message: lit}
	case "CHECK":
		return Check{}
	case "CLOSE":
		return Close{}
	case "EXPUNGE":
		return Expunge{}
	case "SEARCH":
		p.expectSP()
		return p.scanSearchTail()
	case "FETCH":
		p.expectSP()
		return p.scanFetchTail()
	case "STORE":
		p.expectSP()
		return p.scanStoreTail()
	case "COPY":
		p.expectSP()
		set := p.scanSequenceSet()
		p.expectSP()
		return Copy{Set: set, Mailbox: p.scanMailbox()}
	case "MOVE":
		p.expectSP()
		set := p.scanSequenceSet()
		p.expectSP()
		return Move{Set: set, Mailbox: p.scanMailbox()}
	case "IDLE":
		return Idle{}
	case "ENABLE":
		p.expectSP()
		var caps []Atom
		caps = append(caps, unvalidatedAtom(p.scanAtomBytes()))
		for {
			c, ok := p.peek()
			if !ok || c == '\r' {
				break
			}
			p.expectSP()
			caps = append(caps, unvalidatedAtom(p.scanAtomBytes()))
		}
		return Enable{Capabilities: caps}
	case "COMPRESS":
		p.expectSP()
		return Compress{Algorithm: unvalidatedAtom(p.scanAtomBytes())}
	case "GETQUOTA":
		p.expectSP()
		return GetQuota{Root: p.scanAString()}
	case "GETQUOTAROOT":
		p.expectSP()
		return GetQuotaRoot{Mailbox: p.scanMailbox()}
	case "SETQUOTA":
		p.expectSP()
		root := p.scanAString()
		p.expectSP()
		p.expectByte('(')
		var resources []QuotaResource
		if c, ok := p.peek(); ok && c != ')' {
			for {
				name := unvalidatedAtom(p.scanAtomBytes())
				p.expectSP()
				limit := uint64(p.scanNumber())
				resources = append(resources, QuotaResource{Name: name, Limit: limit})
				c, ok := p.peek()
				if !ok {
					p.incomplete()
				}
				if c == ')' {
					break
				}
				p.expectSP()
			}
		}
		p.expectByte(')')
		return SetQuota{Root: root, Resources: resources}
	case "GETMETADATA":
		p.expectSP()
		opts := p.scanGetMetadataOptions()
		mbox := p.scanMailbox()
		p.expectSP()
		var entries []AString
		if c, _ := p.peek(); c == '(' {
			entries = p.scanAStringList()
		} else {
			entries = []AString{p.scanAString()}
		}
		return GetMetadata{Mailbox: mbox, Options: opts, Entries: entries}
	case "SETMETADATA":
		p.expectSP()
		mbox := p.scanMailbox()
		p.expectSP()
		return SetMetadata{Mailbox: mbox, Entries: p.scanEntryValueList()}
	case "THREAD":
		p.expectSP()
		return p.scanThreadTail()
	case "ID":
		p.expectSP()
		if p.tryKeyword("NIL") {
			return ID{Params: nil}
		}
		p.expectByte('(')
		var params []NString
		if c, ok := p.peek(); ok && c != ')' {
			for {
				params = append(params, p.scanNString())
				c, ok := p.peek()
				if !ok {
					p.incomplete()
				}
				if c == ')' {
					break
				}
				p.expectSP()
			}
		}
		p.expectByte(')')
		return ID{Params: params}
	case "UNSELECT":
		return Unselect{}
	default:
		p.fail(FailBadSyntax, fmt.Errorf("unrecognized command %q", kw))
	}
	panic("unreachable")
}

func (p *parser) scanListCharString() ListCharString {
	b := p.scanWhile(isListChar)
	if len(b) == 0 {
		if c, ok := p.peek(); ok && c == '"' {
			p.advance(1)
			body := p.scanQuotedBody()
			return unvalidatedListCharString(body)
		}
		p.fail(FailBadSyntax, fmt.Errorf("expected list-mailbox"))
	}
	return unvalidatedListCharString(b)
}

func (p *parser) scanSearchTail() Search {
	var s Search
	if p.tryKeyword("RETURN") {
		p.expectSP()
		p.expectByte('(')
		if c, ok := p.peek(); ok && c != ')' {
			for {
				kw := p.scanAtomUpper()
				switch kw {
				case "MIN":
					s.Return = append(s.Return, SearchReturnMin)
				case "MAX":
					s.Return = append(s.Return, SearchReturnMax)
				case "ALL":
					s.Return = append(s.Return, SearchReturnAll)
				case "COUNT":
					s.Return = append(s.Return, SearchReturnCount)
				default:
					p.fail(FailBadSyntax, fmt.Errorf("unrecognized SEARCH RETURN option %q", kw))
				}
				c, ok := p.peek()
				if !ok {
					p.incomplete()
				}
				if c == ')' {
					break
				}
				p.expectSP()
			}
		}
		p.expectByte(')')
		p.expectSP()
	}
	if p.tryKeyword("CHARSET") {
		p.expectSP()
		cs := p.scanCharset()
		s.Charset = &cs
		p.expectSP()
	}
	s.Key = p.scanSearchKey()
	return s
}

func (p *parser) scanThreadTail() Thread {
	alg := unvalidatedAtom(p.scanAtomBytes())
	p.expectSP()
	charset := p.scanCharset()
	p.expectSP()
	return Thread{Algorithm: alg, Charset: charset, Key: p.scanSearchKey()}
}

func (p *parser) scanFetchTail() Fetch {
	var f Fetch
	f.Set = p.scanSequenceSet()
	p.expectSP()
	f.Attributes = p.scanFetchAttributeList()
	if c, ok := p.peek(); ok && c == ' ' {
		save := p.pos
		p.advance(1)
		if p.tryKeyword("(CHANGEDSINCE") {
			p.expectSP()
			f.ChangedSince = p.scanNumber64()
			p.expectByte(')')
		} else {
			p.pos = save
		}
	}
	return f
}

func (p *parser) scanStoreTail() Store {
	var s Store
	s.Set = p.scanSequenceSet()
	if c, ok := p.peek(); ok && c == ' ' {
		save := p.pos
		p.advance(1)
		if p.tryKeyword("(UNCHANGEDSINCE") {
			p.expectSP()
			s.UnchangedSince = p.scanNumber64()
			p.expectByte(')')
		} else {
			p.pos = save
		}
	}
	p.expectSP()
	c, ok := p.peek()
	if !ok {
		p.incomplete()
	}
	switch c {
	case '+':
		s.Mode = StoreAdd
		p.advance(1)
	case '-':
		s.Mode = StoreRemove
		p.advance(1)
	}
	p.expectKeyword("FLAGS")
	if p.tryKeyword(".SILENT") {
		s.Response = StoreSilent
	}
	p.expectSP()
	if c, ok := p.peek(); ok && c == '(' {
		s.Flags = p.scanFlagList()
	} else {
		s.Flags = []Flag{p.scanFlag()}
	}
	return s
}
