package imapwire

// scanCode parses a bracketed response code, assuming the opening '['
// has not yet been consumed. Returns nil if none is present (i.e. the
// next byte isn't '[').
func (p *parser) scanCode() Code {
	c, ok := p.peek()
	if !ok {
		p.incomplete()
	}
	if c != '[' {
		return nil
	}
	p.advance(1)
	kw := p.scanAtomUpper()
	var code Code
	switch kw {
	case "ALERT":
		code = CodeAlert{}
	case "BADCHARSET":
		var allowed []Charset
		if c, ok := p.peek(); ok && c == ' ' {
			p.advance(1)
			p.expectByte('(')
			for {
				allowed = append(allowed, p.scanCharset())
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
		}
		code = CodeBadCharset{Allowed: allowed}
	case "CAPABILITY":
		var caps []Atom
		for {
			c, ok := p.peek()
			if !ok {
				p.incomplete()
			}
			if c == ']' {
				break
			}
			p.expectSP()
			caps = append(caps, unvalidatedAtom(p.scanAtomBytes()))
		}
		code = CodeCapability{Capabilities: caps}
	case "PARSE":
		code = CodeParse{}
	case "PERMANENTFLAGS":
		p.expectSP()
		code = CodePermanentFlags{Flags: p.scanFlagPermList()}
	case "READ-ONLY":
		code = CodeReadOnly{}
	case "READ-WRITE":
		code = CodeReadWrite{}
	case "TRYCREATE":
		code = CodeTryCreate{}
	case "UIDNEXT":
		p.expectSP()
		code = CodeUIDNext{Next: p.scanNumber()}
	case "UIDVALIDITY":
		p.expectSP()
		code = CodeUIDValidity{Value: p.scanNumber()}
	case "UNSEEN":
		p.expectSP()
		code = CodeUnseen{SeqNum: p.scanNumber()}
	case "COMPRESSIONACTIVE":
		code = CodeCompressionActive{}
	case "OVERQUOTA":
		code = CodeOverQuota{}
	case "HIGHESTMODSEQ":
		p.expectSP()
		code = CodeHighestModSeq{Value: p.scanNumber64()}
	case "METADATA":
		p.expectSP()
		code = CodeMetadata{Sub: p.scanCodeMetadataSub()}
	default:
		var arg []byte
		start := p.pos
		for {
			c, ok := p.peek()
			if !ok {
				p.incomplete()
			}
			if c == ']' {
				break
			}
			p.advance(1)
		}
		arg = p.buf[start:p.pos]
		if len(arg) > 0 && arg[0] == ' ' {
			arg = arg[1:]
		}
		code = CodeOther{Atom: unvalidatedAtomExt([]byte(kw)), Arg: cloneBytes(arg)}
	}
	p.expectByte(']')
	return code
}

func (p *parser) scanFlagPermList() []FlagPerm {
	p.expectByte('(')
	var out []FlagPerm
	if c, ok := p.peek(); ok && c == ')' {
		p.advance(1)
		return out
	}
	for {
		if p.tryKeyword(`\*`) {
			out = append(out, FlagPermWildcard())
		} else {
			out = append(out, FlagPermFlag(p.scanFlag()))
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
