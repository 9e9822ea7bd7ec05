package imapframer

import (
	"bytes"

	"spilled.ink/imapcodec/imapwire"
)

// Config configures a Framer; pass it to New. With the zero value's
// MaxLiteralSize of 0, every announced literal is over the limit.
type Config struct {
	Role Role

	// MaxLiteralSize bounds an announced literal's length. A literal
	// longer than this is never read into a decoded AST: the Framer
	// rejects it (RoleServer) or reports it (RoleClient) instead.
	MaxLiteralSize uint32

	// CRLFRelaxed accepts a bare LF as a line terminator on input.
	// Output (there is none here; EncodeCommand/EncodeResponse always
	// write CRLF) is unaffected.
	CRLFRelaxed bool
}

type frameState int

const (
	stateReadLine frameState = iota
	stateReadLiteral
)

// Framer turns a byte stream into Events without blocking or touching
// I/O itself. Feed appends bytes as they
// arrive; NextEvent drains as many Events as the buffered bytes allow.
type Framer struct {
	cfg Config

	buf   []byte
	state frameState

	// start marks the offset of the first byte not yet fully folded
	// into an emitted Event. Bytes before it are only dropped at the
	// top of the next Feed call, never mid-NextEvent: an Event just
	// returned may still borrow slices of buf, and compacting buf in
	// place (as append(buf[:0], buf[n:]...) would) overwrites that
	// memory out from under the caller. Deferring the compaction to
	// Feed gives borrowed slices the same "valid until the next call"
	// lifetime bufio.Scanner.Bytes documents.
	start int

	// consumed marks how far into buf the current message's prefix
	// (prior literal bytes, already-seen line fragments) extends. The
	// next line terminator is searched for starting here, since a
	// literal's payload may itself contain '\n'.
	consumed int

	// litLen/litRejected describe the in-flight literal when state is
	// stateReadLiteral.
	litLen      uint32
	litRejected bool // true: once complete, discard rather than decode

	greetingSeen bool

	// lastDecoded holds the Event produced by the most recently
	// successful decodeLine call; decodeLine itself only needs to
	// report error-or-not to tryReadLine's shared control flow.
	lastDecoded Event
}

// New constructs a Framer for the given configuration.
func New(cfg Config) *Framer {
	return &Framer{cfg: cfg}
}

// Feed appends newly-received bytes to the Framer's internal buffer.
// The caller retains no ownership of b; Feed copies it.
//
// Feed invalidates any byte slice borrowed from an Event returned by a
// prior NextEvent call (Command/Response/Greeting fields that alias the
// wire bytes directly) — copy anything that must outlive this call
// before calling Feed again.
func (f *Framer) Feed(b []byte) {
	if f.start > 0 {
		f.buf = append(f.buf[:0], f.buf[f.start:]...)
		f.consumed -= f.start
		f.start = 0
	}
	f.buf = append(f.buf, b...)
}

// Pending reports how many bytes are buffered and not yet turned into
// an Event. Callers can use this to cap how much unprocessed input they
// allow a peer to accumulate.
func (f *Framer) Pending() int {
	return len(f.buf) - f.start
}

// NextEvent returns the next Event the buffered bytes make available,
// or (nil, false) if no further Event can be produced without more
// input from Feed.
func (f *Framer) NextEvent() (Event, bool) {
	for {
		switch f.state {
		case stateReadLiteral:
			if ev, ok := f.advanceLiteral(); ok {
				return ev, true
			}
			if f.state == stateReadLiteral {
				return nil, false
			}
			// state transitioned to stateReadLine; loop to try it.
		case stateReadLine:
			ev, produced, ok := f.tryReadLine()
			if !ok {
				return nil, false
			}
			if produced {
				return ev, true
			}
			// state transitioned without an event to emit (e.g. an
			// accepted literal on a RoleClient framer); loop.
		}
	}
}

// advanceLiteral checks whether the in-flight literal's bytes have
// fully arrived. If so it either discards them (a rejected-but-already-
// committed literal) or leaves them in buf and re-enters line reading
// at the advanced offset, the ReadLiteral -> ReadLine
// transition.
func (f *Framer) advanceLiteral() (Event, bool) {
	need := f.consumed + int(f.litLen)
	if len(f.buf) < need {
		return nil, false
	}
	if f.litRejected {
		f.start = need
		f.consumed = need
		f.state = stateReadLine
		return nil, false
	}
	f.consumed = need
	f.state = stateReadLine
	return nil, false
}

// tryReadLine looks for the next line terminator starting at
// f.consumed, decodes the accumulated prefix, and advances state.
// produced reports whether ev is a real Event (as opposed to a state
// transition with nothing to emit yet); ok reports whether progress was
// possible at all.
func (f *Framer) tryReadLine() (ev Event, produced bool, ok bool) {
	rel := f.buf[f.consumed:]
	idx := bytes.IndexByte(rel, '\n')
	if idx < 0 {
		return nil, false, false
	}
	bareLF := idx == 0 || rel[idx-1] != '\r'
	lineEnd := f.consumed + idx + 1

	if bareLF && !f.cfg.CRLFRelaxed {
		f.start = lineEnd
		f.consumed = lineEnd
		f.state = stateReadLine
		return EventFraming{Kind: NotCrLf}, true, true
	}

	line := f.buf[f.start:lineEnd]
	if bareLF {
		// CRLFRelaxed: normalize the bare LF into a CRLF for decode.
		// The copy is short-lived, consistent with the rest of a
		// decoded message's borrowed lifetime (valid only until the
		// next Feed/NextEvent call).
		norm := make([]byte, 0, lineEnd-f.start+1)
		norm = append(norm, f.buf[f.start:lineEnd-1]...)
		norm = append(norm, '\r', '\n')
		line = norm
	}

	derr := f.decodeLine(line)
	if derr == nil {
		f.start = lineEnd
		f.consumed = lineEnd
		f.state = stateReadLine
		return f.lastDecoded, true, true
	}

	switch derr.Kind {
	case imapwire.LiteralFound:
		return f.handleLiteralFound(derr, lineEnd)
	case imapwire.Incomplete:
		// The grammar promises Incomplete only mid-message; a full
		// line (through its own CRLF) that still reports Incomplete
		// indicates a malformed message the scanner couldn't resolve
		// any other way. Treat it as an ordinary parse failure rather
		// than waiting for bytes that completing the line already
		// ruled out.
		f.start = lineEnd
		f.consumed = lineEnd
		f.state = stateReadLine
		return EventParseFailed{Bytes: cloneLine(line), Err: derr}, true, true
	default: // imapwire.Failed
		f.start = lineEnd
		f.consumed = lineEnd
		f.state = stateReadLine
		return EventParseFailed{Bytes: cloneLine(line), Err: derr}, true, true
	}
}

func (f *Framer) handleLiteralFound(derr *imapwire.DecodeError, lineEnd int) (Event, bool, bool) {
	if derr.Length <= f.cfg.MaxLiteralSize {
		f.consumed = lineEnd
		f.litLen = derr.Length
		f.litRejected = false
		f.state = stateReadLiteral
		if f.cfg.Role == RoleServer {
			return EventActionRequired{Action: SendLiteralAck{Length: derr.Length}}, true, true
		}
		return nil, false, true
	}

	if f.cfg.Role == RoleServer {
		act := EventActionRequired{Action: SendLiteralReject{Length: derr.Length}}
		if derr.Mode == imapwire.NonSync {
			// LITERAL+: the client already committed to sending these
			// bytes without waiting for our answer. There is nothing a
			// reject prevents, so accept framing-wise and discard the
			// bytes once they arrive instead of attempting to decode
			// around them.
			f.start = lineEnd
			f.consumed = lineEnd
			f.litLen = derr.Length
			f.litRejected = true
			f.state = stateReadLiteral
			return act, true, true
		}
		// Sync literal: the client is waiting on our response and will
		// not send the literal's bytes after a reject. Go straight back
		// to line reading for whatever command follows.
		f.start = lineEnd
		f.consumed = lineEnd
		f.state = stateReadLine
		return act, true, true
	}

	// RoleClient: a server response announcing an oversized literal.
	// There is no continuation handshake to refuse on this side, and the
	// server isn't waiting on us either way; the bytes will arrive
	// regardless, so discard them once they land.
	f.start = lineEnd
	f.consumed = lineEnd
	f.litLen = derr.Length
	f.litRejected = true
	f.state = stateReadLiteral
	return EventFraming{Kind: LiteralTooLarge, Max: f.cfg.MaxLiteralSize, Got: derr.Length}, true, true
}

// decodeLine attempts to decode the message framed by line (which runs
// from f.start, the first byte of the current message, through the newly
// found terminator,
// literal bytes already spliced in from prior ReadLiteral cycles). On
// success it stashes the Event in f.lastDecoded and returns nil.
func (f *Framer) decodeLine(line []byte) *imapwire.DecodeError {
	switch {
	case f.cfg.Role == RoleClient && !f.greetingSeen:
		g, _, err := imapwire.DecodeGreeting(line)
		if err != nil {
			return err
		}
		f.greetingSeen = true
		f.lastDecoded = EventGreeting{Greeting: g}
		return nil
	case f.cfg.Role == RoleClient:
		r, _, err := imapwire.DecodeResponse(line)
		if err != nil {
			return err
		}
		f.lastDecoded = EventResponse{Response: r}
		return nil
	default: // RoleServer
		c, _, err := imapwire.DecodeCommand(line)
		if err != nil {
			return err
		}
		f.lastDecoded = EventCommand{Command: c}
		return nil
	}
}

func cloneLine(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
