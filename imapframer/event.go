// Package imapframer implements the line-and-literal framing layer (L4)
// that sits above imapwire's byte-buffer decoders. It turns a stream of
// arbitrarily-chunked bytes into a sequence of Events: complete commands,
// responses, and the framing-level signals (literal acks/rejects, bad
// terminators) a transport loop needs to drive the wire protocol.
//
// A Framer never blocks and never touches the network itself: callers
// push bytes in with Feed and pull Events out with NextEvent until it
// returns false, exactly mirroring imapwire's Incomplete/LiteralFound/
// Failed split one layer up.
package imapframer

import "spilled.ink/imapcodec/imapwire"

// Role selects which side of the protocol a Framer decodes.
type Role int

const (
	// RoleServer decodes client commands and emits continuation actions.
	RoleServer Role = iota
	// RoleClient decodes the server's greeting followed by its responses.
	RoleClient
)

func (r Role) String() string {
	if r == RoleServer {
		return "server"
	}
	return "client"
}

// FramingErrorKind distinguishes the two ways a message can fail to
// frame correctly (as opposed to failing to decode).
type FramingErrorKind int

const (
	// NotCrLf means a line was terminated by a bare LF while the Framer
	// is not configured to tolerate that.
	NotCrLf FramingErrorKind = iota
	// LiteralTooLarge means a peer announced a literal longer than the
	// Framer's configured maximum.
	LiteralTooLarge
)

func (k FramingErrorKind) String() string {
	if k == LiteralTooLarge {
		return "LiteralTooLarge"
	}
	return "NotCrLf"
}

// Action is an out-of-band step a server-role caller must perform (write
// a continuation line) before more input bytes can usefully arrive.
type Action interface{ isAction() }

// SendLiteralAck asks the caller to write "+ OK\r\n" (or similar) so the
// client will proceed to send the announced literal's bytes.
type SendLiteralAck struct{ Length uint32 }

func (SendLiteralAck) isAction() {}

// SendLiteralReject asks the caller to write a tagged NO/BAD refusing a
// literal that exceeds the Framer's configured maximum.
type SendLiteralReject struct{ Length uint32 }

func (SendLiteralReject) isAction() {}

// Event is one outcome of feeding bytes through a Framer.
type Event interface{ isEvent() }

// EventGreeting is the server's opening line. Emitted at most once, and
// only for a RoleClient Framer, before any EventResponse.
type EventGreeting struct{ Greeting imapwire.Greeting }

func (EventGreeting) isEvent() {}

// EventCommand is one fully decoded client command (RoleServer only).
type EventCommand struct{ Command imapwire.Command }

func (EventCommand) isEvent() {}

// EventResponse is one fully decoded server response (RoleClient only,
// after the greeting).
type EventResponse struct{ Response imapwire.Response }

func (EventResponse) isEvent() {}

// EventActionRequired tells the caller to perform Action before feeding
// more bytes will make further progress.
type EventActionRequired struct{ Action Action }

func (EventActionRequired) isEvent() {}

// EventParseFailed is a message that framed correctly (a complete line,
// literal bytes included) but failed to decode. Bytes is the raw message
// that was attempted, Err the imapwire failure.
type EventParseFailed struct {
	Bytes []byte
	Err   *imapwire.DecodeError
}

func (EventParseFailed) isEvent() {}

// EventFraming is a framing-level error, as opposed to a decode failure:
// a bad line terminator, or an oversized literal.
type EventFraming struct {
	Kind FramingErrorKind
	Max  uint32 // valid when Kind == LiteralTooLarge
	Got  uint32 // valid when Kind == LiteralTooLarge
}

func (EventFraming) isEvent() {}
