package imapframer

import (
	"reflect"
	"testing"

	"spilled.ink/imapcodec/imapwire"
)

func drain(t *testing.T, f *Framer) []Event {
	t.Helper()
	var events []Event
	for {
		ev, ok := f.NextEvent()
		if !ok {
			return events
		}
		events = append(events, ev)
	}
}

func TestFramerServerSimpleCommand(t *testing.T) {
	f := New(Config{Role: RoleServer, MaxLiteralSize: 1 << 20})
	f.Feed([]byte("a1 NOOP\r\n"))
	events := drain(t, f)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %#v", len(events), events)
	}
	cmd, ok := events[0].(EventCommand)
	if !ok {
		t.Fatalf("event = %#v, want EventCommand", events[0])
	}
	if _, ok := cmd.Command.Body.(imapwire.Noop); !ok {
		t.Errorf("body = %#v, want Noop", cmd.Command.Body)
	}
}

func TestFramerServerByteAtATimeMatchesOneShot(t *testing.T) {
	input := "a1 LOGIN alice secret\r\na2 NOOP\r\n"

	whole := New(Config{Role: RoleServer, MaxLiteralSize: 1 << 20})
	whole.Feed([]byte(input))
	wantEvents := drain(t, whole)

	// Each byte-at-a-time event is compared before the next Feed, since
	// Feed invalidates slices borrowed by earlier events.
	bytewise := New(Config{Role: RoleServer, MaxLiteralSize: 1 << 20})
	got := 0
	for i := 0; i < len(input); i++ {
		bytewise.Feed([]byte{input[i]})
		for _, ev := range drain(t, bytewise) {
			if got >= len(wantEvents) {
				t.Fatalf("byte-at-a-time produced more than the %d one-shot events", len(wantEvents))
			}
			wc, wok := wantEvents[got].(EventCommand)
			gc, gok := ev.(EventCommand)
			if wok != gok {
				t.Fatalf("event %d: kind mismatch %#v vs %#v", got, wantEvents[got], ev)
			}
			if wok && !reflect.DeepEqual(wc.Command, gc.Command) {
				t.Errorf("event %d: %#v != %#v", got, gc.Command, wc.Command)
			}
			got++
		}
	}

	if got != len(wantEvents) {
		t.Fatalf("byte-at-a-time produced %d events, one-shot produced %d", got, len(wantEvents))
	}
}

func TestFramerServerSyncLiteralAckThenBody(t *testing.T) {
	f := New(Config{Role: RoleServer, MaxLiteralSize: 1 << 20})
	f.Feed([]byte("a1 LOGIN {5}\r\n"))

	ev, ok := f.NextEvent()
	if !ok {
		t.Fatalf("expected an event after the literal announcement")
	}
	ack, ok := ev.(EventActionRequired)
	if !ok {
		t.Fatalf("event = %#v, want EventActionRequired", ev)
	}
	if a, ok := ack.Action.(SendLiteralAck); !ok || a.Length != 5 {
		t.Errorf("action = %#v, want SendLiteralAck{5}", ack.Action)
	}

	if _, ok := f.NextEvent(); ok {
		t.Fatalf("expected no event until the literal body arrives")
	}

	// The password is a second sync literal, so it gets its own ack
	// before the command completes.
	f.Feed([]byte("alice {6}\r\nsecret\r\n"))
	events := drain(t, f)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %#v", len(events), events)
	}
	ack2, ok := events[0].(EventActionRequired)
	if !ok {
		t.Fatalf("event 0 = %#v, want EventActionRequired", events[0])
	}
	if a, ok := ack2.Action.(SendLiteralAck); !ok || a.Length != 6 {
		t.Errorf("action = %#v, want SendLiteralAck{6}", ack2.Action)
	}
	cmd, ok := events[1].(EventCommand)
	if !ok {
		t.Fatalf("event 1 = %#v, want EventCommand", events[1])
	}
	login, ok := cmd.Command.Body.(imapwire.Login)
	if !ok {
		t.Fatalf("body = %#v, want Login", cmd.Command.Body)
	}
	if string(login.Username.Bytes()) != "alice" {
		t.Errorf("username = %q, want alice", login.Username.Bytes())
	}
	if string(login.Password.Declassify()) != "secret" {
		t.Errorf("password = %q, want secret", login.Password.Declassify())
	}
}

func TestFramerServerOversizedSyncLiteralRejected(t *testing.T) {
	f := New(Config{Role: RoleServer, MaxLiteralSize: 10})
	f.Feed([]byte("a1 LOGIN {20}\r\n"))

	ev, ok := f.NextEvent()
	if !ok {
		t.Fatalf("expected a reject event")
	}
	act, ok := ev.(EventActionRequired)
	if !ok {
		t.Fatalf("event = %#v, want EventActionRequired", ev)
	}
	if r, ok := act.Action.(SendLiteralReject); !ok || r.Length != 20 {
		t.Errorf("action = %#v, want SendLiteralReject{20}", act.Action)
	}

	// The client does not send the oversized literal; the next bytes are
	// a fresh command, which must frame normally.
	f.Feed([]byte("a2 NOOP\r\n"))
	events := drain(t, f)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %#v", len(events), events)
	}
	if _, ok := events[0].(EventCommand); !ok {
		t.Errorf("event = %#v, want EventCommand", events[0])
	}
}

func TestFramerServerOversizedNonSyncLiteralDiscarded(t *testing.T) {
	f := New(Config{Role: RoleServer, MaxLiteralSize: 4})
	f.Feed([]byte("a1 LOGIN {8+}\r\n"))

	ev, ok := f.NextEvent()
	if !ok {
		t.Fatalf("expected a reject event")
	}
	act, ok := ev.(EventActionRequired)
	if !ok || act.Action != (SendLiteralReject{Length: 8}) {
		t.Fatalf("event = %#v, want SendLiteralReject{8}", ev)
	}

	// Unlike the sync case, the client already committed to sending
	// these bytes: they arrive on the wire regardless and must be
	// skipped rather than mistaken for the start of the next command.
	f.Feed([]byte("deadbeef"))
	if _, ok := f.NextEvent(); ok {
		t.Fatalf("expected no event while the discarded literal body is still incomplete")
	}
	f.Feed([]byte("a2 NOOP\r\n"))
	events := drain(t, f)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %#v", len(events), events)
	}
	if _, ok := events[0].(EventCommand); !ok {
		t.Errorf("event = %#v, want EventCommand", events[0])
	}
}

func TestFramerClientGreetingThenResponse(t *testing.T) {
	f := New(Config{Role: RoleClient, MaxLiteralSize: 1 << 20})
	f.Feed([]byte("* OK IMAP4rev1 ready\r\n* 1 EXISTS\r\n"))
	events := drain(t, f)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %#v", len(events), events)
	}
	if _, ok := events[0].(EventGreeting); !ok {
		t.Errorf("event 0 = %#v, want EventGreeting", events[0])
	}
	if _, ok := events[1].(EventResponse); !ok {
		t.Errorf("event 1 = %#v, want EventResponse", events[1])
	}
}

func TestFramerNotCrLfStrict(t *testing.T) {
	f := New(Config{Role: RoleServer, MaxLiteralSize: 1 << 20})
	f.Feed([]byte("a1 NOOP\n"))
	ev, ok := f.NextEvent()
	if !ok {
		t.Fatalf("expected a framing event")
	}
	fe, ok := ev.(EventFraming)
	if !ok || fe.Kind != NotCrLf {
		t.Fatalf("event = %#v, want EventFraming{NotCrLf}", ev)
	}
}

func TestFramerCRLFRelaxedAcceptsBareLF(t *testing.T) {
	f := New(Config{Role: RoleServer, MaxLiteralSize: 1 << 20, CRLFRelaxed: true})
	f.Feed([]byte("a1 NOOP\n"))
	events := drain(t, f)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %#v", len(events), events)
	}
	if _, ok := events[0].(EventCommand); !ok {
		t.Errorf("event = %#v, want EventCommand", events[0])
	}
}

func TestFramerParseFailedResync(t *testing.T) {
	f := New(Config{Role: RoleServer, MaxLiteralSize: 1 << 20})
	f.Feed([]byte("a1 BOGUSCMD\r\na2 NOOP\r\n"))
	events := drain(t, f)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %#v", len(events), events)
	}
	if _, ok := events[0].(EventParseFailed); !ok {
		t.Errorf("event 0 = %#v, want EventParseFailed", events[0])
	}
	if _, ok := events[1].(EventCommand); !ok {
		t.Errorf("event 1 = %#v, want EventCommand (framing must resync after a failed parse)", events[1])
	}
}
