package imapwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCommandRoundTrip checks that EncodeCommand's output decodes back
// to an equal Command for a set of CommandBody variants that carry no
// literal (literal-bearing commands such as APPEND are not covered
// here).
func TestCommandRoundTrip(t *testing.T) {
	tag := Tag{b: []byte("a1")}
	seq, err := SeqOrUidValue(1)
	require.Nil(t, err)
	oneSeq := NewSequenceSet(SequenceSingle(seq))

	tests := []struct {
		name string
		body CommandBody
	}{
		{"Capability", Capability{}},
		{"Noop", Noop{}},
		{"Logout", Logout{}},
		{"Login", Login{Username: mustAString(t, "alice"), Password: NewSecret([]byte("s3cret"))}},
		{"Select", SelectExamine{Mailbox: MailboxInbox()}},
		{"ExamineWithParams", SelectExamine{
			Examine:    true,
			Mailbox:    MailboxInbox(),
			Parameters: []SelectParameter{SelectParamCondstore{}},
		}},
		{"Create", Create{Mailbox: mustMailbox(t, "Archive")}},
		{"Status", StatusCmd{
			Mailbox: MailboxInbox(),
			Items:   []StatusItem{StatusMessages, StatusUIDNext, StatusHighestModSeq},
		}},
		{"Check", Check{}},
		{"Close", Close{}},
		{"Expunge", Expunge{}},
		{"UIDExpunge", Expunge{UIDSet: &oneSeq}},
		{"Copy", Copy{Set: oneSeq, Mailbox: MailboxInbox()}},
		{"UIDMove", Move{UID: true, Set: oneSeq, Mailbox: MailboxInbox()}},
		{"Idle", Idle{}},
		{"Enable", Enable{Capabilities: []Atom{unvalidatedAtom([]byte("CONDSTORE"))}}},
		{"Compress", Compress{Algorithm: unvalidatedAtom([]byte("DEFLATE"))}},
		{"GetQuotaRoot", GetQuotaRoot{Mailbox: MailboxInbox()}},
		{"SetQuota", SetQuota{
			Root:      mustAString(t, "INBOX"),
			Resources: []QuotaResource{{Name: unvalidatedAtom([]byte("STORAGE")), Limit: 1024}},
		}},
		{"Unselect", Unselect{}},
		{"ID", ID{Params: nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := EncodeCommand(Command{Tag: tag, Body: tt.body})
			got, consumed, err := DecodeCommand(wire)
			require.Nil(t, err)
			require.Equal(t, len(wire), consumed)
			require.Equal(t, tag.b, got.Tag.b)
			require.Equal(t, tt.body, got.Body)
		})
	}
}

func mustAString(t *testing.T, s string) AString {
	t.Helper()
	return AStringFromAtom(unvalidatedAtomExt([]byte(s)))
}

func mustMailbox(t *testing.T, s string) Mailbox {
	t.Helper()
	m, err := NewMailboxOther(mustAString(t, s))
	require.Nil(t, err)
	return m
}
