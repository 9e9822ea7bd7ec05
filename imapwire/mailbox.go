package imapwire

import "strings"

// Mailbox preserves the invariant that mailbox-name equality is
// case-insensitive only for the INBOX singleton: two MailboxOther values
// compare by their exact (case-sensitive) bytes.
type Mailbox struct {
	inbox bool
	other AString
}

// MailboxInbox is the case-insensitive singleton mailbox name.
func MailboxInbox() Mailbox { return Mailbox{inbox: true} }

// NewMailboxOther wraps name as a non-INBOX mailbox. It fails if name is
// any case variant of "inbox": that value must be constructed with
// MailboxInbox instead, so the two forms can never alias silently.
func NewMailboxOther(name AString) (Mailbox, error) {
	if isInboxBytes(name.Bytes()) {
		return Mailbox{}, errInvalid("Mailbox", `MailboxOther must not be any case variant of "inbox"; use MailboxInbox`)
	}
	return Mailbox{other: name}, nil
}

func isInboxBytes(b []byte) bool {
	return len(b) == 5 && strings.EqualFold(string(b), "INBOX")
}

func (m Mailbox) IsInbox() bool { return m.inbox }

// Other returns the wrapped AString and true, or the zero value and
// false when m is the INBOX singleton.
func (m Mailbox) Other() (AString, bool) {
	if m.inbox {
		return AString{}, false
	}
	return m.other, true
}

// Equal implements Mailbox's case-insensitive-only-for-INBOX equality
// (combined with the class's own doc comment).
func (m Mailbox) Equal(o Mailbox) bool {
	if m.inbox || o.inbox {
		return m.inbox == o.inbox
	}
	return string(m.other.Bytes()) == string(o.other.Bytes())
}

func (m Mailbox) IntoOwned() Mailbox {
	if m.inbox {
		return m
	}
	return Mailbox{other: m.other.IntoOwned()}
}

// DecodedName returns the mailbox name after modified-UTF-7 decoding
// (RFC 3501 §5.1.3), or "INBOX" verbatim.
func (m Mailbox) DecodedName() (string, error) {
	if m.inbox {
		return "INBOX", nil
	}
	out, err := utf7ModDecode(m.other.Bytes())
	if err != nil {
		return "", err
	}
	return string(out), nil
}
