package imapwire

// Command is a single client command: a Tag plus a CommandBody naming
// which IMAP command it is and carrying that command's arguments.
type Command struct {
	Tag  Tag
	Body CommandBody
}

// CommandBody is a discriminated union over every IMAP command this
// codec understands. Each command gets its own
// variant rather than a stringly-typed fallback.
type CommandBody interface{ isCommandBody() }

type Capability struct{}

func (Capability) isCommandBody() {}

type Noop struct{}

func (Noop) isCommandBody() {}

type Logout struct{}

func (Logout) isCommandBody() {}

type StartTLS struct{}

func (StartTLS) isCommandBody() {}

// Authenticate is the AUTHENTICATE command. InitialResponse is present
// only when the client used the SASL-IR optimization (RFC 4959) to send
// the first response alongside the command line.
type Authenticate struct {
	Mechanism       Atom
	InitialResponse *Secret
}

func (Authenticate) isCommandBody() {}

// Login carries a LOGIN command. Password is a Secret so it is never
// accidentally logged; it is still encoded to the wire verbatim.
type Login struct {
	Username AString
	Password Secret
}

func (Login) isCommandBody() {}

type SelectExamine struct {
	Examine    bool
	Mailbox    Mailbox
	Parameters []SelectParameter
}

func (SelectExamine) isCommandBody() {}

// SelectParameter covers RFC 4466's select-param extension point; only
// CONDSTORE is given a concrete case (matching the
// SELECT/EXAMINE Condstore field), everything else rides as Other.
type SelectParameter interface{ isSelectParameter() }

type SelectParamCondstore struct{}

func (SelectParamCondstore) isSelectParameter() {}

type SelectParamOther struct {
	Name AtomExt
	Arg  []byte
}

func (SelectParamOther) isSelectParameter() {}

type Create struct{ Mailbox Mailbox }

func (Create) isCommandBody() {}

type Delete struct{ Mailbox Mailbox }

func (Delete) isCommandBody() {}

type Rename struct{ From, To Mailbox }

func (Rename) isCommandBody() {}

type Subscribe struct{ Mailbox Mailbox }

func (Subscribe) isCommandBody() {}

type Unsubscribe struct{ Mailbox Mailbox }

func (Unsubscribe) isCommandBody() {}

type List struct {
	Reference Mailbox
	Pattern   ListCharString
}

func (List) isCommandBody() {}

type Lsub struct {
	Reference Mailbox
	Pattern   ListCharString
}

func (Lsub) isCommandBody() {}

type StatusItem int

const (
	StatusMessages StatusItem = iota
	StatusRecent
	StatusUIDNext
	StatusUIDValidity
	StatusUnseen
	// StatusHighestModSeq is CONDSTORE's item.
	StatusHighestModSeq
)

// StatusCmd is the STATUS command (named StatusCmd to avoid colliding
// with the status response type also named Status).
type StatusCmd struct {
	Mailbox Mailbox
	Items   []StatusItem
}

func (StatusCmd) isCommandBody() {}

type Append struct {
	Mailbox Mailbox
	Flags   []Flag
	Date    *DateTime
	Message Literal
}

func (Append) isCommandBody() {}

type Check struct{}

func (Check) isCommandBody() {}

type Close struct{}

func (Close) isCommandBody() {}

type Expunge struct {
	// UIDSet is non-nil for RFC 4315 UID EXPUNGE, restricting the expunge
	// to the given UID set rather than every \Deleted message.
	UIDSet *SequenceSet
}

func (Expunge) isCommandBody() {}

type Search struct {
	UID     bool
	Charset *Charset
	Key     SearchKey
	Return  []SearchReturnOption
}

func (Search) isCommandBody() {}

// SearchReturnOption is RFC 4731 ESEARCH's SEARCH RETURN option.
type SearchReturnOption int

const (
	SearchReturnMin SearchReturnOption = iota
	SearchReturnMax
	SearchReturnAll
	SearchReturnCount
)

type Fetch struct {
	UID        bool
	Set        SequenceSet
	Attributes []FetchAttribute
	// ChangedSince is CONDSTORE's FETCH modifier; 0 means absent.
	ChangedSince int64
}

func (Fetch) isCommandBody() {}

type StoreMode int

const (
	StoreReplace StoreMode = iota
	StoreAdd
	StoreRemove
)

type StoreResponse int

const (
	StoreAnswer StoreResponse = iota
	StoreSilent
)

type Store struct {
	UID            bool
	Set            SequenceSet
	Mode           StoreMode
	Response       StoreResponse
	Flags          []Flag
	UnchangedSince int64 // CONDSTORE modifier; 0 means absent
}

func (Store) isCommandBody() {}

type Copy struct {
	UID     bool
	Set     SequenceSet
	Mailbox Mailbox
}

func (Copy) isCommandBody() {}

// Move is RFC 6851 MOVE.
type Move struct {
	UID     bool
	Set     SequenceSet
	Mailbox Mailbox
}

func (Move) isCommandBody() {}

// Idle is RFC 2177 IDLE.
type Idle struct{}

func (Idle) isCommandBody() {}

// Enable is RFC 5161 ENABLE.
type Enable struct{ Capabilities []Atom }

func (Enable) isCommandBody() {}

// Compress is RFC 4978 COMPRESS.
type Compress struct{ Algorithm Atom }

func (Compress) isCommandBody() {}

// GetQuota is RFC 9208/2087 GETQUOTA.
type GetQuota struct{ Root AString }

func (GetQuota) isCommandBody() {}

// GetQuotaRoot is RFC 9208/2087 GETQUOTAROOT.
type GetQuotaRoot struct{ Mailbox Mailbox }

func (GetQuotaRoot) isCommandBody() {}

// QuotaResource is a single {resource, limit} pair.
type QuotaResource struct {
	Name  Atom
	Limit uint64
}

// SetQuota is RFC 9208/2087 SETQUOTA.
type SetQuota struct {
	Root      AString
	Resources []QuotaResource
}

func (SetQuota) isCommandBody() {}

// EntryValue is a single METADATA entry/value pair (RFC 5464).
type EntryValue struct {
	Entry AString
	Value NString
}

// GetMetadataOptions restores RFC 5464's GETMETADATA options, dropped by
// the base grammar (see SPEC_FULL.md Supplemented Features).
type GetMetadataOptions struct {
	MaxSize *uint32
	// Depth is 0, 1, or -1 (infinity, written "infinity" on the wire).
	Depth int
}

type GetMetadata struct {
	Mailbox Mailbox
	Options GetMetadataOptions
	Entries []AString
}

func (GetMetadata) isCommandBody() {}

type SetMetadata struct {
	Mailbox Mailbox
	Entries []EntryValue
}

func (SetMetadata) isCommandBody() {}

// Thread is RFC 5256 THREAD.
type Thread struct {
	UID       bool
	Algorithm Atom
	Charset   Charset
	Key       SearchKey
}

func (Thread) isCommandBody() {}

// ID is RFC 2971 ID. Params is nil for the NIL (no-parameters) form and
// a flattened key/value list (always even length) otherwise.
type ID struct {
	Params []NString
}

func (ID) isCommandBody() {}

// Unselect is RFC 3691 UNSELECT.
type Unselect struct{}

func (Unselect) isCommandBody() {}
