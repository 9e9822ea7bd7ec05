package imapwire

// SearchKey is a single SEARCH criterion. It is a discriminated union
// over every RFC 3501 search-key alternative plus AND (the implicit
// "(" search-key *(SP search-key) ")" grouping, given its own variant
// rather than left as bare nesting).
type SearchKey interface{ isSearchKey() }

type SearchAll struct{}

func (SearchAll) isSearchKey() {}

type SearchAnswered struct{}

func (SearchAnswered) isSearchKey() {}

type SearchBcc struct{ Value string }

func (SearchBcc) isSearchKey() {}

type SearchBefore struct{ Date NaiveDate }

func (SearchBefore) isSearchKey() {}

type SearchBody struct{ Value string }

func (SearchBody) isSearchKey() {}

type SearchCc struct{ Value string }

func (SearchCc) isSearchKey() {}

type SearchDeleted struct{}

func (SearchDeleted) isSearchKey() {}

type SearchDraft struct{}

func (SearchDraft) isSearchKey() {}

type SearchFlagged struct{}

func (SearchFlagged) isSearchKey() {}

type SearchFrom struct{ Value string }

func (SearchFrom) isSearchKey() {}

type SearchHeader struct{ Field, Value string }

func (SearchHeader) isSearchKey() {}

type SearchKeyword struct{ Flag Atom }

func (SearchKeyword) isSearchKey() {}

type SearchLarger struct{ N uint32 }

func (SearchLarger) isSearchKey() {}

type SearchNew struct{}

func (SearchNew) isSearchKey() {}

type SearchOld struct{}

func (SearchOld) isSearchKey() {}

type SearchOn struct{ Date NaiveDate }

func (SearchOn) isSearchKey() {}

type SearchRecent struct{}

func (SearchRecent) isSearchKey() {}

type SearchSeen struct{}

func (SearchSeen) isSearchKey() {}

type SearchSentBefore struct{ Date NaiveDate }

func (SearchSentBefore) isSearchKey() {}

type SearchSentOn struct{ Date NaiveDate }

func (SearchSentOn) isSearchKey() {}

type SearchSentSince struct{ Date NaiveDate }

func (SearchSentSince) isSearchKey() {}

type SearchSince struct{ Date NaiveDate }

func (SearchSince) isSearchKey() {}

type SearchSmaller struct{ N uint32 }

func (SearchSmaller) isSearchKey() {}

type SearchSubject struct{ Value string }

func (SearchSubject) isSearchKey() {}

type SearchText struct{ Value string }

func (SearchText) isSearchKey() {}

type SearchTo struct{ Value string }

func (SearchTo) isSearchKey() {}

type SearchUnanswered struct{}

func (SearchUnanswered) isSearchKey() {}

type SearchUndeleted struct{}

func (SearchUndeleted) isSearchKey() {}

type SearchUndraft struct{}

func (SearchUndraft) isSearchKey() {}

type SearchUnflagged struct{}

func (SearchUnflagged) isSearchKey() {}

type SearchUnkeyword struct{ Flag Atom }

func (SearchUnkeyword) isSearchKey() {}

type SearchUnseen struct{}

func (SearchUnseen) isSearchKey() {}

type SearchNot struct{ Key SearchKey }

func (SearchNot) isSearchKey() {}

type SearchOr struct{ Left, Right SearchKey }

func (SearchOr) isSearchKey() {}

// SearchAnd is the implicit "(" search-key *(search-key) ")" grouping.
type SearchAnd struct{ Keys []SearchKey }

func (SearchAnd) isSearchKey() {}

type SearchSequenceSet struct{ Set SequenceSet }

func (SearchSequenceSet) isSearchKey() {}

type SearchUID struct{ Set SequenceSet }

func (SearchUID) isSearchKey() {}

// SearchModSeq is RFC 7162 CONDSTORE's search key; restored per the
// teacher's own SearchOp.Key == "MODSEQ" case.
type SearchModSeq struct{ ModSeq int64 }

func (SearchModSeq) isSearchKey() {}
