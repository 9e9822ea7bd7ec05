package imapwire

func (e *encoder) writeSearchKey(k SearchKey) {
	switch v := k.(type) {
	case SearchAll:
		e.writeString("ALL")
	case SearchAnswered:
		e.writeString("ANSWERED")
	case SearchBcc:
		e.writeString("BCC ")
		e.writeNarrowestString([]byte(v.Value))
	case SearchBefore:
		e.writeString("BEFORE ")
		e.writeNaiveDate(v.Date)
	case SearchBody:
		e.writeString("BODY ")
		e.writeNarrowestString([]byte(v.Value))
	case SearchCc:
		e.writeString("CC ")
		e.writeNarrowestString([]byte(v.Value))
	case SearchDeleted:
		e.writeString("DELETED")
	case SearchDraft:
		e.writeString("DRAFT")
	case SearchFlagged:
		e.writeString("FLAGGED")
	case SearchFrom:
		e.writeString("FROM ")
		e.writeNarrowestString([]byte(v.Value))
	case SearchHeader:
		e.writeString("HEADER ")
		e.writeNarrowestString([]byte(v.Field))
		e.writeSpace()
		e.writeNarrowestString([]byte(v.Value))
	case SearchKeyword:
		e.writeString("KEYWORD ")
		e.writeAtom(v.Flag)
	case SearchLarger:
		e.writeString("LARGER ")
		e.writeUint(uint64(v.N))
	case SearchNew:
		e.writeString("NEW")
	case SearchOld:
		e.writeString("OLD")
	case SearchOn:
		e.writeString("ON ")
		e.writeNaiveDate(v.Date)
	case SearchRecent:
		e.writeString("RECENT")
	case SearchSeen:
		e.writeString("SEEN")
	case SearchSentBefore:
		e.writeString("SENTBEFORE ")
		e.writeNaiveDate(v.Date)
	case SearchSentOn:
		e.writeString("SENTON ")
		e.writeNaiveDate(v.Date)
	case SearchSentSince:
		e.writeString("SENTSINCE ")
		e.writeNaiveDate(v.Date)
	case SearchSince:
		e.writeString("SINCE ")
		e.writeNaiveDate(v.Date)
	case SearchSmaller:
		e.writeString("SMALLER ")
		e.writeUint(uint64(v.N))
	case SearchSubject:
		e.writeString("SUBJECT ")
		e.writeNarrowestString([]byte(v.Value))
	case SearchText:
		e.writeString("TEXT ")
		e.writeNarrowestString([]byte(v.Value))
	case SearchTo:
		e.writeString("TO ")
		e.writeNarrowestString([]byte(v.Value))
	case SearchUnanswered:
		e.writeString("UNANSWERED")
	case SearchUndeleted:
		e.writeString("UNDELETED")
	case SearchUndraft:
		e.writeString("UNDRAFT")
	case SearchUnflagged:
		e.writeString("UNFLAGGED")
	case SearchUnkeyword:
		e.writeString("UNKEYWORD ")
		e.writeAtom(v.Flag)
	case SearchUnseen:
		e.writeString("UNSEEN")
	case SearchNot:
		e.writeString("NOT ")
		e.writeSearchKey(v.Key)
	case SearchOr:
		e.writeString("OR ")
		e.writeSearchKey(v.Left)
		e.writeSpace()
		e.writeSearchKey(v.Right)
	case SearchAnd:
		e.writeList(len(v.Keys), func(i int) { e.writeSearchKey(v.Keys[i]) })
	case SearchSequenceSet:
		e.writeSequenceSet(v.Set)
	case SearchUID:
		e.writeString("UID ")
		e.writeSequenceSet(v.Set)
	case SearchModSeq:
		e.writeString("MODSEQ ")
		e.writeInt(v.ModSeq)
	default:
		panic("imapwire: unknown SearchKey variant")
	}
}
