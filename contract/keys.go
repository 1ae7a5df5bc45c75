package contract

import "facthunt/sdk"

// Storage keys are packed binary strings: a one-byte prefix followed by the
// fixed-width scoping fields. Keys stay short and sort by question id.

func packU64LEInline(dst []byte, v uint64) []byte {
	return append(dst,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

func questionMetaKey(id uint64) string {
	b := make([]byte, 0, 9)
	b = append(b, kQuestionMeta)
	b = packU64LEInline(b, id)
	return string(b)
}

func questionSlotKey(id uint64) string {
	b := make([]byte, 0, 9)
	b = append(b, kQuestionSlot)
	b = packU64LEInline(b, id)
	return string(b)
}

func questionFeesKey(id uint64) string {
	b := make([]byte, 0, 9)
	b = append(b, kQuestionFees)
	b = packU64LEInline(b, id)
	return string(b)
}

func answerKey(qid uint64, answerID uint8) string {
	b := make([]byte, 0, 10)
	b = append(b, kAnswer)
	b = packU64LEInline(b, qid)
	b = append(b, answerID)
	return string(b)
}

func userLedgerKey(addr sdk.Address) string {
	b := make([]byte, 0, 1+len(addr))
	b = append(b, kUserLedger)
	b = append(b, addr.String()...)
	return string(b)
}

func hunterClaimKey(qid uint64, addr sdk.Address) string {
	b := make([]byte, 0, 9+len(addr))
	b = append(b, kHunterClaim)
	b = packU64LEInline(b, qid)
	b = append(b, addr.String()...)
	return string(b)
}

func vouchKey(qid uint64, answerID uint8, addr sdk.Address) string {
	b := make([]byte, 0, 10+len(addr))
	b = append(b, kVouch)
	b = packU64LEInline(b, qid)
	b = append(b, answerID)
	b = append(b, addr.String()...)
	return string(b)
}
