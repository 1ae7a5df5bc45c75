package contract

import (
	"strconv"

	"facthunt/sdk"
)

// Load/save helpers. mustLoad variants revert with a named symbol when the
// record is absent; plain load variants return a zero value instead.

func saveQuestion(q *Question) {
	getState().Set(questionMetaKey(q.ID), encodeQuestion(q))
}

func mustLoadQuestion(id uint64) *Question {
	raw := getState().Get(questionMetaKey(id))
	if raw == nil {
		fail("question "+strconv.FormatUint(id, 10)+" does not exist", ErrQuestionNotFound)
	}
	q, ok := decodeQuestion(*raw)
	if !ok {
		getHost().Abort("corrupt question record")
	}
	return q
}

func saveSlot(id uint64, s *SlotData) {
	getState().Set(questionSlotKey(id), encodeSlot(s))
}

func mustLoadSlot(id uint64) *SlotData {
	raw := getState().Get(questionSlotKey(id))
	if raw == nil {
		fail("question "+strconv.FormatUint(id, 10)+" does not exist", ErrQuestionNotFound)
	}
	s, ok := decodeSlot(*raw)
	if !ok {
		getHost().Abort("corrupt slot record")
	}
	return s
}

func saveAnswer(qid uint64, answerID uint8, a *Answer) {
	getState().Set(answerKey(qid, answerID), encodeAnswer(a))
}

func mustLoadAnswer(qid uint64, answerID uint8) *Answer {
	raw := getState().Get(answerKey(qid, answerID))
	if raw == nil {
		fail("answer does not exist", ErrAnswerNotFound)
	}
	a, ok := decodeAnswer(*raw)
	if !ok {
		getHost().Abort("corrupt answer record")
	}
	return a
}

func saveFees(qid uint64, f *Fees) {
	getState().Set(questionFeesKey(qid), encodeFees(f))
}

func loadFees(qid uint64) *Fees {
	raw := getState().Get(questionFeesKey(qid))
	if raw == nil {
		return &Fees{}
	}
	f, ok := decodeFees(*raw)
	if !ok {
		getHost().Abort("corrupt fees record")
	}
	return f
}

func saveLedger(addr sdk.Address, l *UserLedger) {
	getState().Set(userLedgerKey(addr), encodeLedger(l))
}

func loadLedger(addr sdk.Address) *UserLedger {
	raw := getState().Get(userLedgerKey(addr))
	if raw == nil {
		return &UserLedger{}
	}
	l, ok := decodeLedger(*raw)
	if !ok {
		getHost().Abort("corrupt ledger record")
	}
	return l
}

func setHunterClaim(qid uint64, addr sdk.Address, amount Amount) {
	key := hunterClaimKey(qid, addr)
	if amount == 0 {
		getState().Delete(key)
		return
	}
	getState().Set(key, strconv.FormatInt(int64(amount), 10))
}

func hunterClaim(qid uint64, addr sdk.Address) Amount {
	raw := getState().Get(hunterClaimKey(qid, addr))
	if raw == nil {
		return 0
	}
	v, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		getHost().Abort("corrupt claim record")
	}
	return Amount(v)
}

func saveVouch(qid uint64, answerID uint8, addr sdk.Address, v *VouchRecord) {
	getState().Set(vouchKey(qid, answerID, addr), encodeVouch(v))
}

func loadVouch(qid uint64, answerID uint8, addr sdk.Address) *VouchRecord {
	raw := getState().Get(vouchKey(qid, answerID, addr))
	if raw == nil {
		return &VouchRecord{}
	}
	v, ok := decodeVouch(*raw)
	if !ok {
		getHost().Abort("corrupt vouch record")
	}
	return v
}
