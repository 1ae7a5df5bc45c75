package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleAnswerWinsWithoutVouches(t *testing.T) {
	setup(t)
	deposit(t, hunterAddr, 10)
	qid := ask(t, 50)
	toHunt()
	a0 := submit(t, hunterAddr, qid, "1")

	slot := mustLoadSlot(qid)
	assert.Equal(t, a0, mostVouched(qid, slot))
}

func TestUniqueMaximumWins(t *testing.T) {
	setup(t)
	qid, a0, a1 := twoAnswerQuestion(t, 100)
	vouchFor(t, voucherAddr, qid, a0, 5)
	vouchFor(t, voucher2Addr, qid, a1, 7)

	slot := mustLoadSlot(qid)
	assert.Equal(t, a1, mostVouched(qid, slot))
	assert.Equal(t, "1", *GetMostVouched(qidStr(qid)))
}

func TestTieFreezesTheResult(t *testing.T) {
	setup(t)
	deposit(t, hunterAddr, 10)
	deposit(t, hunter2Addr, 10)
	deposit(t, daoAddr, 100)
	qid := askTyped(t, QuestionNumber, 100)
	toHunt()
	a0 := submit(t, hunterAddr, qid, "7")
	a1 := submit(t, hunter2Addr, qid, "8")
	a2 := submit(t, daoAddr, qid, "9")

	vouchFor(t, voucherAddr, qid, a0, 5)
	vouchFor(t, voucher2Addr, qid, a1, 5)
	// a2 outvouches both, but the earlier exact tie already froze the scan
	vouchFor(t, seekerAddr, qid, a2, 9)

	slot := mustLoadSlot(qid)
	assert.Equal(t, NoAnswer, mostVouched(qid, slot))
	assert.Equal(t, "none", *GetMostVouched(qidStr(qid)))
}

func TestTieOfZeroVouchesHasNoWinner(t *testing.T) {
	setup(t)
	qid, _, _ := twoAnswerQuestion(t, 100)

	slot := mustLoadSlot(qid)
	assert.Equal(t, NoAnswer, mostVouched(qid, slot))
}

func TestChallengerAnswersAreNotCandidates(t *testing.T) {
	setup(t)
	deposit(t, daoAddr, 100)
	qid, a0, a1 := twoAnswerQuestion(t, 100)
	vouchFor(t, voucherAddr, qid, a0, 5)
	toChallenge()
	challengeAs(t, daoAddr, qid, "0")

	slot := mustLoadSlot(qid)
	require.Equal(t, uint8(3), slot.AnswerCount)
	assert.Equal(t, a0, mostVouched(qid, slot))
	_ = a1
}

func TestAnswerValidationPerType(t *testing.T) {
	setup(t)
	deposit(t, hunterAddr, 10)

	binary := ask(t, 0)
	number := askTyped(t, QuestionNumber, 0)
	open := askTyped(t, QuestionOpenEnded, 0)
	toHunt()

	mockENV.SetSender(hunterAddr)
	expectRevert(t, ErrInvalidAnswer, func() {
		SubmitAnswer(strptr(uint64ToString(binary) + "|2"))
	})
	expectRevert(t, ErrInvalidAnswer, func() {
		SubmitAnswer(strptr(uint64ToString(number) + "|not a number"))
	})
	expectRevert(t, ErrInvalidAnswer, func() {
		SubmitAnswer(strptr(uint64ToString(open) + "|   "))
	})

	submit(t, hunterAddr, binary, "0")
	submit(t, hunterAddr, number, "42")
	submit(t, hunterAddr, open, "it rained until noon")
}

func TestNumericAnswersAreStoredCanonically(t *testing.T) {
	setup(t)
	deposit(t, hunterAddr, 10)
	qid := askTyped(t, QuestionNumber, 0)
	toHunt()
	a0 := submit(t, hunterAddr, qid, "007")
	assert.Equal(t, "7", mustLoadAnswer(qid, a0).Encoded)
}

func TestAnswerSlotCeiling(t *testing.T) {
	setup(t)
	slot := &SlotData{AnswerCount: MaxAnswerSlots}
	expectRevert(t, ErrTooManyAnswers, func() {
		appendAnswer(1, slot, &Answer{Hunter: hunterAddr, Encoded: "1"})
	})
}
