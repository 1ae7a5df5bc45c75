package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facthunt/sdk"
)

const judgeAddr = "hive:judge"

// daoSettledQuestion extends challengedQuestion with a staked settler ruling
// on the dispute during the settle phase.
func daoSettledQuestion(t *testing.T, bounty float64, succeeded bool) (uint64, uint8, uint8) {
	t.Helper()
	qid, a0, challengerID := challengedQuestion(t, bounty)
	deposit(t, judgeAddr, 100)
	toSettle()
	mockENV.SetSender(judgeAddr)
	verdict := "0"
	ruled := a0
	if succeeded {
		verdict = "1"
		ruled = challengerID
	}
	SettleQuestionDAO(strptr(uint64ToString(qid) + "|" + uint64ToString(uint64(ruled)) + "|" + verdict))
	return qid, a0, challengerID
}

func TestDirectSettleSplitsTheBounty(t *testing.T) {
	setup(t)
	qid, a0, _ := twoAnswerQuestion(t, 100)
	vouchFor(t, voucherAddr, qid, a0, 8)
	toSettle()
	SettleQuestion(qidStr(qid))

	slot := mustLoadSlot(qid)
	require.True(t, slot.Finalized)
	require.Equal(t, a0, slot.AnswerID)

	fees := loadFees(qid)
	assert.Equal(t, FloatToAmount(55), hunterClaim(qid, hunterAddr))
	assert.Equal(t, FloatToAmount(35), fees.VoucherPool)
	assert.Equal(t, FloatToAmount(10), fees.Protocol)
	assert.Equal(t, Amount(0), fees.Dao)

	// conservation: every booked piece sums back to the bounty
	total := hunterClaim(qid, hunterAddr) + fees.VoucherPool + fees.Protocol + fees.Dao
	assert.Equal(t, FloatToAmount(100), total)
}

func TestDirectSettleSingleAnswerFoldsVoucherShare(t *testing.T) {
	setup(t)
	deposit(t, hunterAddr, 10)
	qid := ask(t, 100)
	toHunt()
	submit(t, hunterAddr, qid, "1")
	toSettle()
	SettleQuestion(qidStr(qid))

	fees := loadFees(qid)
	assert.Equal(t, FloatToAmount(90), hunterClaim(qid, hunterAddr))
	assert.Equal(t, Amount(0), fees.VoucherPool)
	assert.Equal(t, FloatToAmount(10), fees.Protocol)
}

func TestDirectSettleNoWinnerRefundsSeeker(t *testing.T) {
	setup(t)
	qid, _, _ := twoAnswerQuestion(t, 100) // zero-vouch tie
	toSettle()
	mockHost.Reset()
	SettleQuestion(qidStr(qid))

	slot := mustLoadSlot(qid)
	assert.True(t, slot.Finalized)
	assert.Equal(t, NoAnswer, slot.AnswerID)
	assert.Equal(t, FloatToAmount(100), mockHost.TotalTransferredTo(seekerAddr, sdk.AssetHive))
}

func TestWinnerlessQuestionSettlesRightAfterHunt(t *testing.T) {
	setup(t)
	qid, _, _ := twoAnswerQuestion(t, 100) // zero-vouch tie
	toChallenge()
	SettleQuestion(qidStr(qid))
	assert.True(t, mustLoadSlot(qid).Finalized)

	// a finalized question cannot be challenged anymore
	deposit(t, daoAddr, 100)
	mockENV.SetSender(daoAddr)
	mockENV.AllowTransfer(5, sdk.AssetHive)
	expectRevert(t, ErrAlreadyFinalized, func() {
		ChallengeQuestion(strptr(uint64ToString(qid) + "|0"))
	})
}

func TestDirectSettleGates(t *testing.T) {
	setup(t)
	qid, a0, _ := twoAnswerQuestion(t, 100)
	vouchFor(t, voucherAddr, qid, a0, 8)

	// challenge window still open
	expectRevert(t, ErrWrongPhase, func() {
		SettleQuestion(qidStr(qid))
	})

	toSettle()
	SettleQuestion(qidStr(qid))
	expectRevert(t, ErrAlreadyFinalized, func() {
		SettleQuestion(qidStr(qid))
	})
}

func TestDirectSettleRejectsChallenged(t *testing.T) {
	setup(t)
	qid, _, _ := challengedQuestion(t, 100)
	toSettle()
	expectRevert(t, ErrAlreadyChallenged, func() {
		SettleQuestion(qidStr(qid))
	})
}

func TestDaoSettleSuccess(t *testing.T) {
	setup(t)
	qid, a0, challengerID := daoSettledQuestion(t, 100, true)

	slot := mustLoadSlot(qid)
	assert.True(t, slot.DaoSettled)
	assert.True(t, slot.ChallengeSucceeded)
	assert.False(t, slot.Finalized)
	assert.Equal(t, challengerID, slot.AnswerID)
	assert.Equal(t, a0, slot.Overthrown)
	assert.Equal(t, sdk.Address(judgeAddr), slot.DaoSettler)

	fees := loadFees(qid)
	assert.Equal(t, FloatToAmount(50), fees.Protocol)
	assert.Equal(t, FloatToAmount(50), fees.Dao)
	assert.Equal(t, Amount(0), fees.VoucherPool)
}

func TestDaoSuccessCannotAdoptTheIncumbent(t *testing.T) {
	setup(t)
	qid, a0, _ := challengedQuestion(t, 100)
	deposit(t, judgeAddr, 100)
	toSettle()
	mockENV.SetSender(judgeAddr)
	expectRevert(t, ErrSameAnswer, func() {
		SettleQuestionDAO(strptr(uint64ToString(qid) + "|" + uint64ToString(uint64(a0)) + "|1"))
	})
}

func TestDaoSettleFailure(t *testing.T) {
	setup(t)
	qid, a0, _ := daoSettledQuestion(t, 100, false)

	slot := mustLoadSlot(qid)
	assert.True(t, slot.DaoSettled)
	assert.False(t, slot.ChallengeSucceeded)
	assert.Equal(t, a0, slot.AnswerID)

	// 10% review fee to the dao, the rest settles to the incumbent
	fees := loadFees(qid)
	assert.Equal(t, FloatToAmount(10), fees.Dao)
	assert.Equal(t, FloatToAmount(49.5), hunterClaim(qid, hunterAddr))
	assert.Equal(t, FloatToAmount(31.5), fees.VoucherPool)
	assert.Equal(t, FloatToAmount(9), fees.Protocol)

	total := fees.Dao + fees.Protocol + fees.VoucherPool + hunterClaim(qid, hunterAddr)
	assert.Equal(t, FloatToAmount(100), total)
}

func TestDaoSettleGates(t *testing.T) {
	setup(t)
	qid, _, challengerID := challengedQuestion(t, 100)
	deposit(t, judgeAddr, 100)
	payload := uint64ToString(qid) + "|" + uint64ToString(uint64(challengerID)) + "|1"

	// settle window not open yet
	mockENV.SetSender(judgeAddr)
	expectRevert(t, ErrWrongPhase, func() {
		SettleQuestionDAO(strptr(payload))
	})

	toSettle()
	// under-staked callers cannot rule
	mockENV.SetSender(voucher2Addr)
	expectRevert(t, ErrNotDao, func() {
		SettleQuestionDAO(strptr(payload))
	})

	mockENV.SetSender(judgeAddr)
	SettleQuestionDAO(strptr(payload))
	expectRevert(t, ErrAlreadyDaoSettled, func() {
		SettleQuestionDAO(strptr(payload))
	})
}

func TestDaoSettleOnlyForChallenged(t *testing.T) {
	setup(t)
	qid, a0, _ := twoAnswerQuestion(t, 100)
	vouchFor(t, voucherAddr, qid, a0, 8)
	deposit(t, judgeAddr, 100)
	toSettle()
	mockENV.SetSender(judgeAddr)
	expectRevert(t, ErrNotChallenged, func() {
		SettleQuestionDAO(strptr(uint64ToString(qid) + "|0|1"))
	})
}

func TestOverrideFlipsTheVerdictOnce(t *testing.T) {
	setup(t)
	qid, a0, _ := daoSettledQuestion(t, 100, true)
	toReview()
	mockENV.SetSender(councilAddr)
	OverrideSettlement(strptr(uint64ToString(qid) + "|" + uint64ToString(uint64(a0))))

	slot := mustLoadSlot(qid)
	assert.True(t, slot.Overridden)
	assert.False(t, slot.ChallengeSucceeded) // flipped back
	assert.Equal(t, a0, slot.AnswerID)
	assert.Equal(t, NoAnswer, slot.Overthrown)

	// both booked fees are wiped, claims rebuilt from the full bounty
	fees := loadFees(qid)
	assert.Equal(t, Amount(0), fees.Protocol)
	assert.Equal(t, Amount(0), fees.Dao)
	assert.Equal(t, FloatToAmount(35), fees.VoucherPool)
	assert.Equal(t, FloatToAmount(55), hunterClaim(qid, hunterAddr))

	expectRevert(t, ErrAlreadyOverridden, func() {
		OverrideSettlement(strptr(uint64ToString(qid) + "|" + uint64ToString(uint64(a0))))
	})
}

func TestOverrideAuthorization(t *testing.T) {
	setup(t)
	qid, a0, _ := daoSettledQuestion(t, 100, true)
	toReview()
	mockENV.SetSender(ownerAddr)
	expectRevert(t, ErrNotCouncil, func() {
		OverrideSettlement(strptr(uint64ToString(qid) + "|" + uint64ToString(uint64(a0))))
	})
}

func TestOverrideNeedsADaoRuling(t *testing.T) {
	setup(t)
	qid, a0, _ := challengedQuestion(t, 100)
	toReview()
	mockENV.SetSender(councilAddr)
	expectRevert(t, ErrNotChallenged, func() {
		OverrideSettlement(strptr(uint64ToString(qid) + "|" + uint64ToString(uint64(a0))))
	})
}

func TestFinalizeSlashesOverriddenSettler(t *testing.T) {
	setup(t)
	qid, a0, _ := daoSettledQuestion(t, 100, true)
	toReview()
	mockENV.SetSender(councilAddr)
	OverrideSettlement(strptr(uint64ToString(qid) + "|" + uint64ToString(uint64(a0))))

	toClosed()
	mockHost.Reset()
	FinalizeQuestion(qidStr(qid))

	// 50% of the settler's 100 hive deposit moves to the fee receiver
	assert.Equal(t, FloatToAmount(50), loadLedger(judgeAddr).Deposited)
	assert.Equal(t, FloatToAmount(50), mockHost.TotalTransferredTo(feeAddr, sdk.AssetHive))
	assert.True(t, mustLoadSlot(qid).Finalized)
}

func TestFinalizeSlashesOverthrownHunter(t *testing.T) {
	setup(t)
	qid, _, _ := daoSettledQuestion(t, 100, true)
	toClosed()
	mockHost.Reset()
	FinalizeQuestion(qidStr(qid))

	// the incumbent's hunter loses half the 10 hive stake to the challenger
	assert.Equal(t, FloatToAmount(5), loadLedger(hunterAddr).Deposited)
	assert.Equal(t, FloatToAmount(5), mockHost.TotalTransferredTo(daoAddr, sdk.AssetHive))
}

func TestFinalizeLapsedChallengeSettlesIncumbent(t *testing.T) {
	setup(t)
	qid, a0, _ := challengedQuestion(t, 100)
	toClosed()
	FinalizeQuestion(qidStr(qid))

	slot := mustLoadSlot(qid)
	assert.True(t, slot.Finalized)
	assert.Equal(t, a0, slot.AnswerID)
	assert.False(t, slot.ChallengeSucceeded)

	fees := loadFees(qid)
	assert.Equal(t, FloatToAmount(55), hunterClaim(qid, hunterAddr))
	assert.Equal(t, FloatToAmount(35), fees.VoucherPool)
	assert.Equal(t, FloatToAmount(10), fees.Protocol)
}

func TestFinalizationIsMonotonic(t *testing.T) {
	setup(t)
	qid, a0, challengerID := daoSettledQuestion(t, 100, true)
	toClosed()
	FinalizeQuestion(qidStr(qid))

	expectRevert(t, ErrAlreadyFinalized, func() {
		FinalizeQuestion(qidStr(qid))
	})
	mockENV.SetSender(judgeAddr)
	expectRevert(t, ErrAlreadyFinalized, func() {
		SettleQuestionDAO(strptr(uint64ToString(qid) + "|" + uint64ToString(uint64(challengerID)) + "|0"))
	})
	mockENV.SetSender(councilAddr)
	expectRevert(t, ErrAlreadyFinalized, func() {
		OverrideSettlement(strptr(uint64ToString(qid) + "|" + uint64ToString(uint64(a0))))
	})
}

func TestFinalizeGates(t *testing.T) {
	setup(t)
	qid, _, _ := daoSettledQuestion(t, 100, true)

	// review window still open
	toReview()
	expectRevert(t, ErrWrongPhase, func() {
		FinalizeQuestion(qidStr(qid))
	})

	// unchallenged questions never take this path
	qid2 := ask(t, 0)
	toClosed()
	expectRevert(t, ErrNotChallenged, func() {
		FinalizeQuestion(qidStr(qid2))
	})
}
