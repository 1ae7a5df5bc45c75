package contract

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"facthunt/sdk"
)

const (
	ownerAddr    = "hive:owner"
	councilAddr  = "hive:council"
	feeAddr      = "hive:fees"
	seekerAddr   = "hive:seeker"
	hunterAddr   = "hive:hunter.a"
	hunter2Addr  = "hive:hunter.b"
	voucherAddr  = "hive:voucher.a"
	voucher2Addr = "hive:voucher.b"
	daoAddr      = "hive:dao.judge"
)

// baseTime is the mock clock at contract init; every period is 100s in tests.
const baseTime = int64(1_000_000)

func setup(t *testing.T) {
	t.Helper()
	InitState(true)
	InitENV(true)
	InitHost(true)
	mockENV.SetUnixTime(baseTime)
	mockENV.SetSender(ownerAddr)
	ContractInit(strptr(councilAddr + "|" + feeAddr))
	// minHunt 10, minDao 100, minVouch 0.1, all periods 100s, challenge cost 5
	SetSystemConfig(strptr("10|100|0.1|100|100|100|100|5"))
	mockHost.Reset()
}

// expectRevert runs fn and asserts it reverts with the given symbol.
func expectRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected revert %q but call succeeded", symbol)
		re, ok := r.(*RevertError)
		require.True(t, ok, "expected RevertError, got %v", r)
		require.Equal(t, symbol, re.Symbol)
	}()
	fn()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ask creates a hive-bounty binary question starting immediately.
func ask(t *testing.T, bounty float64) uint64 {
	t.Helper()
	return askTyped(t, QuestionBinary, bounty)
}

func askTyped(t *testing.T, qt QuestionType, bounty float64) uint64 {
	t.Helper()
	mockENV.SetSender(seekerAddr)
	if bounty > 0 {
		mockENV.AllowTransfer(bounty, sdk.AssetHive)
	}
	res := AskQuestion(strptr(strconv.Itoa(int(qt)) + "|Did the event happen?|hive|" + fmtFloat(bounty) + "|0|0"))
	mockENV.ClearIntents()
	qid, err := strconv.ParseUint(*res, 10, 64)
	require.NoError(t, err)
	return qid
}

// deposit stakes hive into addr's global ledger.
func deposit(t *testing.T, addr string, amount float64) {
	t.Helper()
	mockENV.SetSender(addr)
	mockENV.AllowTransfer(amount, sdk.AssetHive)
	Deposit(strptr(fmtFloat(amount)))
	mockENV.ClearIntents()
}

// submit posts an answer as addr, returning the assigned slot id.
func submit(t *testing.T, addr string, qid uint64, encoded string) uint8 {
	t.Helper()
	mockENV.SetSender(addr)
	res := SubmitAnswer(strptr(strconv.FormatUint(qid, 10) + "|" + encoded))
	id, err := strconv.ParseUint(*res, 10, 8)
	require.NoError(t, err)
	return uint8(id)
}

// vouchFor stakes amount behind an answer as addr.
func vouchFor(t *testing.T, addr string, qid uint64, answerID uint8, amount float64) {
	t.Helper()
	mockENV.SetSender(addr)
	mockENV.AllowTransfer(amount, sdk.AssetHive)
	VouchAnswer(strptr(strconv.FormatUint(qid, 10) + "|" + strconv.Itoa(int(answerID)) + "|" + fmtFloat(amount)))
	mockENV.ClearIntents()
}

// challengeAs raises a challenge as addr, paying the 5 hive cost.
func challengeAs(t *testing.T, addr string, qid uint64, encoded string) uint8 {
	t.Helper()
	mockENV.SetSender(addr)
	mockENV.AllowTransfer(5, sdk.AssetHive)
	res := ChallengeQuestion(strptr(strconv.FormatUint(qid, 10) + "|" + encoded))
	mockENV.ClearIntents()
	id, err := strconv.ParseUint(*res, 10, 8)
	require.NoError(t, err)
	return uint8(id)
}

// Clock helpers: with every period at 100s the windows after baseTime are
// hunt (0,100], challenge (100,200], settle (200,300], review (300,400].

func toHunt()      { mockENV.SetUnixTime(baseTime + 10) }
func toChallenge() { mockENV.SetUnixTime(baseTime + 150) }
func toSettle()    { mockENV.SetUnixTime(baseTime + 250) }
func toReview()    { mockENV.SetUnixTime(baseTime + 350) }
func toClosed()    { mockENV.SetUnixTime(baseTime + 450) }

func qidStr(qid uint64) *string {
	return strptr(strconv.FormatUint(qid, 10))
}

// twoAnswerQuestion is the common fixture: a funded question with two staked
// hunters whose answers disagree.
func twoAnswerQuestion(t *testing.T, bounty float64) (uint64, uint8, uint8) {
	t.Helper()
	deposit(t, hunterAddr, 10)
	deposit(t, hunter2Addr, 10)
	qid := ask(t, bounty)
	toHunt()
	a0 := submit(t, hunterAddr, qid, "1")
	a1 := submit(t, hunter2Addr, qid, "0")
	return qid, a0, a1
}
