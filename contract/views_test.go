package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The JSON views carry every amount as a decimal string, the only numeric
// representation the wasm-safe writer supports.

func TestQuestionViewAmountsAreStrings(t *testing.T) {
	setup(t)
	qid := ask(t, 25)
	out := GetQuestion(qidStr(qid))
	require.NotNil(t, out)
	assert.Contains(t, *out, `"bountyAmount":"25"`)
	assert.Contains(t, *out, `"phase":"hunt"`)
	assert.Contains(t, *out, `"answerId":-1`)
}

func TestFeesViewAmountsAreStrings(t *testing.T) {
	setup(t)
	qid, a0, _ := twoAnswerQuestion(t, 100)
	vouchFor(t, voucherAddr, qid, a0, 8)
	toSettle()
	SettleQuestion(qidStr(qid))

	out := GetFees(qidStr(qid))
	require.NotNil(t, out)
	assert.Contains(t, *out, `"protocol":"10"`)
	assert.Contains(t, *out, `"voucherPool":"35"`)
	assert.Contains(t, *out, `"dao":"0"`)
}

func TestAnswerAndUserViewsRenderFractions(t *testing.T) {
	setup(t)
	qid, a0, _ := twoAnswerQuestion(t, 100)
	vouchFor(t, voucherAddr, qid, a0, 8.5)

	answers := GetAnswers(qidStr(qid))
	require.NotNil(t, answers)
	assert.Contains(t, *answers, `"totalVouched":"8.5"`)

	user := GetUserResult(strptr(uint64ToString(qid) + "|" + uint64ToString(uint64(a0)) + "|" + voucherAddr))
	require.NotNil(t, user)
	assert.Contains(t, *user, `"vouched":"8.5"`)
	assert.Contains(t, *user, `"deposited":"0"`)
}
