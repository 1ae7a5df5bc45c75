package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRoundTrip(t *testing.T) {
	q := &Question{
		ID:           42,
		Type:         QuestionOpenEnded,
		Seeker:       "hive:someone",
		Description:  "What happened on the 4th? | with a pipe in it",
		BountyAsset:  "hbd",
		BountyAmount: FloatToAmount(12.345),
		Tx:           "abcdef0123",
	}
	got, ok := decodeQuestion(encodeQuestion(q))
	require.True(t, ok)
	assert.Equal(t, q, got)
}

func TestSlotRoundTrip(t *testing.T) {
	s := &SlotData{
		StartHuntAt:        1700000000,
		EndHuntAt:          1700259200,
		AnswerID:           3,
		Overthrown:         NoAnswer,
		AnswerCount:        7,
		Challenged:         true,
		ChallengeSucceeded: true,
		Overridden:         false,
		Finalized:          true,
		DaoSettled:         true,
		DaoSettler:         "hive:judge",
	}
	got, ok := decodeSlot(encodeSlot(s))
	require.True(t, ok)
	assert.Equal(t, s, got)
}

func TestLedgerRoundTrip(t *testing.T) {
	l := &UserLedger{
		Deposited: FloatToAmount(250.5),
		Engaged:   []uint64{1, 7, 300},
	}
	got, ok := decodeLedger(encodeLedger(l))
	require.True(t, ok)
	assert.Equal(t, l, got)

	empty, ok := decodeLedger(encodeLedger(&UserLedger{}))
	require.True(t, ok)
	assert.Equal(t, Amount(0), empty.Deposited)
	assert.Empty(t, empty.Engaged)
}

func TestConfigRoundTrips(t *testing.T) {
	sys := fallbackSystemConfig()
	gotSys, ok := decodeSystemConfig(encodeSystemConfig(sys))
	require.True(t, ok)
	assert.Equal(t, sys, gotSys)

	ch := &ChallengeConfig{HunterSlashPct: 33, VoucherSlashPct: 12, DaoSlashPct: 99, DaoReviewFeePct: 1}
	gotCh, ok := decodeChallengeConfig(encodeChallengeConfig(ch))
	require.True(t, ok)
	assert.Equal(t, ch, gotCh)
}

func TestTruncatedRecordsAreRejected(t *testing.T) {
	full := encodeQuestion(&Question{ID: 1, Seeker: "hive:a", Description: "abc"})
	for cut := 0; cut < len(full); cut++ {
		_, ok := decodeQuestion(full[:cut])
		assert.False(t, ok, "truncation at %d should fail", cut)
	}
}

func TestNegativeAmountsSurvive(t *testing.T) {
	v := &VouchRecord{Amount: -5}
	got, ok := decodeVouch(encodeVouch(v))
	require.True(t, ok)
	assert.Equal(t, Amount(-5), got.Amount)
}
