package contract

import (
	"math"

	"facthunt/sdk"
)

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for Hive transfer functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// QuestionType selects which structural validation applies to submitted answers.
type QuestionType uint8

const (
	QuestionBinary    QuestionType = 0
	QuestionNumber    QuestionType = 1
	QuestionOpenEnded QuestionType = 2
)

// String prints the question type as lower-case text for events and views.
// Example payload: QuestionBinary.String()
func (qt QuestionType) String() string {
	switch qt {
	case QuestionBinary:
		return "binary"
	case QuestionNumber:
		return "number"
	case QuestionOpenEnded:
		return "open"
	default:
		return "unknown"
	}
}

// Phase is one of the five temporal windows a question moves through.
type Phase uint8

const (
	PhaseHunt      Phase = 0
	PhaseChallenge Phase = 1
	PhaseSettle    Phase = 2
	PhaseReview    Phase = 3
	PhaseClosed    Phase = 4
)

// String prints the phase for events and views.
// Example payload: PhaseHunt.String()
func (p Phase) String() string {
	switch p {
	case PhaseHunt:
		return "hunt"
	case PhaseChallenge:
		return "challenge"
	case PhaseSettle:
		return "settle"
	case PhaseReview:
		return "review"
	default:
		return "closed"
	}
}

// Question holds the immutable creation record; everything mutable lives in SlotData.
type Question struct {
	ID           uint64
	Type         QuestionType
	Seeker       sdk.Address
	Description  string
	BountyAsset  sdk.Asset
	BountyAmount Amount
	Tx           string
}

// SlotData is the mutable phase/result record of a question.
// Finalized is monotonic, Overridden implies Challenged, and ChallengeSucceeded
// flips exactly once via an override.
type SlotData struct {
	StartHuntAt        int64
	EndHuntAt          int64
	AnswerID           uint8 // NoAnswer until a settlement decides
	Overthrown         uint8 // NoAnswer unless a successful challenge unseated an incumbent
	AnswerCount        uint8
	Challenged         bool
	ChallengeSucceeded bool
	Overridden         bool
	Finalized          bool
	DaoSettled         bool
	DaoSettler         sdk.Address
}

// Answer is one candidate resolution; only TotalVouched ever mutates.
type Answer struct {
	Hunter       sdk.Address
	Encoded      string
	ByChallenger bool
	TotalVouched Amount
}

// Fees accumulates the per-question payout splits computed at settlement time.
// Protocol and Dao are zeroed entirely by an override; VoucherPool is the base
// for lazy pro-rata voucher claims.
type Fees struct {
	Protocol        Amount
	Dao             Amount
	VoucherPool     Amount
	ProtocolClaimed bool
	DaoClaimed      bool
}

// UserLedger is the global per-user qualifying stake pool plus the list of
// question ids the user cannot withdraw against until each is finalized.
type UserLedger struct {
	Deposited Amount
	Engaged   []uint64
}

// VouchRecord tracks one user's stake behind one answer of one question.
type VouchRecord struct {
	Amount   Amount
	Claimed  bool
	Redeemed bool
}

// ContractConfig stores the three privileged roles latched at init.
type ContractConfig struct {
	Owner       sdk.Address
	Council     sdk.Address
	FeeReceiver sdk.Address
}

// SystemConfig holds stake thresholds, phase durations and the challenge cost.
type SystemConfig struct {
	MinHuntStake        Amount
	MinDaoStake         Amount
	MinVouchAmount      Amount
	HuntPeriodSecs      uint64
	ChallengePeriodSecs uint64
	SettlePeriodSecs    uint64
	ReviewPeriodSecs    uint64
	ChallengeCost       Amount
}

// DistributionConfig holds the basis-point bounty shares; the protocol share
// is the remainder up to BasisPointDenom.
type DistributionConfig struct {
	HunterBP  uint64
	VoucherBP uint64
}

// ChallengeConfig holds the slash percentages plus the DAO's review fee.
type ChallengeConfig struct {
	HunterSlashPct  uint64
	VoucherSlashPct uint64
	DaoSlashPct     uint64
	DaoReviewFeePct uint64
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }

// AssetFromString wraps a ticker string so type checking keeps us honest.
// Example payload: AssetFromString("hive")
func AssetFromString(s string) sdk.Asset { return sdk.Asset(s) }

// AssetToString unwraps the ticker string for logs or SDK calls.
// Example payload: AssetToString(AssetFromString("hbd"))
func AssetToString(a sdk.Asset) string { return a.String() }
