package contract

import "facthunt/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// validAssets lists the supported asset types for bounties and transfers.
var validAssets = []string{
	sdk.AssetHive.String(),
	sdk.AssetHbd.String(),
	sdk.AssetHbdSavings.String(),
}

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

// -----------------------------------------------------------------------------
// Answer Slots
// -----------------------------------------------------------------------------

const (
	// MaxAnswerSlots caps the dense answer list; total slots stay under 255
	// so NoAnswer remains distinguishable from every valid index.
	MaxAnswerSlots = 254
	// NoAnswer is the reserved "no winner" sentinel.
	NoAnswer uint8 = 255
)

// -----------------------------------------------------------------------------
// Distribution
// -----------------------------------------------------------------------------

// BasisPointDenom is the denominator for all basis-point share fields.
const BasisPointDenom = 10000

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxDescriptionLength limits the size of a question description.
	MaxDescriptionLength = 2000
	// MaxEncodedAnswerLength limits the size of an open ended answer payload.
	MaxEncodedAnswerLength = 500
)

// -----------------------------------------------------------------------------
// Default/Fallback Values (seeded at contract init)
// -----------------------------------------------------------------------------

const (
	FallbackMinHuntStake        = 10.0
	FallbackMinDaoStake         = 100.0
	FallbackMinVouchAmount      = 0.1
	FallbackHuntPeriodSecs      = 259200 // 3 days
	FallbackChallengePeriodSecs = 86400  // 1 day
	FallbackSettlePeriodSecs    = 86400  // 1 day
	FallbackReviewPeriodSecs    = 172800 // 2 days
	FallbackChallengeCost       = 5.0
	FallbackHunterBP            = 5500
	FallbackVoucherBP           = 3500
	FallbackHunterSlashPct      = 50
	FallbackVoucherSlashPct     = 25
	FallbackDaoSlashPct         = 50
	FallbackDaoReviewFeePct     = 10
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// QuestionsCount holds an integer counter for questions (used for generating ids).
	QuestionsCount = "count:q"
)

// -----------------------------------------------------------------------------
// Config Keys
// -----------------------------------------------------------------------------

const (
	// ContractConfigKey stores the encoded ContractConfig (owner/council/fee receiver).
	ContractConfigKey = "cfg:contract"
	// SystemConfigKey stores the encoded SystemConfig.
	SystemConfigKey = "cfg:system"
	// DistributionConfigKey stores the encoded DistributionConfig.
	DistributionConfigKey = "cfg:dist"
	// ChallengeConfigKey stores the encoded ChallengeConfig.
	ChallengeConfigKey = "cfg:challenge"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kQuestionMeta stores the immutable Question record.
	kQuestionMeta byte = 0x01
	// kQuestionSlot stores the mutable SlotData record so phase updates touch fewer bytes.
	kQuestionSlot byte = 0x02
	// kQuestionFees tracks the per-question fee accumulators.
	kQuestionFees byte = 0x03
	// kAnswer houses encoded Answer structs (question scoped, dense index).
	kAnswer byte = 0x10
	// kUserLedger stores the global deposit pool plus engagement list per user.
	kUserLedger byte = 0x20
	// kHunterClaim stores the bounty share owed to a hunter for one question.
	kHunterClaim byte = 0x21
	// kVouch stores a voucher's stake record per question+answer.
	kVouch byte = 0x22
)
