package contract

// Revert symbols surfaced to callers. Integrations branch on these, so the
// names are part of the contract surface and never change meaning.
const (
	// temporal gates
	ErrWrongPhase = "wrong_phase"

	// authorization
	ErrNotOwner       = "not_owner"
	ErrNotCouncil     = "not_council"
	ErrNotDao         = "not_dao_qualified"
	ErrNotFeeReceiver = "not_fee_receiver"

	// validation
	ErrEmptyContent        = "empty_content"
	ErrInvalidStartTime    = "invalid_start_time"
	ErrInvalidQuestionType = "invalid_question_type"
	ErrInvalidAnswer       = "invalid_answer"
	ErrInvalidAsset        = "invalid_asset"
	ErrInvalidConfig       = "invalid_config"
	ErrInvalidPayload      = "invalid_payload"
	ErrInvalidAddress      = "invalid_address"

	// economic
	ErrInsufficientStake  = "insufficient_stake"
	ErrInsufficientIntent = "insufficient_intent"
	ErrVouchTooSmall      = "vouch_too_small"
	ErrNoBounty           = "no_bounty"
	ErrNothingToClaim     = "nothing_to_claim"

	// state conflicts
	ErrTooManyAnswers      = "too_many_answers"
	ErrSingleAnswer        = "single_answer"
	ErrCannotVouchForSelf  = "cannot_vouch_for_self"
	ErrCannotChallengeSelf = "cannot_challenge_self"
	ErrSameAnswer          = "same_answer"
	ErrNoIncumbent         = "no_incumbent"
	ErrAlreadyChallenged   = "already_challenged"
	ErrNotChallenged       = "not_challenged"
	ErrAlreadyFinalized    = "already_finalized"
	ErrNotFinalized        = "not_finalized"
	ErrAlreadyDaoSettled   = "already_dao_settled"
	ErrAlreadyOverridden   = "already_overridden"
	ErrAlreadyClaimed      = "already_claimed"
	ErrAlreadyInitialized  = "already_initialized"
	ErrNotInitialized      = "not_initialized"
	ErrQuestionNotFound    = "question_not_found"
	ErrAnswerNotFound      = "answer_not_found"
	ErrOnlyWhenNotEngaging = "only_when_not_engaging"
)

// RevertError is what the mock host panics with so tests can assert symbols.
type RevertError struct {
	Symbol string
	Msg    string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}

// fail reverts the whole call with a named symbol. Never returns; the host
// Revert already panics, the trailing panic only backstops a broken host impl.
func fail(msg string, symbol string) {
	getHost().Revert(msg, symbol)
	panic(symbol)
}
