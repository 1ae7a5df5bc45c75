package contract

import (
	"strings"
)

// AskQuestion creates a new question. The bounty is drawn from the seeker's
// transfer.allow intent up front; a zero bounty is allowed and simply skips
// the draw. The hunt may start now or at a declared future instant.
// Example payload: "0|Did it rain in Graz on 2025-06-01?|hive|25|0|3600"
// Fields: type|description|asset|bounty|startHuntAt|extraHuntSecs
// (startHuntAt of 0 means now; extraHuntSecs stretches the hunt window)
//
//go:wasmexport questions_ask
func AskQuestion(payload *string) *string {
	loadContractConfig()
	p := newPayloadReader(payload)

	qType := p.nextUint("type")
	if qType > uint64(QuestionOpenEnded) {
		fail("unknown question type", ErrInvalidQuestionType)
	}
	description := strings.TrimSpace(p.next("description"))
	if description == "" {
		fail("description must not be empty", ErrEmptyContent)
	}
	if len(description) > MaxDescriptionLength {
		fail("description too long", ErrEmptyContent)
	}
	asset := AssetFromString(p.next("asset"))
	if !isValidAsset(asset) {
		fail("unsupported bounty asset", ErrInvalidAsset)
	}
	bounty := p.nextAmount("bounty")

	now := nowUnix()
	startHuntAt := p.nextInt("startHuntAt")
	if startHuntAt == 0 {
		startHuntAt = now
	}
	if startHuntAt < now {
		fail("hunt start lies in the past", ErrInvalidStartTime)
	}
	extraHuntSecs := p.nextUint("extraHuntSecs")

	if bounty > 0 {
		requireDraw(bounty, asset)
	}

	env := getENV().GetEnv()
	id := getCount(QuestionsCount) + 1
	setCount(QuestionsCount, id)

	q := &Question{
		ID:           id,
		Type:         QuestionType(qType),
		Seeker:       env.Sender.Address,
		Description:  description,
		BountyAsset:  asset,
		BountyAmount: bounty,
		Tx:           env.TxId,
	}
	cfg := loadSystemConfig()
	slot := &SlotData{
		StartHuntAt: startHuntAt,
		EndHuntAt:   startHuntAt + int64(cfg.HuntPeriodSecs) + int64(extraHuntSecs),
		AnswerID:    NoAnswer,
		Overthrown:  NoAnswer,
	}
	saveQuestion(q)
	saveSlot(id, slot)

	emitQuestionAsked(id, q.Seeker.String(), bounty)
	return strptr(uint64ToString(id))
}

// SubmitAnswer records a hunter's candidate resolution during the hunt phase.
// The hunter must already hold the minimum qualifying deposit, which becomes
// engaged (and slashable) against this question until it finalizes.
// Example payload: "1|1"
// Fields: questionId|encodedAnswer
//
//go:wasmexport answers_submit
func SubmitAnswer(payload *string) *string {
	loadContractConfig()
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	encoded := p.next("encodedAnswer")

	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	cfg := loadSystemConfig()
	requirePhase(slot, cfg, nowUnix(), PhaseHunt)

	sender := getSender()
	ledger := loadLedger(sender)
	requireHunterStake(ledger, cfg)
	encoded = canonicalEncodedAnswer(q.Type, encoded)

	id := appendAnswer(qid, slot, &Answer{Hunter: sender, Encoded: encoded})
	engage(ledger, qid)
	saveSlot(qid, slot)
	saveLedger(sender, ledger)

	emitAnswerSubmitted(qid, id, sender.String())
	return strptr(uint64ToString(uint64(id)))
}

// VouchAnswer stakes funds behind an existing answer during the hunt phase.
// Only meaningful on bounty questions with a real contest: a single answer
// wins unconditionally, so vouching opens once a second answer exists.
// Example payload: "1|0|2.5"
// Fields: questionId|answerId|amount
//
//go:wasmexport answers_vouch
func VouchAnswer(payload *string) *string {
	loadContractConfig()
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	answerID := p.nextAnswerID("answerId")
	amount := p.nextAmount("amount")

	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	cfg := loadSystemConfig()
	requirePhase(slot, cfg, nowUnix(), PhaseHunt)

	if q.BountyAmount <= 0 {
		fail("vouching needs a bounty at stake", ErrNoBounty)
	}
	if amount < cfg.MinVouchAmount {
		fail("vouch below the configured minimum", ErrVouchTooSmall)
	}
	if slot.AnswerCount < 2 {
		fail("vouching opens once a second answer exists", ErrSingleAnswer)
	}
	if answerID >= slot.AnswerCount {
		fail("answer does not exist", ErrAnswerNotFound)
	}
	sender := getSender()
	answer := mustLoadAnswer(qid, answerID)
	if answer.Hunter == sender {
		fail("hunters cannot vouch for their own answer", ErrCannotVouchForSelf)
	}

	requireDraw(amount, q.BountyAsset)

	vouch := loadVouch(qid, answerID, sender)
	vouch.Amount += amount
	answer.TotalVouched += amount
	ledger := loadLedger(sender)
	engage(ledger, qid)
	saveVouch(qid, answerID, sender, vouch)
	saveAnswer(qid, answerID, answer)
	saveLedger(sender, ledger)

	emitVouchPlaced(qid, answerID, sender.String(), amount)
	return strptr("ok")
}
