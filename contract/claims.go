package contract

import "facthunt/sdk"

// Payout surface. Everything here is lazy pull: settlement books amounts,
// users fetch them, and each record pays out at most once. State writes land
// before the corresponding transfer in every function.

// Deposit adds hive to the caller's global qualifying stake pool.
// Example payload: "100"
// Fields: amount
//
//go:wasmexport claims_deposit
func Deposit(payload *string) *string {
	loadContractConfig()
	p := newPayloadReader(payload)
	amount := p.nextAmount("amount")
	if amount <= 0 {
		fail("deposit must be positive", ErrInvalidPayload)
	}

	requireDraw(amount, sdk.AssetHive)

	sender := getSender()
	ledger := loadLedger(sender)
	ledger.Deposited += amount
	saveLedger(sender, ledger)

	emitDeposit(sender.String(), amount)
	return strptr("ok")
}

// Withdraw returns the caller's whole deposit, optionally to another address.
// Blocked while the caller is engaged in any question that has not finalized.
// Example payload: "hive:cold.wallet" (empty payload pays the caller)
// Fields: recipient
//
//go:wasmexport claims_withdraw
func Withdraw(payload *string) *string {
	loadContractConfig()
	sender := getSender()

	recipient := sender
	if payload != nil && *payload != "" {
		p := newPayloadReader(payload)
		recipient = p.nextAddress("recipient")
	}

	ledger := loadLedger(sender)
	requireNotEngaging(ledger)
	amount := ledger.Deposited
	if amount <= 0 {
		fail("nothing deposited", ErrNothingToClaim)
	}
	ledger.Deposited = 0
	saveLedger(sender, ledger)

	getHost().Transfer(recipient, amount, sdk.AssetHive)

	emitWithdraw(sender.String(), recipient.String(), amount)
	return strptr("ok")
}

// ClaimBounty pays out the caller's share of a finalized question. Hunters
// collect their booked claim; vouchers collect their pro-rata slice of the
// voucher pool, which a successful challenge voids entirely.
// Example payload: "1|1"
// Fields: questionId|asHunter
//
//go:wasmexport claims_claim
func ClaimBounty(payload *string) *string {
	loadContractConfig()
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	asHunter := p.nextBool("asHunter")

	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	if !slot.Finalized {
		fail("question not finalized yet", ErrNotFinalized)
	}

	sender := getSender()
	if asHunter {
		amount := hunterClaim(qid, sender)
		if amount <= 0 {
			fail("no hunter claim booked", ErrNothingToClaim)
		}
		setHunterClaim(qid, sender, 0)
		getHost().Transfer(sender, amount, q.BountyAsset)
		emitClaim(qid, sender.String(), "hunter", amount)
		return strptr("ok")
	}

	if slot.ChallengeSucceeded {
		fail("a successful challenge voids voucher rewards", ErrNothingToClaim)
	}
	if slot.AnswerID == NoAnswer {
		fail("no winning answer to have vouched for", ErrNothingToClaim)
	}
	vouch := loadVouch(qid, slot.AnswerID, sender)
	if vouch.Amount <= 0 {
		fail("no vouch behind the winning answer", ErrNothingToClaim)
	}
	if vouch.Claimed {
		fail("voucher reward already claimed", ErrAlreadyClaimed)
	}
	fees := loadFees(qid)
	winner := mustLoadAnswer(qid, slot.AnswerID)
	if fees.VoucherPool <= 0 || winner.TotalVouched <= 0 {
		fail("no voucher pool on this question", ErrNothingToClaim)
	}
	share := Amount(int64(vouch.Amount) * int64(fees.VoucherPool) / int64(winner.TotalVouched))
	vouch.Claimed = true
	saveVouch(qid, slot.AnswerID, sender, vouch)
	if share > 0 {
		getHost().Transfer(sender, share, q.BountyAsset)
	}
	emitClaim(qid, sender.String(), "voucher", share)
	return strptr("ok")
}

// RedeemVouch returns a voucher's principal after finalization. Backing the
// overthrown answer of a successful challenge costs the configured slash,
// which moves to the fee receiver.
// Example payload: "1|0"
// Fields: questionId|answerId
//
//go:wasmexport claims_redeem
func RedeemVouch(payload *string) *string {
	contractCfg := loadContractConfig()
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	answerID := p.nextAnswerID("answerId")

	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	if !slot.Finalized {
		fail("question not finalized yet", ErrNotFinalized)
	}
	if answerID >= slot.AnswerCount {
		fail("answer does not exist", ErrAnswerNotFound)
	}

	sender := getSender()
	vouch := loadVouch(qid, answerID, sender)
	if vouch.Amount <= 0 {
		fail("no vouch to redeem", ErrNothingToClaim)
	}
	if vouch.Redeemed {
		fail("vouch already redeemed", ErrAlreadyClaimed)
	}

	cut := Amount(0)
	if slot.ChallengeSucceeded && answerID == slot.Overthrown {
		challengeCfg := loadChallengeConfig()
		cut = Amount(int64(vouch.Amount) * int64(challengeCfg.VoucherSlashPct) / 100)
	}
	payout := vouch.Amount - cut
	vouch.Redeemed = true
	saveVouch(qid, answerID, sender, vouch)

	if payout > 0 {
		getHost().Transfer(sender, payout, q.BountyAsset)
	}
	if cut > 0 {
		getHost().Transfer(contractCfg.FeeReceiver, cut, q.BountyAsset)
		emitSlash(sender.String(), cut)
	}
	emitRedeem(qid, answerID, sender.String(), payout, cut)
	return strptr("ok")
}

// ClaimProtocolFee drains a finalized question's protocol fee to the fee
// receiver. Callable once per question, by the fee receiver only.
// Example payload: "1"
// Fields: questionId
//
//go:wasmexport fees_claim_protocol
func ClaimProtocolFee(payload *string) *string {
	contractCfg := loadContractConfig()
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")

	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	if getSender() != contractCfg.FeeReceiver {
		fail("only the fee receiver claims protocol fees", ErrNotFeeReceiver)
	}
	if !slot.Finalized {
		fail("question not finalized yet", ErrNotFinalized)
	}
	fees := loadFees(qid)
	if fees.ProtocolClaimed {
		fail("protocol fee already claimed", ErrAlreadyClaimed)
	}
	if fees.Protocol <= 0 {
		fail("no protocol fee booked", ErrNothingToClaim)
	}
	fees.ProtocolClaimed = true
	saveFees(qid, fees)

	getHost().Transfer(contractCfg.FeeReceiver, fees.Protocol, q.BountyAsset)

	emitClaim(qid, contractCfg.FeeReceiver.String(), "protocol", fees.Protocol)
	return strptr("ok")
}

// ClaimDaoFee drains a finalized question's DAO fee to the settler who ruled
// on it. Callable once per question, by that settler only.
// Example payload: "1"
// Fields: questionId
//
//go:wasmexport fees_claim_dao
func ClaimDaoFee(payload *string) *string {
	loadContractConfig()
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")

	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	sender := getSender()
	if !slot.DaoSettled || sender != slot.DaoSettler {
		fail("only the recorded dao settler claims this fee", ErrNotDao)
	}
	if !slot.Finalized {
		fail("question not finalized yet", ErrNotFinalized)
	}
	fees := loadFees(qid)
	if fees.DaoClaimed {
		fail("dao fee already claimed", ErrAlreadyClaimed)
	}
	if fees.Dao <= 0 {
		fail("no dao fee booked", ErrNothingToClaim)
	}
	fees.DaoClaimed = true
	saveFees(qid, fees)

	getHost().Transfer(sender, fees.Dao, q.BountyAsset)

	emitClaim(qid, sender.String(), "dao", fees.Dao)
	return strptr("ok")
}
