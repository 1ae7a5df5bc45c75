package contract

import "facthunt/sdk"

// Settlement paths. The direct path handles unchallenged questions; challenged
// ones run through the DAO window, the optional council override, and finally
// FinalizeQuestion, which is the only place slashes and refunds move tokens.

// distShares splits a pool into the hunter share and the voucher pool. When
// only one non-challenger answer exists the voucher share folds into the
// hunter share, since nobody could have vouched.
func distShares(pool Amount, dist *DistributionConfig, normals int) (Amount, Amount) {
	hBP := dist.HunterBP
	vBP := dist.VoucherBP
	if normals <= 1 {
		hBP += vBP
		vBP = 0
	}
	hunterShare := Amount(int64(pool) * int64(hBP) / BasisPointDenom)
	voucherPool := Amount(int64(pool) * int64(vBP) / BasisPointDenom)
	return hunterShare, voucherPool
}

// settleToWinner records the winning answer and books every split out of the
// pool. The protocol fee is the exact remainder, so the pool is conserved to
// the last unit regardless of rounding.
func settleToWinner(q *Question, slot *SlotData, fees *Fees, winner uint8, pool Amount) {
	slot.AnswerID = winner
	answer := mustLoadAnswer(q.ID, winner)
	dist := loadDistributionConfig()
	hunterShare, voucherPool := distShares(pool, dist, normalAnswerCount(q.ID, slot))
	fees.Protocol += pool - hunterShare - voucherPool
	fees.VoucherPool = voucherPool
	setHunterClaim(q.ID, answer.Hunter, hunterClaim(q.ID, answer.Hunter)+hunterShare)
}

// SettleQuestion resolves an unchallenged question once its challenge window
// has passed. With no winner the question finalizes immediately and the
// bounty returns to the seeker; otherwise the splits are booked and claims
// open. Anyone may call this.
// Example payload: "1"
// Fields: questionId
//
//go:wasmexport questions_settle
func SettleQuestion(payload *string) *string {
	loadContractConfig()
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")

	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	cfg := loadSystemConfig()
	now := nowUnix()

	if slot.Finalized {
		fail("question already finalized", ErrAlreadyFinalized)
	}
	if slot.Challenged {
		fail("challenged questions settle through the dao", ErrAlreadyChallenged)
	}

	// A winnerless question may close as soon as the hunt ends; a winner has
	// to survive the whole challenge window first.
	winner := mostVouched(qid, slot)
	fees := loadFees(qid)
	refund := Amount(0)
	if winner == NoAnswer {
		if !isAfterPhase(slot, cfg, now, PhaseHunt) {
			fail("hunt window still open", ErrWrongPhase)
		}
		refund = q.BountyAmount
	} else {
		if !isAfterPhase(slot, cfg, now, PhaseChallenge) {
			fail("challenge window still open", ErrWrongPhase)
		}
		settleToWinner(q, slot, fees, winner, q.BountyAmount)
	}
	slot.Finalized = true
	saveSlot(qid, slot)
	saveFees(qid, fees)

	if refund > 0 {
		getHost().Transfer(q.Seeker, refund, q.BountyAsset)
	}

	emitSettled(qid, slot.AnswerID)
	emitFinalized(qid, slot.AnswerID)
	return strptr("ok")
}

// SettleQuestionDAO lets any sufficiently staked account rule on a challenged
// question during the settle phase. The ruling either upholds the challenge
// (picking the final answer and booking the 50/50 protocol/dao fee split) or
// rejects it (booking the dao review fee and settling the incumbent over the
// remainder). The settler's stake engages until finalization so a council
// override can still slash it.
// Example payload: "1|2|1"
// Fields: questionId|answerId|succeeded
//
//go:wasmexport questions_settle_dao
func SettleQuestionDAO(payload *string) *string {
	loadContractConfig()
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	answerID := p.nextAnswerID("answerId")
	succeeded := p.nextBool("succeeded")

	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	cfg := loadSystemConfig()

	if slot.Finalized {
		fail("question already finalized", ErrAlreadyFinalized)
	}
	if !slot.Challenged {
		fail("only challenged questions reach the dao", ErrNotChallenged)
	}
	if slot.DaoSettled {
		fail("dao ruling already recorded", ErrAlreadyDaoSettled)
	}
	requirePhase(slot, cfg, nowUnix(), PhaseSettle)
	if answerID >= slot.AnswerCount {
		fail("answer does not exist", ErrAnswerNotFound)
	}

	sender := getSender()
	ledger := loadLedger(sender)
	requireDaoStake(ledger, cfg)

	fees := loadFees(qid)
	if succeeded {
		incumbent := mostVouched(qid, slot)
		if answerID == incumbent {
			fail("upholding a challenge cannot adopt the incumbent", ErrSameAnswer)
		}
		slot.Overthrown = incumbent
		slot.AnswerID = answerID
		slot.ChallengeSucceeded = true
		half := q.BountyAmount / 2
		fees.Protocol = half
		fees.Dao = q.BountyAmount - half
	} else {
		challengeCfg := loadChallengeConfig()
		reviewFee := Amount(int64(q.BountyAmount) * int64(challengeCfg.DaoReviewFeePct) / 100)
		fees.Dao = reviewFee
		incumbent := mostVouched(qid, slot)
		if incumbent != NoAnswer {
			settleToWinner(q, slot, fees, incumbent, q.BountyAmount-reviewFee)
		}
	}
	slot.DaoSettled = true
	slot.DaoSettler = sender
	engage(ledger, qid)
	saveSlot(qid, slot)
	saveFees(qid, fees)
	saveLedger(sender, ledger)

	emitDaoSettled(qid, answerID, succeeded, sender.String())
	return strptr("ok")
}

// OverrideSettlement lets the council reverse a DAO ruling during the review
// phase, exactly once. The override wipes both booked fees, flips the
// challenge verdict, rebuilds the claims for the final answer from the full
// bounty and marks the DAO settler for slashing at finalization.
// Example payload: "1|0"
// Fields: questionId|finalAnswerId
//
//go:wasmexport questions_override
func OverrideSettlement(payload *string) *string {
	contractCfg := loadContractConfig()
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	finalAnswerID := p.nextAnswerID("finalAnswerId")

	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	cfg := loadSystemConfig()

	if getSender() != contractCfg.Council {
		fail("only the council can override", ErrNotCouncil)
	}
	if slot.Finalized {
		fail("question already finalized", ErrAlreadyFinalized)
	}
	if !slot.Challenged {
		fail("nothing to override on an unchallenged question", ErrNotChallenged)
	}
	if !slot.DaoSettled {
		fail("no dao ruling to override", ErrNotChallenged)
	}
	if slot.Overridden {
		fail("ruling already overridden", ErrAlreadyOverridden)
	}
	requirePhase(slot, cfg, nowUnix(), PhaseReview)
	if finalAnswerID >= slot.AnswerCount {
		fail("answer does not exist", ErrAnswerNotFound)
	}

	// Undo the DAO ruling's bookings before rebuilding.
	if slot.AnswerID != NoAnswer {
		old := mustLoadAnswer(qid, slot.AnswerID)
		setHunterClaim(qid, old.Hunter, 0)
	}
	fees := loadFees(qid)
	fees.Protocol = 0
	fees.Dao = 0
	fees.VoucherPool = 0

	slot.ChallengeSucceeded = !slot.ChallengeSucceeded
	if slot.ChallengeSucceeded {
		slot.Overthrown = mostVouched(qid, slot)
	} else {
		slot.Overthrown = NoAnswer
	}
	slot.AnswerID = finalAnswerID
	slot.Overridden = true

	dist := loadDistributionConfig()
	hunterShare, voucherPool := distShares(q.BountyAmount, dist, normalAnswerCount(qid, slot))
	final := mustLoadAnswer(qid, finalAnswerID)
	setHunterClaim(qid, final.Hunter, hunterShare)
	fees.VoucherPool = voucherPool

	saveSlot(qid, slot)
	saveFees(qid, fees)

	emitOverridden(qid, finalAnswerID)
	return strptr("ok")
}

// FinalizeQuestion closes a challenged question after the review phase. If
// neither the DAO nor the council ever acted, the challenge lapses and the
// question settles as if unchallenged. All slashes happen here, strictly
// after the state writes.
// Example payload: "1"
// Fields: questionId
//
//go:wasmexport questions_finalize
func FinalizeQuestion(payload *string) *string {
	contractCfg := loadContractConfig()
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")

	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	cfg := loadSystemConfig()
	now := nowUnix()

	if slot.Finalized {
		fail("question already finalized", ErrAlreadyFinalized)
	}
	if !slot.Challenged {
		fail("unchallenged questions use the direct settlement", ErrNotChallenged)
	}
	if !isAfterPhase(slot, cfg, now, PhaseReview) {
		fail("review window still open", ErrWrongPhase)
	}

	fees := loadFees(qid)
	refund := Amount(0)
	if !slot.DaoSettled {
		// Lapsed challenge: nobody ruled, so the incumbent outcome stands.
		winner := mostVouched(qid, slot)
		if winner == NoAnswer {
			refund = q.BountyAmount
		} else {
			settleToWinner(q, slot, fees, winner, q.BountyAmount)
		}
	}
	slot.Finalized = true
	saveSlot(qid, slot)
	saveFees(qid, fees)

	challengeCfg := loadChallengeConfig()
	if slot.Overridden && slot.DaoSettler != "" {
		// The council found the DAO ruling wrong; the settler pays.
		cut := slashDeposit(slot.DaoSettler, challengeCfg.DaoSlashPct)
		if cut > 0 {
			// Deposits are always hive, so slash cuts move as hive.
			getHost().Transfer(contractCfg.FeeReceiver, cut, sdk.AssetHive)
			emitSlash(slot.DaoSettler.String(), cut)
		}
	} else if slot.ChallengeSucceeded && slot.Overthrown != NoAnswer {
		// The incumbent hunter backed a losing answer; the winner collects.
		loser := mustLoadAnswer(qid, slot.Overthrown).Hunter
		winner := mustLoadAnswer(qid, slot.AnswerID).Hunter
		cut := slashDeposit(loser, challengeCfg.HunterSlashPct)
		if cut > 0 {
			getHost().Transfer(winner, cut, sdk.AssetHive)
			emitSlash(loser.String(), cut)
		}
	}
	if refund > 0 {
		getHost().Transfer(q.Seeker, refund, q.BountyAsset)
	}

	emitFinalized(qid, slot.AnswerID)
	return strptr("ok")
}
