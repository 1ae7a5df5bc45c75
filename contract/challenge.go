package contract

// ChallengeQuestion disputes the incumbent answer during the challenge phase.
// The challenger posts their own answer, pays the non-refundable challenge
// cost and must hold the hunter stake, which becomes engaged and slashable.
// At most one challenge per question.
//
// A most-vouched incumbent must exist, except on zero-bounty questions where
// a challenge may also target an empty or single-answer outcome.
// Example payload: "1|0"
// Fields: questionId|encodedAnswer
//
//go:wasmexport questions_challenge
func ChallengeQuestion(payload *string) *string {
	contractCfg := loadContractConfig()
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	encoded := p.next("encodedAnswer")

	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	cfg := loadSystemConfig()
	requirePhase(slot, cfg, nowUnix(), PhaseChallenge)

	if slot.Finalized {
		fail("question already finalized", ErrAlreadyFinalized)
	}
	if slot.Challenged {
		fail("question already challenged", ErrAlreadyChallenged)
	}

	sender := getSender()
	encoded = canonicalEncodedAnswer(q.Type, encoded)
	incumbent := mostVouched(qid, slot)
	if incumbent == NoAnswer && q.BountyAmount > 0 {
		fail("nothing to challenge without an incumbent", ErrNoIncumbent)
	}
	if incumbent != NoAnswer {
		inc := mustLoadAnswer(qid, incumbent)
		if inc.Hunter == sender {
			fail("hunters cannot challenge their own answer", ErrCannotChallengeSelf)
		}
		// stored answers are canonical, so string equality means the same answer
		if inc.Encoded == encoded {
			fail("challenge must propose a different answer", ErrSameAnswer)
		}
	}

	ledger := loadLedger(sender)
	requireHunterStake(ledger, cfg)

	// The challenge cost is sunk immediately, win or lose.
	requireDraw(cfg.ChallengeCost, q.BountyAsset)

	id := appendAnswer(qid, slot, &Answer{Hunter: sender, Encoded: encoded, ByChallenger: true})
	slot.Challenged = true
	engage(ledger, qid)
	saveSlot(qid, slot)
	saveLedger(sender, ledger)

	getHost().Transfer(contractCfg.FeeReceiver, cfg.ChallengeCost, q.BountyAsset)

	emitChallengeRaised(qid, id, sender.String())
	return strptr(uint64ToString(uint64(id)))
}
