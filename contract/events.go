package contract

import "strconv"

// Events are terse pipe-delimited log lines. Indexers parse these, so formats
// only ever gain fields at the end.

func emitInit(owner string, council string, feeReceiver string) {
	getHost().Log("ci|owner:" + owner + "|council:" + council + "|fee:" + feeReceiver)
}

func emitConfigUpdated(which string) {
	getHost().Log("cu|" + which)
}

func emitQuestionAsked(qid uint64, seeker string, bounty Amount) {
	getHost().Log("qa|id:" + uint64ToString(qid) + "|by:" + seeker + "|bounty:" + amountToString(bounty))
}

func emitAnswerSubmitted(qid uint64, answerID uint8, hunter string) {
	getHost().Log("as|id:" + uint64ToString(qid) + "|a:" + strconv.Itoa(int(answerID)) + "|by:" + hunter)
}

func emitVouchPlaced(qid uint64, answerID uint8, voucher string, amount Amount) {
	getHost().Log("av|id:" + uint64ToString(qid) + "|a:" + strconv.Itoa(int(answerID)) + "|by:" + voucher + "|amt:" + amountToString(amount))
}

func emitChallengeRaised(qid uint64, answerID uint8, challenger string) {
	getHost().Log("qc|id:" + uint64ToString(qid) + "|a:" + strconv.Itoa(int(answerID)) + "|by:" + challenger)
}

func emitSettled(qid uint64, answerID uint8) {
	a := "none"
	if answerID != NoAnswer {
		a = strconv.Itoa(int(answerID))
	}
	getHost().Log("qs|id:" + uint64ToString(qid) + "|a:" + a)
}

func emitDaoSettled(qid uint64, answerID uint8, succeeded bool, settler string) {
	s := "0"
	if succeeded {
		s = "1"
	}
	getHost().Log("qd|id:" + uint64ToString(qid) + "|a:" + strconv.Itoa(int(answerID)) + "|ok:" + s + "|by:" + settler)
}

func emitOverridden(qid uint64, answerID uint8) {
	getHost().Log("qo|id:" + uint64ToString(qid) + "|a:" + strconv.Itoa(int(answerID)))
}

func emitFinalized(qid uint64, answerID uint8) {
	a := "none"
	if answerID != NoAnswer {
		a = strconv.Itoa(int(answerID))
	}
	getHost().Log("qf|id:" + uint64ToString(qid) + "|a:" + a)
}

func emitSlash(who string, amount Amount) {
	getHost().Log("sl|who:" + who + "|amt:" + amountToString(amount))
}

func emitDeposit(who string, amount Amount) {
	getHost().Log("dp|who:" + who + "|amt:" + amountToString(amount))
}

func emitWithdraw(who string, to string, amount Amount) {
	getHost().Log("wd|who:" + who + "|to:" + to + "|amt:" + amountToString(amount))
}

func emitClaim(qid uint64, who string, kind string, amount Amount) {
	getHost().Log("cl|id:" + uint64ToString(qid) + "|who:" + who + "|kind:" + kind + "|amt:" + amountToString(amount))
}

func emitRedeem(qid uint64, answerID uint8, who string, amount Amount, slashed Amount) {
	getHost().Log("rd|id:" + uint64ToString(qid) + "|a:" + strconv.Itoa(int(answerID)) + "|who:" + who + "|amt:" + amountToString(amount) + "|cut:" + amountToString(slashed))
}
