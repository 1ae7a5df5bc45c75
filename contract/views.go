package contract

import (
	tinyjson "github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// Read-only entry points. Responses are JSON so off-chain clients and
// indexers consume them directly.

// QuestionView flattens the meta and slot records of one question. Amounts
// are decimal strings since the wasm-safe tinyjson writer carries no float
// support.
//
//tinyjson:json
type QuestionView struct {
	ID                 uint64 `json:"id"`
	Type               string `json:"type"`
	Seeker             string `json:"seeker"`
	Description        string `json:"description"`
	BountyAsset        string `json:"bountyAsset"`
	BountyAmount       string `json:"bountyAmount"`
	StartHuntAt        int64  `json:"startHuntAt"`
	EndHuntAt          int64  `json:"endHuntAt"`
	Phase              string `json:"phase"`
	AnswerCount        uint8  `json:"answerCount"`
	AnswerID           int16  `json:"answerId"` // -1 while undecided
	Challenged         bool   `json:"challenged"`
	ChallengeSucceeded bool   `json:"challengeSucceeded"`
	Overridden         bool   `json:"overridden"`
	DaoSettled         bool   `json:"daoSettled"`
	Finalized          bool   `json:"finalized"`
}

// AnswerView is one answer row in a question's answer list.
//
//tinyjson:json
type AnswerView struct {
	ID           uint8  `json:"id"`
	Hunter       string `json:"hunter"`
	Encoded      string `json:"encoded"`
	ByChallenger bool   `json:"byChallenger"`
	TotalVouched string `json:"totalVouched"`
}

// AnswerListView wraps the dense answer list of one question.
//
//tinyjson:json
type AnswerListView struct {
	QuestionID uint64       `json:"questionId"`
	Answers    []AnswerView `json:"answers"`
}

// FeesView reports the booked fee splits of one question.
//
//tinyjson:json
type FeesView struct {
	Protocol        string `json:"protocol"`
	Dao             string `json:"dao"`
	VoucherPool     string `json:"voucherPool"`
	ProtocolClaimed bool   `json:"protocolClaimed"`
	DaoClaimed      bool   `json:"daoClaimed"`
}

// UserResultView reports everything one account holds against one question.
//
//tinyjson:json
type UserResultView struct {
	Deposited       string `json:"deposited"`
	HunterClaimable string `json:"hunterClaimable"`
	Vouched         string `json:"vouched"`
	VouchClaimed    bool   `json:"vouchClaimed"`
	VouchRedeemed   bool   `json:"vouchRedeemed"`
}

func toJSONResponse(v tinyjson.Marshaler) *string {
	w := jwriter.Writer{}
	v.MarshalTinyJSON(&w)
	if w.Error != nil {
		getHost().Abort("failed to serialize response")
	}
	return strptr(string(w.Buffer.BuildBytes()))
}

func answerIDOrNone(id uint8) int16 {
	if id == NoAnswer {
		return -1
	}
	return int16(id)
}

// GetQuestion returns the full public view of one question.
// Example payload: "1"
//
//go:wasmexport questions_get
func GetQuestion(payload *string) *string {
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	q := mustLoadQuestion(qid)
	slot := mustLoadSlot(qid)
	cfg := loadSystemConfig()
	return toJSONResponse(QuestionView{
		ID:                 q.ID,
		Type:               q.Type.String(),
		Seeker:             q.Seeker.String(),
		Description:        q.Description,
		BountyAsset:        q.BountyAsset.String(),
		BountyAmount:       amountToString(q.BountyAmount),
		StartHuntAt:        slot.StartHuntAt,
		EndHuntAt:          slot.EndHuntAt,
		Phase:              phaseAt(slot, cfg, nowUnix()).String(),
		AnswerCount:        slot.AnswerCount,
		AnswerID:           answerIDOrNone(slot.AnswerID),
		Challenged:         slot.Challenged,
		ChallengeSucceeded: slot.ChallengeSucceeded,
		Overridden:         slot.Overridden,
		DaoSettled:         slot.DaoSettled,
		Finalized:          slot.Finalized,
	})
}

// GetAnswers returns all answers of one question in submission order.
// Example payload: "1"
//
//go:wasmexport answers_get
func GetAnswers(payload *string) *string {
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	slot := mustLoadSlot(qid)
	view := AnswerListView{QuestionID: qid, Answers: []AnswerView{}}
	for i := uint8(0); i < slot.AnswerCount; i++ {
		a := mustLoadAnswer(qid, i)
		view.Answers = append(view.Answers, AnswerView{
			ID:           i,
			Hunter:       a.Hunter.String(),
			Encoded:      a.Encoded,
			ByChallenger: a.ByChallenger,
			TotalVouched: amountToString(a.TotalVouched),
		})
	}
	return toJSONResponse(view)
}

// GetPhase returns just the current phase name of one question.
// Example payload: "1"
//
//go:wasmexport questions_phase
func GetPhase(payload *string) *string {
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	slot := mustLoadSlot(qid)
	cfg := loadSystemConfig()
	return strptr(phaseAt(slot, cfg, nowUnix()).String())
}

// GetMostVouched returns the current unique most-vouched answer id, or "none".
// Example payload: "1"
//
//go:wasmexport answers_most_vouched
func GetMostVouched(payload *string) *string {
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	slot := mustLoadSlot(qid)
	winner := mostVouched(qid, slot)
	if winner == NoAnswer {
		return strptr("none")
	}
	return strptr(uint64ToString(uint64(winner)))
}

// GetFees returns the booked fee splits of one question.
// Example payload: "1"
//
//go:wasmexport fees_get
func GetFees(payload *string) *string {
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	mustLoadSlot(qid)
	fees := loadFees(qid)
	return toJSONResponse(FeesView{
		Protocol:        amountToString(fees.Protocol),
		Dao:             amountToString(fees.Dao),
		VoucherPool:     amountToString(fees.VoucherPool),
		ProtocolClaimed: fees.ProtocolClaimed,
		DaoClaimed:      fees.DaoClaimed,
	})
}

// GetUserResult reports an account's position against one question+answer.
// Example payload: "1|0|hive:alice"
// Fields: questionId|answerId|address
//
//go:wasmexport users_get_result
func GetUserResult(payload *string) *string {
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	answerID := p.nextAnswerID("answerId")
	addr := p.nextAddress("address")
	mustLoadSlot(qid)
	ledger := loadLedger(addr)
	vouch := loadVouch(qid, answerID, addr)
	return toJSONResponse(UserResultView{
		Deposited:       amountToString(ledger.Deposited),
		HunterClaimable: amountToString(hunterClaim(qid, addr)),
		Vouched:         amountToString(vouch.Amount),
		VouchClaimed:    vouch.Claimed,
		VouchRedeemed:   vouch.Redeemed,
	})
}

// CalcVouchedClaimable previews a voucher's reward share on a settled
// question without mutating anything. Returns "0" when nothing is claimable.
// Example payload: "1|hive:alice"
// Fields: questionId|address
//
//go:wasmexport calc_vouched_claimable
func CalcVouchedClaimable(payload *string) *string {
	p := newPayloadReader(payload)
	qid := p.nextUint("questionId")
	addr := p.nextAddress("address")
	slot := mustLoadSlot(qid)
	if slot.AnswerID == NoAnswer || slot.ChallengeSucceeded {
		return strptr("0")
	}
	vouch := loadVouch(qid, slot.AnswerID, addr)
	if vouch.Amount <= 0 || vouch.Claimed {
		return strptr("0")
	}
	fees := loadFees(qid)
	winner := mustLoadAnswer(qid, slot.AnswerID)
	if fees.VoucherPool <= 0 || winner.TotalVouched <= 0 {
		return strptr("0")
	}
	share := Amount(int64(vouch.Amount) * int64(fees.VoucherPool) / int64(winner.TotalVouched))
	return strptr(amountToString(share))
}

// CalcMinStakeToHunt returns the flat minimum deposit required to submit
// answers, independent of the question.
// Example payload: ""
//
//go:wasmexport calc_min_stake
func CalcMinStakeToHunt(_ *string) *string {
	cfg := loadSystemConfig()
	return strptr(amountToString(cfg.MinHuntStake))
}
