package contract

import (
	"strconv"
	"strings"
)

// appendAnswer stores a new answer in the next dense slot and bumps the count.
// Reverts when the slot ceiling is hit so the sentinel stays unambiguous.
func appendAnswer(qid uint64, slot *SlotData, a *Answer) uint8 {
	if slot.AnswerCount >= MaxAnswerSlots {
		fail("answer slots exhausted", ErrTooManyAnswers)
	}
	id := slot.AnswerCount
	saveAnswer(qid, id, a)
	slot.AnswerCount++
	return id
}

// normalAnswerCount counts answers not introduced by a challenge.
func normalAnswerCount(qid uint64, slot *SlotData) int {
	n := 0
	for i := uint8(0); i < slot.AnswerCount; i++ {
		if !mustLoadAnswer(qid, i).ByChallenger {
			n++
		}
	}
	return n
}

// mostVouched scans non-challenger answers in submission order and returns the
// unique maximum by vouched stake, or NoAnswer when there is none.
//
// The tie rule is sticky: the first exact tie with the running maximum freezes
// the result at NoAnswer, and later answers never reopen it, even if one of
// them carries a larger total.
func mostVouched(qid uint64, slot *SlotData) uint8 {
	winner := NoAnswer
	best := Amount(-1)
	tied := false
	for i := uint8(0); i < slot.AnswerCount; i++ {
		a := mustLoadAnswer(qid, i)
		if a.ByChallenger {
			continue
		}
		if tied {
			continue
		}
		if a.TotalVouched > best {
			best = a.TotalVouched
			winner = i
		} else if a.TotalVouched == best {
			winner = NoAnswer
			tied = true
		}
	}
	return winner
}

// canonicalEncodedAnswer checks the submitted value against the question type
// and returns its canonical form. Numeric payloads are reprinted from the
// parsed value so equal answers always compare equal as strings ("07" and "7"
// are the same answer).
func canonicalEncodedAnswer(qt QuestionType, encoded string) string {
	switch qt {
	case QuestionBinary:
		if encoded != "0" && encoded != "1" {
			fail("binary answers must be 0 or 1", ErrInvalidAnswer)
		}
		return encoded
	case QuestionNumber:
		v, err := strconv.ParseUint(encoded, 10, 64)
		if err != nil {
			fail("numeric answers must be an unsigned integer", ErrInvalidAnswer)
		}
		return strconv.FormatUint(v, 10)
	case QuestionOpenEnded:
		if strings.TrimSpace(encoded) == "" {
			fail("open answers must not be empty", ErrInvalidAnswer)
		}
		if len(encoded) > MaxEncodedAnswerLength {
			fail("open answer too long", ErrInvalidAnswer)
		}
		return encoded
	default:
		fail("unknown question type", ErrInvalidQuestionType)
		return ""
	}
}
