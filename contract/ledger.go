package contract

import (
	"strconv"

	"facthunt/sdk"
)

// The user ledger is the single qualifying deposit pool per account. Taking a
// role in a question engages the ledger against that question until the
// question finalizes, which is what makes the stake slashable.

// engage records qid in the ledger's engagement list (idempotent).
func engage(l *UserLedger, qid uint64) {
	for _, e := range l.Engaged {
		if e == qid {
			return
		}
	}
	l.Engaged = append(l.Engaged, qid)
}

// requireNotEngaging reverts while any engaged question is still open;
// otherwise the list is spent and gets cleared.
func requireNotEngaging(l *UserLedger) {
	for _, qid := range l.Engaged {
		if !mustLoadSlot(qid).Finalized {
			fail("still engaged in question "+strconv.FormatUint(qid, 10), ErrOnlyWhenNotEngaging)
		}
	}
	l.Engaged = nil
}

// requireHunterStake gates answer submission on the configured minimum.
func requireHunterStake(l *UserLedger, cfg *SystemConfig) {
	if l.Deposited < cfg.MinHuntStake {
		fail("deposit below the minimum hunting stake", ErrInsufficientStake)
	}
}

// requireDaoStake gates DAO settlement on the configured minimum.
func requireDaoStake(l *UserLedger, cfg *SystemConfig) {
	if l.Deposited < cfg.MinDaoStake {
		fail("deposit below the minimum dao stake", ErrNotDao)
	}
}

// slashDeposit removes pct percent of addr's deposit and returns the cut.
// The ledger write happens here; moving the cut is the caller's job and must
// come after all state writes.
func slashDeposit(addr sdk.Address, pct uint64) Amount {
	l := loadLedger(addr)
	cut := Amount(int64(l.Deposited) * int64(pct) / 100)
	if cut <= 0 {
		return 0
	}
	l.Deposited -= cut
	saveLedger(addr, l)
	return cut
}
