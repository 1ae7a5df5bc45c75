package contract

// Phase boundaries derive from the slot's hunt window plus the configured
// period lengths. Boundary instants belong to the earlier phase, so every
// timestamp maps to exactly one phase.

// phaseEnd returns the unix second at which the given phase ends.
func phaseEnd(slot *SlotData, cfg *SystemConfig, p Phase) int64 {
	end := slot.EndHuntAt
	if p >= PhaseChallenge {
		end += int64(cfg.ChallengePeriodSecs)
	}
	if p >= PhaseSettle {
		end += int64(cfg.SettlePeriodSecs)
	}
	if p >= PhaseReview {
		end += int64(cfg.ReviewPeriodSecs)
	}
	return end
}

// phaseAt maps a timestamp to the phase it falls in. Instants at or before the
// hunt end count as hunt even when they precede the hunt start; action gates
// additionally check the start separately.
func phaseAt(slot *SlotData, cfg *SystemConfig, now int64) Phase {
	switch {
	case now <= phaseEnd(slot, cfg, PhaseHunt):
		return PhaseHunt
	case now <= phaseEnd(slot, cfg, PhaseChallenge):
		return PhaseChallenge
	case now <= phaseEnd(slot, cfg, PhaseSettle):
		return PhaseSettle
	case now <= phaseEnd(slot, cfg, PhaseReview):
		return PhaseReview
	default:
		return PhaseClosed
	}
}

// requirePhase reverts unless now falls inside the given phase. The hunt phase
// additionally requires the hunt to have started.
func requirePhase(slot *SlotData, cfg *SystemConfig, now int64, p Phase) {
	if phaseAt(slot, cfg, now) != p {
		fail("question is not in the "+p.String()+" phase", ErrWrongPhase)
	}
	if p == PhaseHunt && now <= slot.StartHuntAt {
		fail("hunt has not started yet", ErrWrongPhase)
	}
}

// isAfterPhase reports whether the given phase has fully elapsed.
func isAfterPhase(slot *SlotData, cfg *SystemConfig, now int64, p Phase) bool {
	return now > phaseEnd(slot, cfg, p)
}
