package contract

// Config lifecycle: contract_init latches the three roles and seeds fallback
// values for every tunable. The owner can replace each config group later,
// full group at a time so partially applied updates cannot happen.

func loadContractConfig() *ContractConfig {
	raw := getState().Get(ContractConfigKey)
	if raw == nil {
		fail("contract is not initialized", ErrNotInitialized)
	}
	c, ok := decodeContractConfig(*raw)
	if !ok {
		getHost().Abort("corrupt contract config")
	}
	return c
}

func loadSystemConfig() *SystemConfig {
	raw := getState().Get(SystemConfigKey)
	if raw == nil {
		return fallbackSystemConfig()
	}
	c, ok := decodeSystemConfig(*raw)
	if !ok {
		getHost().Abort("corrupt system config")
	}
	return c
}

func loadDistributionConfig() *DistributionConfig {
	raw := getState().Get(DistributionConfigKey)
	if raw == nil {
		return fallbackDistributionConfig()
	}
	c, ok := decodeDistributionConfig(*raw)
	if !ok {
		getHost().Abort("corrupt distribution config")
	}
	return c
}

func loadChallengeConfig() *ChallengeConfig {
	raw := getState().Get(ChallengeConfigKey)
	if raw == nil {
		return fallbackChallengeConfig()
	}
	c, ok := decodeChallengeConfig(*raw)
	if !ok {
		getHost().Abort("corrupt challenge config")
	}
	return c
}

func fallbackSystemConfig() *SystemConfig {
	return &SystemConfig{
		MinHuntStake:        FloatToAmount(FallbackMinHuntStake),
		MinDaoStake:         FloatToAmount(FallbackMinDaoStake),
		MinVouchAmount:      FloatToAmount(FallbackMinVouchAmount),
		HuntPeriodSecs:      FallbackHuntPeriodSecs,
		ChallengePeriodSecs: FallbackChallengePeriodSecs,
		SettlePeriodSecs:    FallbackSettlePeriodSecs,
		ReviewPeriodSecs:    FallbackReviewPeriodSecs,
		ChallengeCost:       FloatToAmount(FallbackChallengeCost),
	}
}

func fallbackDistributionConfig() *DistributionConfig {
	return &DistributionConfig{
		HunterBP:  FallbackHunterBP,
		VoucherBP: FallbackVoucherBP,
	}
}

func fallbackChallengeConfig() *ChallengeConfig {
	return &ChallengeConfig{
		HunterSlashPct:  FallbackHunterSlashPct,
		VoucherSlashPct: FallbackVoucherSlashPct,
		DaoSlashPct:     FallbackDaoSlashPct,
		DaoReviewFeePct: FallbackDaoReviewFeePct,
	}
}

func requireOwner() *ContractConfig {
	cfg := loadContractConfig()
	if getSender() != cfg.Owner {
		fail("caller is not the contract owner", ErrNotOwner)
	}
	return cfg
}

// ContractInit latches the caller as owner and records the council and fee
// receiver addresses. Runs exactly once.
// Example payload: "hive:council.acc|hive:fees.acc"
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if getState().Get(ContractConfigKey) != nil {
		fail("contract already initialized", ErrAlreadyInitialized)
	}
	p := newPayloadReader(payload)
	council := p.nextAddress("council")
	feeReceiver := p.nextAddress("feeReceiver")
	cfg := &ContractConfig{
		Owner:       getSender(),
		Council:     council,
		FeeReceiver: feeReceiver,
	}
	getState().Set(ContractConfigKey, encodeContractConfig(cfg))
	getState().Set(SystemConfigKey, encodeSystemConfig(fallbackSystemConfig()))
	getState().Set(DistributionConfigKey, encodeDistributionConfig(fallbackDistributionConfig()))
	getState().Set(ChallengeConfigKey, encodeChallengeConfig(fallbackChallengeConfig()))
	emitInit(cfg.Owner.String(), council.String(), feeReceiver.String())
	return strptr("ok")
}

// SetSystemConfig replaces the stake/period/cost group. Owner only, every
// value must be positive.
// Example payload: "10|100|0.1|259200|86400|86400|172800|5"
//
//go:wasmexport config_set_system
func SetSystemConfig(payload *string) *string {
	requireOwner()
	p := newPayloadReader(payload)
	cfg := &SystemConfig{
		MinHuntStake:        p.nextAmount("minHuntStake"),
		MinDaoStake:         p.nextAmount("minDaoStake"),
		MinVouchAmount:      p.nextAmount("minVouchAmount"),
		HuntPeriodSecs:      p.nextUint("huntPeriodSecs"),
		ChallengePeriodSecs: p.nextUint("challengePeriodSecs"),
		SettlePeriodSecs:    p.nextUint("settlePeriodSecs"),
		ReviewPeriodSecs:    p.nextUint("reviewPeriodSecs"),
		ChallengeCost:       p.nextAmount("challengeCost"),
	}
	if cfg.MinHuntStake <= 0 || cfg.MinDaoStake <= 0 || cfg.MinVouchAmount <= 0 ||
		cfg.HuntPeriodSecs == 0 || cfg.ChallengePeriodSecs == 0 ||
		cfg.SettlePeriodSecs == 0 || cfg.ReviewPeriodSecs == 0 ||
		cfg.ChallengeCost <= 0 {
		fail("all system config values must be positive", ErrInvalidConfig)
	}
	getState().Set(SystemConfigKey, encodeSystemConfig(cfg))
	emitConfigUpdated("system")
	return strptr("ok")
}

// SetDistributionConfig replaces the bounty split. Both shares must be
// positive and sum below the full denominator so the protocol remainder
// stays strictly positive.
// Example payload: "5500|3500"
//
//go:wasmexport config_set_distribution
func SetDistributionConfig(payload *string) *string {
	requireOwner()
	p := newPayloadReader(payload)
	cfg := &DistributionConfig{
		HunterBP:  p.nextUint("hunterBP"),
		VoucherBP: p.nextUint("voucherBP"),
	}
	if cfg.HunterBP == 0 || cfg.VoucherBP == 0 || cfg.HunterBP+cfg.VoucherBP >= BasisPointDenom {
		fail("shares must be positive and sum below 10000 basis points", ErrInvalidConfig)
	}
	getState().Set(DistributionConfigKey, encodeDistributionConfig(cfg))
	emitConfigUpdated("distribution")
	return strptr("ok")
}

// SetChallengeConfig replaces the slash percentages and the DAO review fee.
// Every value is a whole percentage between 1 and 100.
// Example payload: "50|25|50|10"
//
//go:wasmexport config_set_challenge
func SetChallengeConfig(payload *string) *string {
	requireOwner()
	p := newPayloadReader(payload)
	cfg := &ChallengeConfig{
		HunterSlashPct:  p.nextUint("hunterSlashPct"),
		VoucherSlashPct: p.nextUint("voucherSlashPct"),
		DaoSlashPct:     p.nextUint("daoSlashPct"),
		DaoReviewFeePct: p.nextUint("daoReviewFeePct"),
	}
	for _, v := range []uint64{cfg.HunterSlashPct, cfg.VoucherSlashPct, cfg.DaoSlashPct, cfg.DaoReviewFeePct} {
		if v < 1 || v > 100 {
			fail("percentages must be between 1 and 100", ErrInvalidConfig)
		}
	}
	getState().Set(ChallengeConfigKey, encodeChallengeConfig(cfg))
	emitConfigUpdated("challenge")
	return strptr("ok")
}
