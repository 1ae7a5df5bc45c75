package contract

import (
	"strconv"
	"time"

	"facthunt/sdk"
)

// vscTimeLayout matches block timestamps as delivered by the chain (no zone).
const vscTimeLayout = "2006-01-02T15:04:05"

// nowUnix parses the block timestamp into unix seconds. Plain integer strings
// are accepted too, which the test environment uses.
func nowUnix() int64 {
	ts := getENV().GetEnv().Timestamp
	if secs, err := strconv.ParseInt(ts, 10, 64); err == nil {
		return secs
	}
	if t, err := time.Parse(vscTimeLayout, ts); err == nil {
		return t.Unix()
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Unix()
	}
	getHost().Abort("unparseable block timestamp: " + ts)
	return 0
}

// getCount reads an integer counter, defaulting to zero.
func getCount(key string) uint64 {
	raw := getState().Get(key)
	if raw == nil {
		return 0
	}
	v, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		getHost().Abort("corrupt counter: " + key)
	}
	return v
}

// setCount writes an integer counter.
func setCount(key string, v uint64) {
	getState().Set(key, strconv.FormatUint(v, 10))
}

// isValidAsset reports whether the ticker is one the contract supports.
func isValidAsset(a sdk.Asset) bool {
	for _, v := range validAssets {
		if v == a.String() {
			return true
		}
	}
	return false
}

// transferAllowance finds the first transfer.allow intent for the given asset
// and returns its limit, scaled. Second return is false when none is attached.
func transferAllowance(asset sdk.Asset) (Amount, bool) {
	for _, intent := range getIntents() {
		if intent.Type != "transfer.allow" {
			continue
		}
		if intent.Args["token"] != asset.String() {
			continue
		}
		limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
		if err != nil {
			continue
		}
		return FloatToAmount(limit), true
	}
	return 0, false
}

// requireDraw verifies the caller signed a sufficient transfer.allow intent,
// then pulls the amount into the contract balance.
func requireDraw(amount Amount, asset sdk.Asset) {
	if amount <= 0 {
		return
	}
	limit, ok := transferAllowance(asset)
	if !ok {
		fail("no transfer.allow intent for "+asset.String(), ErrInsufficientIntent)
	}
	if limit < amount {
		fail("transfer.allow limit below required amount", ErrInsufficientIntent)
	}
	getHost().Draw(amount, asset)
}

func strptr(s string) *string {
	return &s
}

func uint64ToString(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func amountToString(v Amount) string {
	return strconv.FormatFloat(AmountToFloat(v), 'f', -1, 64)
}
