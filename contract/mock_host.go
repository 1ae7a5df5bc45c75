package contract

import (
	"fmt"

	"facthunt/sdk"
)

// mockHost is the shared instance tests inspect for transfers and logs.
var mockHost *MockHost

// TokenMove records one draw or transfer observed by the mock host.
type TokenMove struct {
	To     sdk.Address // empty on draws
	Amount Amount
	Asset  sdk.Asset
}

// MockHost records token movement and panics with *RevertError on reverts
// so tests can recover and assert on the symbol.
type MockHost struct {
	Logs      []string
	Draws     []TokenMove
	Transfers []TokenMove
}

func NewMockHost() *MockHost {
	return &MockHost{}
}

func (h *MockHost) Log(msg string) {
	h.Logs = append(h.Logs, msg)
	fmt.Println("[mock log] " + msg)
}

func (h *MockHost) Draw(amount Amount, asset sdk.Asset) {
	h.Draws = append(h.Draws, TokenMove{Amount: amount, Asset: asset})
}

func (h *MockHost) Transfer(to sdk.Address, amount Amount, asset sdk.Asset) {
	h.Transfers = append(h.Transfers, TokenMove{To: to, Amount: amount, Asset: asset})
}

func (h *MockHost) Revert(msg string, symbol string) {
	panic(&RevertError{Symbol: symbol, Msg: msg})
}

func (h *MockHost) Abort(msg string) {
	panic("abort: " + msg)
}

// Reset clears all recorded activity.
func (h *MockHost) Reset() {
	h.Logs = nil
	h.Draws = nil
	h.Transfers = nil
}

// TotalTransferredTo sums transfers recorded for one recipient and asset.
func (h *MockHost) TotalTransferredTo(to sdk.Address, asset sdk.Asset) Amount {
	var sum Amount
	for _, t := range h.Transfers {
		if t.To == to && t.Asset == asset {
			sum += t.Amount
		}
	}
	return sum
}
