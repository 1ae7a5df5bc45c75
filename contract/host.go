package contract

import "facthunt/sdk"

// Host abstracts logging, token movement and error surfaces so the whole
// contract runs under tests without a wasm runtime.
type Host interface {
	Log(msg string)
	Draw(amount Amount, asset sdk.Asset)
	Transfer(to sdk.Address, amount Amount, asset sdk.Asset)
	Revert(msg string, symbol string)
	Abort(msg string)
}

var hostInterface Host

// InitHost selects the real wasm host surface or the recording mock.
// Example payload: InitHost(false)
func InitHost(localDebug bool) {
	if localDebug {
		mockHost = NewMockHost()
		hostInterface = mockHost
	} else {
		hostInterface = &RealHost{}
	}
}

func getHost() Host {
	if hostInterface == nil {
		InitHost(false)
	}
	return hostInterface
}

// RealHost routes to the sdk host bindings.
type RealHost struct{}

func (h *RealHost) Log(msg string) {
	sdk.Log(msg)
}

func (h *RealHost) Draw(amount Amount, asset sdk.Asset) {
	sdk.HiveDraw(AmountToInt64(amount), asset)
}

func (h *RealHost) Transfer(to sdk.Address, amount Amount, asset sdk.Asset) {
	sdk.HiveTransfer(to, AmountToInt64(amount), asset)
}

func (h *RealHost) Revert(msg string, symbol string) {
	sdk.Revert(msg, symbol)
}

func (h *RealHost) Abort(msg string) {
	sdk.Abort(msg)
}
