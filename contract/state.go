package contract

import "facthunt/sdk"

// State abstracts the contract KV store so tests run without a wasm host.
type State interface {
	Set(key string, value string)
	Get(key string) *string
	Delete(key string)
}

var state State

// InitState selects the real host-backed store or the in-memory mock.
// Example payload: InitState(false)
func InitState(localDebug bool) {
	if localDebug {
		mockState = NewMockState()
		state = mockState
	} else {
		state = &WasmState{}
	}
}

func getState() State {
	if state == nil {
		InitState(false)
	}
	return state
}

// WasmState routes straight to the host db functions.
type WasmState struct{}

func (s *WasmState) Set(key string, value string) {
	sdk.StateSetObject(key, value)
}

func (s *WasmState) Get(key string) *string {
	return sdk.StateGetObject(key)
}

func (s *WasmState) Delete(key string) {
	sdk.StateDeleteObject(key)
}
