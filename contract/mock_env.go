package contract

import (
	"strconv"

	"facthunt/sdk"
)

// mockENV is the shared instance tests mutate to impersonate users and move time.
var mockENV *MockENV

// MockENV is a configurable execution environment for tests.
type MockENV struct {
	Sender    sdk.Address
	Caller    sdk.Address
	TxID      string
	Timestamp string
	Intents   []sdk.Intent
}

func NewMockENV() *MockENV {
	return &MockENV{
		Sender:    "hive:mock_sender",
		Caller:    "hive:mock_sender",
		TxID:      "mock_tx",
		Timestamp: "2025-01-01T00:00:00",
	}
}

func (e *MockENV) GetEnv() sdk.Env {
	return sdk.Env{
		ContractId:  "vsc mock contract",
		TxId:        e.TxID,
		BlockHeight: 1,
		Timestamp:   e.Timestamp,
		Sender:      sdk.Sender{Address: e.Sender},
		Caller:      sdk.Caller{Address: e.Caller},
		Payer:       e.Sender.String(),
		Intents:     e.Intents,
	}
}

func (e *MockENV) GetEnvKey(key string) *string {
	var v string
	switch key {
	case "tx.id":
		v = e.TxID
	case "block.timestamp":
		v = e.Timestamp
	case "msg.sender":
		v = e.Sender.String()
	default:
		return nil
	}
	return &v
}

// SetSender switches the acting user, also updating the caller.
func (e *MockENV) SetSender(addr string) {
	e.Sender = sdk.Address(addr)
	e.Caller = sdk.Address(addr)
}

// SetUnixTime moves the mock clock; timestamps are plain unix seconds here.
func (e *MockENV) SetUnixTime(secs int64) {
	e.Timestamp = strconv.FormatInt(secs, 10)
}

// AllowTransfer attaches a transfer.allow intent covering limit tokens of asset.
func (e *MockENV) AllowTransfer(limit float64, asset sdk.Asset) {
	e.Intents = []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{
			"limit": strconv.FormatFloat(limit, 'f', -1, 64),
			"token": asset.String(),
		},
	}}
}

// ClearIntents drops all attached intents.
func (e *MockENV) ClearIntents() {
	e.Intents = nil
}
