package sdk

// Intent describes a signed allowance attached to the transaction, most
// importantly transfer.allow which caps what the contract may draw.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Sender is the account whose authority signed the current call.
type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Caller is the direct invoker, which differs from Sender on contract-to-contract calls.
type Caller struct {
	Address Address `json:"id"`
}

// Env is the per-call execution environment handed over by the host.
//
//tinyjson:json
type Env struct {
	ContractId  string
	TxId        string
	Index       int64
	OpIndex     int64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Caller      Caller
	Payer       string
	Intents     []Intent
}
