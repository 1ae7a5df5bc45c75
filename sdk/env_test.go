package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDecodesHostKeys(t *testing.T) {
	raw := `{
		"contract.id": "vsc1abc",
		"tx.id": "deadbeef",
		"tx.index": 3,
		"tx.op_index": 1,
		"block.id": "block123",
		"block.height": 98765,
		"block.timestamp": "2025-06-01T12:00:00",
		"msg.sender": "hive:alice",
		"msg.required_auths": ["hive:alice"],
		"msg.required_posting_auths": [],
		"msg.caller": "hive:alice",
		"msg.payer": "hive:alice",
		"intents": [{"type": "transfer.allow", "args": {"limit": "25", "token": "hive"}}]
	}`

	var env Env
	require.NoError(t, env.UnmarshalJSON([]byte(raw)))

	assert.Equal(t, "vsc1abc", env.ContractId)
	assert.Equal(t, "deadbeef", env.TxId)
	assert.Equal(t, int64(3), env.Index)
	assert.Equal(t, uint64(98765), env.BlockHeight)
	assert.Equal(t, Address("hive:alice"), env.Sender.Address)
	assert.Equal(t, []Address{"hive:alice"}, env.Sender.RequiredAuths)
	require.Len(t, env.Intents, 1)
	assert.Equal(t, "transfer.allow", env.Intents[0].Type)
	assert.Equal(t, "25", env.Intents[0].Args["limit"])
}

func TestEnvRoundTrip(t *testing.T) {
	env := Env{
		ContractId:  "vsc1xyz",
		TxId:        "tx9",
		Timestamp:   "2025-01-01T00:00:00",
		BlockHeight: 1,
		Sender:      Sender{Address: "hive:bob"},
		Caller:      Caller{Address: "hive:bob"},
		Payer:       "hive:bob",
		Intents:     []Intent{{Type: "transfer.allow", Args: map[string]string{"limit": "5", "token": "hbd"}}},
	}
	data, err := env.MarshalJSON()
	require.NoError(t, err)

	var got Env
	require.NoError(t, got.UnmarshalJSON(data))
	assert.Equal(t, env, got)
}

func TestAddressClassification(t *testing.T) {
	assert.True(t, Address("hive:alice").IsValid())
	assert.True(t, Address("did:key:z6Mk").IsValid())
	assert.False(t, Address("alice").IsValid())
	assert.Equal(t, AddressTypeHive, Address("hive:alice").Type())
	assert.Equal(t, AddressDomainContract, Address("contract:facthunt").Domain())
}
