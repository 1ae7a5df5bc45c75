//go:build !wasm

package sdk

import (
	"fmt"
)

// Host-free stand-ins for the wasm imports. These exist so the sdk package
// links on a regular Go toolchain; the contract package swaps in its own
// mocks for anything behavior-relevant.

func Log(s string) {
	fmt.Println("SDK log:", s)
}

func Abort(msg string) {
	panic(msg)
}

func Revert(msg string, symbol string) {
	panic(symbol)
}

var mockDb = map[string]string{}

func StateSetObject(key string, value string) {
	mockDb[key] = value
}

func StateGetObject(key string) *string {
	val, ok := mockDb[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(mockDb, key)
}

func GetEnv() Env {
	return Env{
		TxId:      "mock_tx",
		Timestamp: "2025-01-01T00:00:00",
		Sender:    Sender{Address: "hive:mock_sender"},
	}
}

func GetEnvKey(key string) *string {
	env := GetEnv()
	switch key {
	case "tx.id":
		return &env.TxId
	case "block.timestamp":
		return &env.Timestamp
	default:
		return nil
	}
}

func GetBalance(address Address, asset Asset) int64 {
	return 0
}

func HiveDraw(amount int64, asset Asset) {
	fmt.Println("HiveDraw:", amount, asset.String())
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	fmt.Println("HiveTransfer:", to.String(), amount, asset.String())
}
