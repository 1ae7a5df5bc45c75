package contract

import "facthunt/sdk"

// ENVInterface abstracts the host execution environment (sender, time, intents).
type ENVInterface interface {
	GetEnv() sdk.Env
	GetEnvKey(key string) *string
}

var envInterface ENVInterface

// InitENV selects the real host environment or the configurable mock.
// Example payload: InitENV(false)
func InitENV(localDebug bool) {
	if localDebug {
		mockENV = NewMockENV()
		envInterface = mockENV
	} else {
		envInterface = &RealENV{}
	}
}

func getENV() ENVInterface {
	if envInterface == nil {
		InitENV(false)
	}
	return envInterface
}

// RealENV reads the environment from the host on every call.
type RealENV struct{}

func (e *RealENV) GetEnv() sdk.Env {
	return sdk.GetEnv()
}

func (e *RealENV) GetEnvKey(key string) *string {
	return sdk.GetEnvKey(key)
}

// getSender returns the account whose authority signed the current call.
func getSender() sdk.Address {
	return getENV().GetEnv().Sender.Address
}

// getIntents returns the signed allowances attached to the transaction.
func getIntents() []sdk.Intent {
	return getENV().GetEnv().Intents
}
