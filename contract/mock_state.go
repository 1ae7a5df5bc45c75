package contract

// mockState is the shared instance tests inspect and reset between cases.
var mockState *MockState

// MockState is a volatile in-memory stand-in for the host KV store.
type MockState struct {
	data map[string]string
}

func NewMockState() *MockState {
	return &MockState{data: make(map[string]string)}
}

func (s *MockState) Set(key string, value string) {
	s.data[key] = value
}

func (s *MockState) Get(key string) *string {
	v, ok := s.data[key]
	if !ok {
		return nil
	}
	return &v
}

func (s *MockState) Delete(key string) {
	delete(s.data, key)
}

// Reset wipes everything so each test starts from a fresh contract.
func (s *MockState) Reset() {
	s.data = make(map[string]string)
}

// Len reports how many keys are stored, handy for cleanup assertions.
func (s *MockState) Len() int {
	return len(s.data)
}
