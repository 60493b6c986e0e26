package testing

import (
	"math/rand"
	"rs59/reedsolomon"
	"sync"
	"time"

	"golang.org/x/xerrors"
)

// ErrInjected is returned by MockCodes for the blocks it is told to fail
var ErrInjected = xerrors.New("injected failure")

// MockCodes wraps a code, delays every call by a random duration so that
// blocks finish out of order, and fails the blocks registered with FailOn.
type MockCodes struct {
	reedsolomon.Codes
	maxDelay time.Duration
	failOn   map[string]bool
	calls    int
	sync.RWMutex
}

func NewMockCodes(codes reedsolomon.Codes, maxDelay time.Duration) *MockCodes {
	return &MockCodes{
		Codes:    codes,
		maxDelay: maxDelay,
		failOn:   make(map[string]bool),
	}
}

// FailOn makes every call receiving input return ErrInjected
func (m *MockCodes) FailOn(input string) {
	m.Lock()
	defer m.Unlock()
	m.failOn[input] = true
}

// Calls returns the number of Encode and Correct calls so far
func (m *MockCodes) Calls() int {
	m.RLock()
	defer m.RUnlock()
	return m.calls
}

func (m *MockCodes) call(input string) error {
	m.Lock()
	m.calls++
	fail := m.failOn[input]
	m.Unlock()

	if m.maxDelay > 0 {
		time.Sleep(time.Duration(rand.Int63n(int64(m.maxDelay))))
	}
	if fail {
		return ErrInjected
	}
	return nil
}

func (m *MockCodes) Encode(msg string) (string, error) {
	err := m.call(msg)
	if err != nil {
		return "", err
	}
	return m.Codes.Encode(msg)
}

func (m *MockCodes) Correct(word string) (reedsolomon.Correction, error) {
	err := m.call(word)
	if err != nil {
		return reedsolomon.Correction{}, err
	}
	return m.Codes.Correct(word)
}
