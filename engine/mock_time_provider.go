package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/code-rush/parameter"
)

// MockTimeProvider is a manually driven Clock for tests and the headless benchmark
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a mock clock starting at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// AdvanceFrames moves the clock forward by n frame intervals
func (m *MockTimeProvider) AdvanceFrames(n int) {
	m.Advance(time.Duration(n) * parameter.FrameInterval)
}
