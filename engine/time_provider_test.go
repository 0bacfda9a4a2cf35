package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/code-rush/parameter"
)

func TestTimeProviderMonotonic(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	mock.Advance(5 * time.Second)
	if got := mock.Now().Sub(start); got != 5*time.Second {
		t.Errorf("after Advance elapsed = %v", got)
	}

	mock.AdvanceFrames(parameter.FrameRate)
	want := 5*time.Second + parameter.FrameRate*parameter.FrameInterval
	if got := mock.Now().Sub(start); got != want {
		t.Errorf("after AdvanceFrames elapsed = %v, want %v", got, want)
	}
}
