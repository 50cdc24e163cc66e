package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProviderAdvances(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms between readings, got %v", diff)
	}
}

func TestMockTimeProviderSteps(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("Expected frozen start %v, got %v", start, mock.Now())
	}

	mock.Advance(16 * time.Millisecond)
	mock.AdvanceSeconds(0.5)
	want := start.Add(516 * time.Millisecond)
	if !mock.Now().Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, mock.Now())
	}

	// Backwards jumps are allowed, the frame driver must cope with them
	earlier := start.Add(-time.Second)
	mock.SetTime(earlier)
	if !mock.Now().Equal(earlier) {
		t.Errorf("Expected %v after SetTime, got %v", earlier, mock.Now())
	}
}

func TestMockTimeProviderConcurrentAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()

	if want := start.Add(time.Second); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after 1000 concurrent advances, got %v", want, mock.Now())
	}
}
