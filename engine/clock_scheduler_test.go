package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/arcade-siege/constants"
)

func TestClockSchedulerStep(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var deltas []time.Duration
	cs := NewClockScheduler(mock, 10*time.Millisecond, func(dt time.Duration) {
		deltas = append(deltas, dt)
	})
	cs.lastTickTime = start
	cs.nextTickDeadline = start.Add(10 * time.Millisecond)

	// Before deadline: sleep, no tick
	if sleep := cs.step(start.Add(4 * time.Millisecond)); sleep != 6*time.Millisecond {
		t.Errorf("sleep = %v, want 6ms", sleep)
	}
	if len(deltas) != 0 {
		t.Fatalf("ticked before deadline")
	}

	mock.Advance(10 * time.Millisecond)
	cs.step(mock.Now())
	if len(deltas) != 1 || deltas[0] != 10*time.Millisecond {
		t.Fatalf("deltas = %v, want [10ms]", deltas)
	}
	if cs.TickCount() != 1 {
		t.Errorf("TickCount() = %d, want 1", cs.TickCount())
	}

	select {
	case <-cs.UpdateDone():
	default:
		t.Error("UpdateDone not signalled")
	}
}

// TestClockSchedulerStall verifies a long stall clamps dt and resets the deadline
func TestClockSchedulerStall(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var last time.Duration
	cs := NewClockScheduler(mock, 10*time.Millisecond, func(dt time.Duration) { last = dt })
	cs.lastTickTime = start
	cs.nextTickDeadline = start.Add(10 * time.Millisecond)

	mock.Advance(time.Second)
	cs.step(mock.Now())

	if last != constants.MaxTickDelta {
		t.Errorf("dt = %v, want %v", last, constants.MaxTickDelta)
	}
	if want := mock.Now().Add(10 * time.Millisecond); !cs.nextTickDeadline.Equal(want) {
		t.Errorf("nextTickDeadline = %v, want %v", cs.nextTickDeadline, want)
	}
}

func TestClockSchedulerStartStop(t *testing.T) {
	var ticks atomic.Int64
	cs := NewClockScheduler(NewTimeProvider(), 2*time.Millisecond, func(time.Duration) { ticks.Add(1) })

	cs.Start()
	cs.Start() // second start is a no-op
	time.Sleep(50 * time.Millisecond)
	cs.Stop()
	cs.Stop()

	n := ticks.Load()
	if n == 0 {
		t.Error("no ticks executed")
	}
	time.Sleep(10 * time.Millisecond)
	if ticks.Load() != n {
		t.Error("ticks continued after Stop")
	}
}
