package events

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/arcade-siege/constants"
)

// TestEventQueueBasic tests basic push and consume operations
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventShoot, Payload: "a", Frame: 1, Timestamp: time.Now()})
	eq.Push(GameEvent{Type: EventExplosion, Payload: "b", Frame: 2, Timestamp: time.Now()})
	eq.Push(GameEvent{Type: EventGameOver, Payload: "c", Frame: 3, Timestamp: time.Now()})

	if eq.Len() != 3 {
		t.Errorf("Len() = %d, want 3", eq.Len())
	}

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	want := []EventType{EventShoot, EventExplosion, EventGameOver}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("events[%d].Type = %v, want %v", i, ev.Type, want[i])
		}
	}

	if again := eq.Consume(); len(again) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(again))
	}
}

// TestEventQueueConcurrent tests concurrent push operations from multiple goroutines
func TestEventQueueConcurrent(t *testing.T) {
	eq := NewEventQueue()
	numGoroutines := 10
	eventsPerGoroutine := 10

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				eq.Push(GameEvent{Type: EventShoot, Payload: id*100 + j})
			}
		}(i)
	}
	wg.Wait()

	events := eq.Consume()
	if len(events) != numGoroutines*eventsPerGoroutine {
		t.Errorf("Expected %d events, got %d", numGoroutines*eventsPerGoroutine, len(events))
	}

	seen := make(map[int]bool)
	for _, ev := range events {
		id := ev.Payload.(int)
		if seen[id] {
			t.Errorf("Duplicate payload %d", id)
		}
		seen[id] = true
	}
}

// TestEventQueueOverflow verifies the oldest events are dropped when full
func TestEventQueueOverflow(t *testing.T) {
	eq := NewEventQueue()
	total := constants.EventQueueSize + 10

	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventScoreChanged, Payload: i})
	}

	events := eq.Consume()
	if len(events) != constants.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", constants.EventQueueSize, len(events))
	}
	if first := events[0].Payload.(int); first != 10 {
		t.Errorf("First payload = %d, want 10", first)
	}
	if last := events[len(events)-1].Payload.(int); last != total-1 {
		t.Errorf("Last payload = %d, want %d", last, total-1)
	}
	if n := eq.TakeDropped(); n != 10 {
		t.Errorf("TakeDropped() = %d, want 10", n)
	}
	if n := eq.TakeDropped(); n != 0 {
		t.Errorf("TakeDropped() after reset = %d, want 0", n)
	}
}

func TestEventQueueNoDropsWithinCapacity(t *testing.T) {
	eq := NewEventQueue()
	for i := 0; i < constants.EventQueueSize; i++ {
		eq.Push(GameEvent{Type: EventShoot})
	}
	if n := eq.TakeDropped(); n != 0 {
		t.Errorf("TakeDropped() = %d at exact capacity, want 0", n)
	}
	if got := len(eq.Consume()); got != constants.EventQueueSize {
		t.Errorf("consumed %d, want %d", got, constants.EventQueueSize)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventShoot, "Shoot"},
		{EventWeaponUpgrade, "WeaponUpgrade"},
		{EventLevelStarted, "LevelStarted"},
		{EventType(999), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", int(tt.t), got, tt.want)
		}
	}
}
