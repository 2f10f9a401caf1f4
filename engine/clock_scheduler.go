package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
)

// ClockScheduler drives the simulation on a fixed tick
// Handles drift correction without busy-wait
type ClockScheduler struct {
	clock TimeProvider
	tick  func(dt time.Duration)

	// Tick configuration
	tickInterval     time.Duration
	lastTickTime     time.Time // Last tick in wall time
	nextTickDeadline time.Time // Next tick deadline for drift correction

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64
	mu        sync.RWMutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// updateDone signals a completed tick to the host render loop
	updateDone chan struct{}
}

// NewClockScheduler creates a new clock scheduler with specified tick interval
// tick receives the measured elapsed time since the previous tick, clamped to MaxTickDelta
func NewClockScheduler(clock TimeProvider, tickInterval time.Duration, tick func(dt time.Duration)) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = constants.TickInterval
	}
	return &ClockScheduler{
		clock:        clock,
		tick:         tick,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   make(chan struct{}, 1),
	}
}

// UpdateDone returns the channel signalled after every tick (non-blocking, coalesced)
func (cs *ClockScheduler) UpdateDone() <-chan struct{} {
	return cs.updateDone
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// schedulerLoop runs the main scheduling loop
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.lastTickTime = cs.clock.Now()
	cs.nextTickDeadline = cs.lastTickTime.Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		sleepDuration := cs.step(cs.clock.Now())

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}

// step runs a tick if the deadline has passed and returns how long to sleep
func (cs *ClockScheduler) step(now time.Time) time.Duration {
	cs.mu.RLock()
	deadline := cs.nextTickDeadline
	last := cs.lastTickTime
	cs.mu.RUnlock()

	if now.Before(deadline) {
		return deadline.Sub(now)
	}

	dt := now.Sub(last)
	if dt > constants.MaxTickDelta {
		dt = constants.MaxTickDelta
	}
	cs.tick(dt)

	cs.mu.Lock()
	cs.lastTickTime = now
	cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

	maxBehind := cs.tickInterval * 2
	if now.Sub(cs.nextTickDeadline) > maxBehind {
		cs.nextTickDeadline = now.Add(cs.tickInterval)
	}
	deadline = cs.nextTickDeadline
	cs.mu.Unlock()

	cs.tickCount.Add(1)

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}

	sleep := deadline.Sub(cs.clock.Now())
	if sleep < 0 {
		sleep = 0
	}
	return sleep
}
