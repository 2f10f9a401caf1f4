package engine

import (
	"sync"
	"time"
)

// Timer keys owned by the simulation
const (
	TimerLevelAdvance = "level-advance"
	TimerBonusInitial = "bonus-initial"
	TimerBonusPeriod  = "bonus-periodic"
)

// TimerScheduler runs keyed, cancellable delayed callbacks outside the tick
// Scheduling a key supersedes any pending timer under the same key
// Callbacks execute through the run wrapper (World.RunSafe) and are dropped
// if their key was cancelled or rescheduled before they acquired the lock
type TimerScheduler struct {
	mu     sync.Mutex
	clock  TimeProvider
	run    func(fn func())
	timers map[string]*scheduledTimer
	seq    uint64
}

type scheduledTimer struct {
	id       uint64
	timer    Timer
	interval time.Duration // 0 for one-shot
}

// NewTimerScheduler creates a scheduler; run serializes callbacks against the tick
func NewTimerScheduler(clock TimeProvider, run func(fn func())) *TimerScheduler {
	if run == nil {
		run = func(fn func()) { fn() }
	}
	return &TimerScheduler{
		clock:  clock,
		run:    run,
		timers: make(map[string]*scheduledTimer),
	}
}

// Schedule arms a one-shot timer under key, cancelling any prior one
func (s *TimerScheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.arm(key, delay, 0, fn)
}

// Every arms a periodic timer under key that re-arms until cancelled
func (s *TimerScheduler) Every(key string, interval time.Duration, fn func()) {
	s.arm(key, interval, interval, fn)
}

// Cancel stops the pending timer under key; false if none was pending
func (s *TimerScheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.timers[key]
	if !ok {
		return false
	}
	st.timer.Stop()
	delete(s.timers, key)
	return true
}

// CancelAll stops every pending timer
func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, st := range s.timers {
		st.timer.Stop()
		delete(s.timers, key)
	}
}

// Pending reports whether a timer is armed under key
func (s *TimerScheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[key]
	return ok
}

// Len returns the number of armed timers
func (s *TimerScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *TimerScheduler) arm(key string, delay, interval time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.timers[key]; ok {
		prev.timer.Stop()
	}

	s.seq++
	st := &scheduledTimer{id: s.seq, interval: interval}
	st.timer = s.clock.AfterFunc(delay, func() { s.fire(key, st.id, fn) })
	s.timers[key] = st
}

// fire validates the timer generation under the run wrapper, then invokes fn
func (s *TimerScheduler) fire(key string, id uint64, fn func()) {
	s.run(func() {
		s.mu.Lock()
		st, ok := s.timers[key]
		if !ok || st.id != id {
			s.mu.Unlock()
			return
		}
		if st.interval > 0 {
			st.timer = s.clock.AfterFunc(st.interval, func() { s.fire(key, id, fn) })
		} else {
			delete(s.timers, key)
		}
		s.mu.Unlock()

		fn()
	})
}
