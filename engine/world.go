package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
	"github.com/lixenwraith/arcade-siege/events"
)

// System is a per-tick simulation step
type System interface {
	// Priority orders systems within a tick, lower runs first
	Priority() int
	Update(dt time.Duration)
}

// World owns the live entity collections
// Every mutation happens under the update lock (RunSafe)
type World struct {
	mu sync.RWMutex // Guards systems

	Player        component.Player
	Enemies       *Store[component.Enemy]
	PlayerBullets *Store[component.Projectile]
	EnemyBullets  *Store[component.Projectile]
	Particles     *Store[component.Particle]

	// Bonus is the single bonus slot; nil when empty
	Bonus *component.BonusTarget

	// Formation movement shared by every grid enemy
	FormationDir float64 // +1 right, -1 left

	eventQueue  *events.EventQueue
	frameSource *atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty world with a default player
func NewWorld() *World {
	return &World{
		Player:        component.NewPlayer(),
		Enemies:       NewStore[component.Enemy](constants.EnemyRows * constants.EnemyCols),
		PlayerBullets: NewStore[component.Projectile](64),
		EnemyBullets:  NewStore[component.Projectile](32),
		Particles:     NewStore[component.Particle](512),
		FormationDir:  1,
		systems:       make([]System, 0),
	}
}

// AddSystem registers a system, keeping priority order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked(dt time.Duration) {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(dt)
	}
}

// ClearTransient removes bullets, particles and enemies; the bonus slot is kept
func (w *World) ClearTransient() {
	w.PlayerBullets.Clear()
	w.EnemyBullets.Clear()
	w.Particles.Clear()
	w.Enemies.Clear()
}

// Reset clears every collection, empties the bonus slot and restores the player
func (w *World) Reset() {
	w.ClearTransient()
	w.Bonus = nil
	w.Player = component.NewPlayer()
	w.FormationDir = 1
}

// AliveEnemies counts grid enemies not yet destroyed
func (w *World) AliveEnemies() int {
	n := 0
	w.Enemies.Each(func(_ core.Handle, e *component.Enemy) bool {
		if e.Alive {
			n++
		}
		return true
	})
	return n
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	if w.frameSource == nil {
		return 0
	}
	return w.frameSource.Load()
}

// SetEventMetadata wires the direct pointers for PushEvent
// Called once during GameContext initialization
func (w *World) SetEventMetadata(q *events.EventQueue, f *atomic.Int64) {
	w.eventQueue = q
	w.frameSource = f
}

// PushEvent emits a game event for dispatch after the tick
func (w *World) PushEvent(eventType events.EventType, payload any, now time.Time) {
	if w.eventQueue == nil {
		return // Not yet initialized
	}

	w.eventQueue.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Frame:     w.FrameNumber(),
		Timestamp: now,
	})
}
