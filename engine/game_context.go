package engine

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/events"
)

// Tuning holds the runtime-adjustable simulation parameters
type Tuning struct {
	EnemyFireChance float64 // Per alive enemy, per tick
	Seed            int64   // 0 picks a time-based seed
}

// DefaultTuning returns the stock parameters
func DefaultTuning() Tuning {
	return Tuning{
		EnemyFireChance: constants.EnemyFireChance,
	}
}

// GameContext is the session object passed to every system
type GameContext struct {
	// ===== Immutable After Init =====

	World  *World             // Entity collections; update lock via RunSafe
	State  *GameState         // Session; has internal mutex
	Timers *TimerScheduler    // Delayed callbacks serialized through World.RunSafe
	Time   TimeProvider       // Simulation clock
	Events *events.EventQueue // Lock-free MPSC queue, drained after each tick
	Tuning Tuning

	// ===== Update-Lock Exclusive =====

	Rand *rand.Rand // Bonus side, drop payload, enemy fire, particles

	// ===== Atomic (Self-Synchronized) =====

	FrameNumber atomic.Int64 // Tick counter; incremented once per simulated tick
}

// NewGameContext wires a world, session, timers and event queue around one clock
func NewGameContext(timeProvider TimeProvider, tuning Tuning) *GameContext {
	world := NewWorld()

	seed := tuning.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx := &GameContext{
		World:  world,
		State:  NewGameState(timeProvider.Now()),
		Time:   timeProvider,
		Events: events.NewEventQueue(),
		Tuning: tuning,
		Rand:   rand.New(rand.NewSource(seed)),
	}
	ctx.Timers = NewTimerScheduler(timeProvider, world.RunSafe)

	world.SetEventMetadata(ctx.Events, &ctx.FrameNumber)

	return ctx
}

// Now returns the simulation time
func (ctx *GameContext) Now() time.Time {
	return ctx.Time.Now()
}

// PushEvent emits an event stamped with the current frame and time
func (ctx *GameContext) PushEvent(eventType events.EventType, payload any) {
	ctx.World.PushEvent(eventType, payload, ctx.Time.Now())
}
