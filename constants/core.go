package constants

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the simulation tick interval (~60Hz display refresh)
	TickInterval = time.Second / 60

	// NominalFrameDelta is the per-frame elapsed time the frame-counted behaviours assume
	NominalFrameDelta = 16670 * time.Microsecond

	// MaxTickDelta clamps a single tick's elapsed time after a stall
	MaxTickDelta = 100 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = EventQueueSize - 1
)

// System Execution Priorities (lower runs first)
// Order is load-bearing: weapon decay, bonus spawn, movement, collision, particles, level evaluation
const (
	PriorityWeapon    = 10
	PriorityBonus     = 20
	PriorityMovement  = 30
	PriorityCollision = 40
	PriorityParticle  = 50
	PriorityLevel     = 60
)
