package systems

import (
	"log"
	"time"

	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/events"
)

// BonusSystem spawns and moves the single bonus target
// Three triggers share the slot: the tick-accumulated interval, a one-shot
// timer after game start and a periodic timer
type BonusSystem struct {
	ctx   *engine.GameContext
	timer time.Duration // Tick-accumulated spawn timer
}

func NewBonusSystem(ctx *engine.GameContext) *BonusSystem {
	return &BonusSystem{ctx: ctx}
}

func (bs *BonusSystem) Priority() int {
	return constants.PriorityBonus
}

// Update advances the spawn timer and moves an active bonus target
func (bs *BonusSystem) Update(dt time.Duration) {
	bs.timer += dt
	if bs.timer >= constants.BonusInterval && bs.ctx.World.Bonus == nil {
		bs.Spawn()
		bs.timer = 0
	}

	bs.move()
}

// Timer returns the tick-accumulated spawn timer
func (bs *BonusSystem) Timer() time.Duration {
	return bs.timer
}

// Reset zeroes the spawn timer
func (bs *BonusSystem) Reset() {
	bs.timer = 0
}

// ScheduleTimers arms the one-shot and periodic spawn checks
// Callbacks re-check phase and slot when they fire
func (bs *BonusSystem) ScheduleTimers() {
	bs.ctx.Timers.Schedule(engine.TimerBonusInitial, constants.BonusInitialDelay, bs.timedSpawn)
	bs.ctx.Timers.Every(engine.TimerBonusPeriod, constants.BonusPeriodicCheck, bs.timedSpawn)
}

func (bs *BonusSystem) timedSpawn() {
	if bs.ctx.State.GetPhase() != engine.PhasePlaying {
		return
	}
	bs.Spawn()
}

// Spawn fills the empty slot with a new target; false if one is already active
func (bs *BonusSystem) Spawn() bool {
	world := bs.ctx.World
	if world.Bonus != nil {
		return false
	}

	rng := bs.ctx.Rand
	direction := 1
	x := -constants.BonusWidth - constants.BonusEntryMargin
	if rng.Float64() <= 0.5 {
		direction = -1
		x = constants.FieldWidth + constants.BonusEntryMargin
	}

	step := bs.ctx.State.GetLevel() - 1
	if step > constants.BonusMaxSpeedStep {
		step = constants.BonusMaxSpeedStep
	}
	drop := component.BonusDrops[rng.Intn(len(component.BonusDrops))]

	world.Bonus = &component.BonusTarget{
		X:         x,
		Y:         constants.BonusY,
		Width:     constants.BonusWidth,
		Height:    constants.BonusHeight,
		Direction: direction,
		Speed:     constants.BonusBaseSpeed + float64(step),
		Drop:      drop,
		Active:    true,
	}

	log.Printf("bonus: spawned %s drop, direction %d, level %d", drop, direction, step+1)
	bs.ctx.PushEvent(events.EventBonusSpawned, &events.BonusPayload{
		Drop:      drop,
		Direction: direction,
	})
	return true
}

// move translates the target and frees the slot once it leaves the field
func (bs *BonusSystem) move() {
	world := bs.ctx.World
	b := world.Bonus
	if b == nil || !b.Active {
		return
	}

	b.X += float64(b.Direction) * b.Speed

	b.AnimCounter++
	if b.AnimCounter > constants.BonusAnimTicks {
		b.AnimCounter = 0
		b.AnimFrame = (b.AnimFrame + 1) % constants.BonusAnimFrames
	}

	if (b.Direction > 0 && b.X > constants.FieldWidth+constants.BonusExitMargin) ||
		(b.Direction < 0 && b.X < -constants.BonusWidth-constants.BonusExitMargin) {
		b.Active = false
		world.Bonus = nil
		// Prime for a quick respawn instead of a full interval
		bs.timer = constants.BonusInterval - constants.BonusRespawnCooldown
	}
}
