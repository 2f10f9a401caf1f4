package game

import (
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/events"
	"github.com/lixenwraith/arcade-siege/systems"
)

// Game is the simulation facade hosts drive: commands, ticks and snapshots
// Commands and ticks serialize through the world update lock
// Events reach subscribed collaborators only after the lock is released
type Game struct {
	ctx    *engine.GameContext
	router *events.Router[*engine.GameContext]

	// Router consumes the single-consumer queue; one dispatcher at a time
	dispatchMu sync.Mutex

	weapons *systems.WeaponSystem
	bonus   *systems.BonusSystem
	level   *systems.LevelSystem
}

// New builds a game in the Menu phase with every system registered
func New(timeProvider engine.TimeProvider, tuning engine.Tuning) *Game {
	ctx := engine.NewGameContext(timeProvider, tuning)

	g := &Game{
		ctx:    ctx,
		router: events.NewRouter[*engine.GameContext](ctx.Events),
	}

	g.weapons = systems.NewWeaponSystem(ctx)
	g.bonus = systems.NewBonusSystem(ctx)
	g.level = systems.NewLevelSystem(ctx, g.bonus)

	ctx.World.AddSystem(g.weapons)
	ctx.World.AddSystem(g.bonus)
	ctx.World.AddSystem(systems.NewMovementSystem(ctx))
	ctx.World.AddSystem(systems.NewCollisionSystem(ctx, g.weapons))
	ctx.World.AddSystem(systems.NewParticleSystem(ctx))
	ctx.World.AddSystem(g.level)

	return g
}

// Context exposes the session context for hosts and tests
func (g *Game) Context() *engine.GameContext {
	return g.ctx
}

// Subscribe registers a collaborator; call before the first Tick
func (g *Game) Subscribe(handler events.Handler[*engine.GameContext]) {
	g.router.Register(handler)
}

// StartGame begins a new session from any phase
func (g *Game) StartGame() {
	g.ctx.World.RunSafe(g.level.StartGame)
	g.DispatchEvents()
}

// MoveTo places the player at x, clamped to the field
// Ignored while the session is in Menu or GameOver
func (g *Game) MoveTo(x float64) {
	g.ctx.World.RunSafe(func() {
		if !g.canMove() {
			return
		}
		p := &g.ctx.World.Player
		p.X = p.ClampX(x)
	})
}

// MoveDelta shifts the player by dx, clamped to the field
func (g *Game) MoveDelta(dx float64) {
	g.ctx.World.RunSafe(func() {
		if !g.canMove() {
			return
		}
		p := &g.ctx.World.Player
		p.X = p.ClampX(p.X + dx)
	})
}

func (g *Game) canMove() bool {
	switch g.ctx.State.GetPhase() {
	case engine.PhasePlaying, engine.PhaseLevelComplete:
		return true
	default:
		return false
	}
}

// Fire requests a shot; false when rejected by phase or cooldown
func (g *Game) Fire() bool {
	var fired bool
	g.ctx.World.RunSafe(func() {
		fired = g.weapons.Fire()
	})
	if fired {
		g.DispatchEvents()
	}
	return fired
}

// Tick advances the simulation by one frame and delivers its events
func (g *Game) Tick(dt time.Duration) {
	g.level.Step(dt)
	g.DispatchEvents()
}

// DispatchEvents delivers queued events, including those pushed by timer callbacks
func (g *Game) DispatchEvents() int {
	g.dispatchMu.Lock()
	defer g.dispatchMu.Unlock()
	if n := g.ctx.Events.TakeDropped(); n > 0 {
		log.Printf("event queue overflow: %d events dropped", n)
	}
	return g.router.DispatchAll(g.ctx)
}

// Snapshot returns a consistent copy of the world and session
func (g *Game) Snapshot() engine.Snapshot {
	var snap engine.Snapshot
	g.ctx.World.RunSafe(func() {
		snap = g.ctx.TakeSnapshot()
	})
	return snap
}

// Phase returns the current session phase
func (g *Game) Phase() engine.GamePhase {
	return g.ctx.State.GetPhase()
}

// Session returns score, lives, level, phase and countdown without taking the world lock
func (g *Game) Session() engine.SessionSnapshot {
	return g.ctx.State.ReadSession(g.ctx.Now())
}

// Stop cancels every pending timer; the game can be restarted with StartGame
func (g *Game) Stop() {
	g.ctx.Timers.CancelAll()
}
