package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/events"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// testRig wires every system around a mock clock with enemy fire disabled
type testRig struct {
	ctx   *engine.GameContext
	clock *engine.MockTimeProvider

	weapons   *WeaponSystem
	bonus     *BonusSystem
	movement  *MovementSystem
	collision *CollisionSystem
	particles *ParticleSystem
	level     *LevelSystem
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	clock := engine.NewMockTimeProvider(testStart)
	ctx := engine.NewGameContext(clock, engine.Tuning{Seed: 1})

	r := &testRig{ctx: ctx, clock: clock}
	r.weapons = NewWeaponSystem(ctx)
	r.bonus = NewBonusSystem(ctx)
	r.movement = NewMovementSystem(ctx)
	r.collision = NewCollisionSystem(ctx, r.weapons)
	r.particles = NewParticleSystem(ctx)
	r.level = NewLevelSystem(ctx, r.bonus)

	for _, s := range []engine.System{r.level, r.particles, r.collision, r.movement, r.bonus, r.weapons} {
		ctx.World.AddSystem(s)
	}
	return r
}

func (r *testRig) start() {
	r.ctx.World.RunSafe(r.level.StartGame)
}

// tick runs one frame through the same step the game facade uses
func (r *testRig) tick(dt time.Duration) {
	r.level.Step(dt)
}

func (r *testRig) drain() []events.GameEvent {
	return r.ctx.Events.Consume()
}

func countEvents(evs []events.GameEvent, t events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// killAllEnemies marks the grid destroyed through the damage path
func (r *testRig) killAllEnemies() {
	r.ctx.World.Enemies.Each(func(_ core.Handle, e *component.Enemy) bool {
		for e.Alive {
			e.Damage()
		}
		return true
	})
}

func nominalTick() time.Duration {
	return constants.NominalFrameDelta
}
