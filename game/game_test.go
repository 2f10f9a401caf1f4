package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects dispatched events of the given types
type recorder struct {
	types []events.EventType
	seen  []events.GameEvent
}

func (r *recorder) EventTypes() []events.EventType { return r.types }

func (r *recorder) HandleEvent(_ *engine.GameContext, ev events.GameEvent) {
	r.seen = append(r.seen, ev)
}

func (r *recorder) count(t events.EventType) int {
	n := 0
	for _, ev := range r.seen {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T) (*Game, *engine.MockTimeProvider) {
	t.Helper()
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return New(clock, engine.Tuning{Seed: 7}), clock
}

// clearWave destroys every grid enemy without scoring
func clearWave(g *Game) {
	world := g.ctx.World
	world.RunSafe(func() {
		world.Enemies.Each(func(_ core.Handle, e *component.Enemy) bool {
			for e.Alive {
				e.Damage()
			}
			return true
		})
	})
}

func TestPlayerStaysInBounds(t *testing.T) {
	g, _ := newTestGame(t)
	g.StartGame()

	lo := constants.PlayerWidth / 2
	hi := constants.FieldWidth - constants.PlayerWidth/2
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		v := (rng.Float64() - 0.5) * 4 * constants.FieldWidth
		if i%2 == 0 {
			g.MoveTo(v)
		} else {
			g.MoveDelta(v / 4)
		}
		x := g.Snapshot().Player.X
		require.GreaterOrEqual(t, x, lo, "move %d", i)
		require.LessOrEqual(t, x, hi, "move %d", i)
	}

	g.MoveTo(-1e9)
	assert.Equal(t, lo, g.Snapshot().Player.X)
	g.MoveTo(1e9)
	assert.Equal(t, hi, g.Snapshot().Player.X)

	g.MoveTo(200)
	g.MoveTo(math.NaN())
	assert.Equal(t, 200.0, g.Snapshot().Player.X, "NaN target keeps position")
	g.MoveDelta(math.NaN())
	assert.Equal(t, 200.0, g.Snapshot().Player.X, "NaN delta keeps position")
	g.MoveDelta(10)
	assert.Equal(t, 210.0, g.Snapshot().Player.X, "ship still moves after NaN input")

	g.MoveTo(math.Inf(-1))
	assert.Equal(t, lo, g.Snapshot().Player.X)
	g.MoveDelta(math.Inf(1))
	assert.Equal(t, hi, g.Snapshot().Player.X)
	g.MoveTo(math.Inf(1))
	g.MoveDelta(math.Inf(-1))
	assert.Equal(t, lo, g.Snapshot().Player.X)
}

func TestMoveIgnoredOutsideSession(t *testing.T) {
	g, _ := newTestGame(t)

	g.MoveTo(100)
	assert.Equal(t, constants.PlayerStartX, g.Snapshot().Player.X)
	assert.False(t, g.Fire())
}

func TestStartGameSnapshot(t *testing.T) {
	g, _ := newTestGame(t)
	hud := &recorder{types: []events.EventType{events.EventScoreChanged, events.EventLivesChanged, events.EventLevelChanged}}
	g.Subscribe(hud)

	g.StartGame()

	snap := g.Snapshot()
	assert.Equal(t, engine.PhasePlaying, snap.Session.Phase)
	assert.Equal(t, 0, snap.Session.Score)
	assert.Equal(t, 3, snap.Session.Lives)
	assert.Equal(t, 1, snap.Session.Level)
	assert.Len(t, snap.Enemies, 24)
	assert.Nil(t, snap.Bonus)
	assert.Equal(t, 3, len(hud.seen), "HUD receives initial counters")
}

// TestLevelScenarioTickPath clears a wave and advances through the tick poll
func TestLevelScenarioTickPath(t *testing.T) {
	g, clock := newTestGame(t)
	rec := &recorder{types: []events.EventType{events.EventLevelComplete, events.EventLevelStarted}}
	g.Subscribe(rec)
	g.StartGame()

	require.True(t, g.Fire())
	clearWave(g)
	g.Tick(constants.NominalFrameDelta)

	s := g.Session()
	require.Equal(t, engine.PhaseLevelComplete, s.Phase)
	assert.Equal(t, 100, s.Score)
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, constants.LevelCompleteDuration, s.CountdownRemaining)
	assert.Equal(t, 1, rec.count(events.EventLevelComplete))

	clock.Advance(constants.LevelCompleteDuration)
	assert.Equal(t, time.Duration(0), g.Session().CountdownRemaining)
	g.Tick(constants.NominalFrameDelta)

	snap := g.Snapshot()
	require.Equal(t, engine.PhasePlaying, snap.Session.Phase)
	assert.Equal(t, 2, snap.Session.Level)
	assert.Equal(t, 24, snap.AliveEnemies())
	assert.Empty(t, snap.PlayerBullets)
	assert.Empty(t, snap.EnemyBullets)
	assert.Equal(t, constants.PlayerStartX, snap.Player.X)

	// Backup deadline passes; no duplicate advance
	clock.Advance(time.Second)
	g.Tick(constants.NominalFrameDelta)

	assert.Equal(t, 2, g.Session().Level)
	assert.Equal(t, 2, rec.count(events.EventLevelStarted), "one for start, one for level 2")
}

// TestLevelScenarioBackupTimerPath advances with no ticks during the interstitial
func TestLevelScenarioBackupTimerPath(t *testing.T) {
	g, clock := newTestGame(t)
	rec := &recorder{types: []events.EventType{events.EventLevelStarted}}
	g.Subscribe(rec)
	g.StartGame()

	clearWave(g)
	g.Tick(constants.NominalFrameDelta)
	require.Equal(t, engine.PhaseLevelComplete, g.Phase())

	clock.Advance(constants.LevelCompleteDuration + constants.LevelAdvanceBackupSlack)
	require.Equal(t, engine.PhasePlaying, g.Phase())

	for i := 0; i < 5; i++ {
		g.Tick(constants.NominalFrameDelta)
	}

	snap := g.Snapshot()
	assert.Equal(t, 2, snap.Session.Level)
	assert.Equal(t, 24, snap.AliveEnemies())
	assert.Equal(t, 2, rec.count(events.EventLevelStarted))
}

func TestGameOverFreezes(t *testing.T) {
	g, clock := newTestGame(t)
	rec := &recorder{types: []events.EventType{events.EventGameOver, events.EventAmbienceStop}}
	g.Subscribe(rec)
	g.StartGame()

	for i := 0; i < constants.StartingLives; i++ {
		g.ctx.State.LoseLife()
	}
	g.Tick(constants.NominalFrameDelta)

	require.Equal(t, engine.PhaseGameOver, g.Phase())
	assert.Equal(t, 1, rec.count(events.EventGameOver))
	assert.Equal(t, 1, rec.count(events.EventAmbienceStop))
	assert.Zero(t, g.ctx.Timers.Len())

	before := g.Snapshot()
	clock.Advance(30 * time.Second)
	for i := 0; i < 30; i++ {
		g.Tick(constants.NominalFrameDelta)
	}
	g.MoveTo(10)
	assert.False(t, g.Fire())

	after := g.Snapshot()
	assert.Equal(t, before.Enemies, after.Enemies)
	assert.Equal(t, before.Player, after.Player)
	assert.Nil(t, after.Bonus)
	assert.Equal(t, engine.PhaseGameOver, after.Session.Phase)
}

func TestRestartMidSession(t *testing.T) {
	g, _ := newTestGame(t)
	g.StartGame()
	require.True(t, g.Fire())
	for i := 0; i < 10; i++ {
		g.Tick(constants.NominalFrameDelta)
	}

	g.StartGame()

	snap := g.Snapshot()
	assert.Equal(t, engine.PhasePlaying, snap.Session.Phase)
	assert.Empty(t, snap.PlayerBullets)
	assert.Equal(t, 24, snap.AliveEnemies())
	assert.Equal(t, 2, g.ctx.Timers.Len(), "bonus timers re-armed once")
}

// TestHandlersRunOutsideLock re-enters the facade from a handler
func TestHandlersRunOutsideLock(t *testing.T) {
	g, _ := newTestGame(t)

	var frames []int64
	g.Subscribe(events.HandlerFunc[*engine.GameContext]{
		Types: []events.EventType{events.EventShoot},
		Fn: func(_ *engine.GameContext, ev events.GameEvent) {
			frames = append(frames, g.Snapshot().Frame)
		},
	})
	g.StartGame()

	done := make(chan struct{})
	go func() {
		defer close(done)
		g.Fire()
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch deadlocked against the world lock")
	}
	assert.Len(t, frames, 1)
}

func TestBonusTimerSpawnsDuringPlay(t *testing.T) {
	g, clock := newTestGame(t)
	rec := &recorder{types: []events.EventType{events.EventBonusSpawned}}
	g.Subscribe(rec)
	g.StartGame()

	clock.Advance(constants.BonusInitialDelay)
	g.Tick(constants.NominalFrameDelta)

	snap := g.Snapshot()
	require.NotNil(t, snap.Bonus)
	assert.True(t, snap.Bonus.Active)
	assert.NotEqual(t, component.WeaponSingle, snap.Bonus.Drop)
	assert.Equal(t, 1, rec.count(events.EventBonusSpawned))

	// Periodic check with the slot occupied
	clock.Advance(constants.BonusPeriodicCheck)
	g.Tick(constants.NominalFrameDelta)
	assert.Equal(t, 1, rec.count(events.EventBonusSpawned))
}

func TestDispatchClearsOverflowCount(t *testing.T) {
	g, _ := newTestGame(t)
	q := g.ctx.Events
	for i := 0; i < constants.EventQueueSize+5; i++ {
		q.Push(events.GameEvent{Type: events.EventShoot})
	}

	assert.Equal(t, constants.EventQueueSize, g.DispatchEvents())
	assert.Zero(t, q.TakeDropped(), "dispatch consumed the overflow count")
	assert.Zero(t, g.DispatchEvents())
}
