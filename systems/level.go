package systems

import (
	"log"
	"time"

	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/events"
)

// LevelSystem evaluates terminal and advancing conditions and drives wave generation
type LevelSystem struct {
	ctx   *engine.GameContext
	bonus *BonusSystem
}

func NewLevelSystem(ctx *engine.GameContext, bonus *BonusSystem) *LevelSystem {
	return &LevelSystem{ctx: ctx, bonus: bonus}
}

func (ls *LevelSystem) Priority() int {
	return constants.PriorityLevel
}

// Update evaluates the current phase once per tick
func (ls *LevelSystem) Update(dt time.Duration) {
	switch ls.ctx.State.GetPhase() {
	case engine.PhasePlaying:
		ls.evaluatePlaying()
	case engine.PhaseLevelComplete:
		ls.pollCountdown()
	}
}

// Step advances one frame under the world lock
// Playing runs every system; LevelComplete only polls the countdown;
// Menu and GameOver are frozen
func (ls *LevelSystem) Step(dt time.Duration) {
	ls.ctx.FrameNumber.Add(1)
	ls.ctx.World.RunSafe(func() {
		switch ls.ctx.State.GetPhase() {
		case engine.PhasePlaying:
			ls.ctx.World.UpdateLocked(dt)
		case engine.PhaseLevelComplete:
			ls.pollCountdown()
		}
	})
}

// StartGame resets the session and enters Playing on a fresh level-1 grid
// Valid from any phase; a running session is abandoned through Menu
func (ls *LevelSystem) StartGame() {
	now := ls.ctx.Now()
	state := ls.ctx.State

	if state.GetPhase() != engine.PhaseMenu {
		state.TransitionPhase(engine.PhaseMenu, now)
	}
	ls.ctx.Timers.CancelAll()

	state.ResetSession()
	ls.ctx.World.Reset()
	GenerateGrid(ls.ctx.World)
	ls.bonus.Reset()

	if !state.TransitionPhase(engine.PhasePlaying, now) {
		log.Printf("anomaly: start rejected from phase %s", state.GetPhase())
		state.RecordAnomaly()
		return
	}
	ls.bonus.ScheduleTimers()

	log.Printf("game: started")
	ls.ctx.PushEvent(events.EventAmbienceStart, nil)
	ls.pushCounters()
	ls.pushSession(events.EventLevelStarted)
}

func (ls *LevelSystem) evaluatePlaying() {
	world := ls.ctx.World
	state := ls.ctx.State

	// An empty grid in Playing is drift, not a win
	if world.Enemies.Len() == 0 {
		n := state.RecordAnomaly()
		GenerateGrid(world)
		log.Printf("anomaly: empty grid at level %d, regenerated (%d total)", state.GetLevel(), n)
		return
	}

	if world.AliveEnemies() == 0 {
		ls.completeLevel()
		return
	}

	if state.GetLives() <= 0 {
		ls.gameOver("no lives left")
		return
	}

	playerTop := world.Player.Area().Y
	reached := false
	world.Enemies.Each(func(_ core.Handle, e *component.Enemy) bool {
		if e.Alive && e.Area().Bottom() >= playerTop {
			reached = true
			return false
		}
		return true
	})
	if reached {
		ls.gameOver("enemies reached the player row")
	}
}

func (ls *LevelSystem) completeLevel() {
	now := ls.ctx.Now()
	state := ls.ctx.State

	bonus, ok := state.CompleteLevel(now)
	if !ok {
		return
	}

	ls.ctx.Timers.Schedule(engine.TimerLevelAdvance,
		state.GetLevelCompleteDuration()+constants.LevelAdvanceBackupSlack,
		func() { ls.advanceLevel("backup timer") })

	log.Printf("level: cleared, bonus %d, next level %d", bonus, state.GetLevel())
	ls.ctx.PushEvent(events.EventScoreChanged, &events.ValuePayload{Value: state.GetScore()})
	ls.ctx.PushEvent(events.EventLevelChanged, &events.ValuePayload{Value: state.GetLevel()})
	ls.pushSession(events.EventLevelComplete)
}

func (ls *LevelSystem) pollCountdown() {
	state := ls.ctx.State
	if state.GetPhaseDuration(ls.ctx.Now()) >= state.GetLevelCompleteDuration() {
		ls.advanceLevel("tick")
	}
}

// advanceLevel is the single LevelComplete -> Playing path shared by both triggers
// The phase guard makes the loser a no-op
func (ls *LevelSystem) advanceLevel(source string) {
	state := ls.ctx.State
	if !state.TransitionPhase(engine.PhasePlaying, ls.ctx.Now()) {
		log.Printf("level: advance via %s ignored in phase %s", source, state.GetPhase())
		return
	}
	ls.ctx.Timers.Cancel(engine.TimerLevelAdvance)

	world := ls.ctx.World
	world.ClearTransient()
	world.Player.X = constants.PlayerStartX
	GenerateGrid(world)

	log.Printf("level: %d started via %s", state.GetLevel(), source)
	ls.pushSession(events.EventLevelStarted)
}

func (ls *LevelSystem) gameOver(reason string) {
	state := ls.ctx.State
	if !state.TransitionPhase(engine.PhaseGameOver, ls.ctx.Now()) {
		return
	}
	ls.ctx.Timers.CancelAll()

	log.Printf("game: over (%s), score %d, level %d", reason, state.GetScore(), state.GetLevel())
	ls.ctx.PushEvent(events.EventAmbienceStop, nil)
	ls.pushSession(events.EventGameOver)
}

func (ls *LevelSystem) pushCounters() {
	state := ls.ctx.State
	ls.ctx.PushEvent(events.EventScoreChanged, &events.ValuePayload{Value: state.GetScore()})
	ls.ctx.PushEvent(events.EventLivesChanged, &events.ValuePayload{Value: state.GetLives()})
	ls.ctx.PushEvent(events.EventLevelChanged, &events.ValuePayload{Value: state.GetLevel()})
}

func (ls *LevelSystem) pushSession(t events.EventType) {
	state := ls.ctx.State
	ls.ctx.PushEvent(t, &events.SessionPayload{
		Score: state.GetScore(),
		Lives: state.GetLives(),
		Level: state.GetLevel(),
	})
}
