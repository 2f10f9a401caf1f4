package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/arcade-siege/constants"
)

// GamePhase is the session state machine position
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseLevelComplete:
		return "LevelComplete"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

var validTransitions = map[GamePhase][]GamePhase{
	PhaseMenu:          {PhasePlaying},
	PhasePlaying:       {PhaseLevelComplete, PhaseGameOver, PhaseMenu},
	PhaseLevelComplete: {PhasePlaying, PhaseMenu},
	PhaseGameOver:      {PhaseMenu},
}

// GameState is the session: score, lives, level and phase
// Written under the World update lock, readable concurrently by renderers
type GameState struct {
	mu sync.RWMutex

	Score int
	Lives int
	Level int

	CurrentPhase          GamePhase
	PhaseStartTime        time.Time
	LevelCompleteDuration time.Duration

	anomalies int
}

// NewGameState creates a session parked in the menu
func NewGameState(now time.Time) *GameState {
	return &GameState{
		Lives:                 constants.StartingLives,
		Level:                 constants.StartingLevel,
		CurrentPhase:          PhaseMenu,
		PhaseStartTime:        now,
		LevelCompleteDuration: constants.LevelCompleteDuration,
	}
}

// ===== PHASE STATE ACCESSORS (mutex protected) =====

// GetPhase returns the current game phase
func (gs *GameState) GetPhase() GamePhase {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.CurrentPhase
}

// CanTransition checks if a phase transition is valid
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// TransitionPhase attempts to transition to a new phase with validation
// Returns false if the edge is invalid, including when the phase already moved on
func (gs *GameState) TransitionPhase(to GamePhase, now time.Time) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !gs.CanTransition(gs.CurrentPhase, to) {
		return false
	}

	gs.CurrentPhase = to
	gs.PhaseStartTime = now
	return true
}

// GetPhaseDuration returns how long the current phase has been active
func (gs *GameState) GetPhaseDuration(now time.Time) time.Duration {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return now.Sub(gs.PhaseStartTime)
}

// ===== SESSION COUNTERS =====

// ResetSession restores new-game counters; the phase is left untouched
func (gs *GameState) ResetSession() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Score = 0
	gs.Lives = constants.StartingLives
	gs.Level = constants.StartingLevel
	gs.LevelCompleteDuration = constants.LevelCompleteDuration
}

// GetScore returns the current score
func (gs *GameState) GetScore() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Score
}

// AddScore adds a non-negative delta and returns the new score
func (gs *GameState) AddScore(delta int) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if delta > 0 {
		gs.Score += delta
	}
	return gs.Score
}

// GetLives returns the remaining lives
func (gs *GameState) GetLives() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Lives
}

// LoseLife decrements lives and returns the remainder
func (gs *GameState) LoseLife() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Lives--
	return gs.Lives
}

// GetLevel returns the current level number
func (gs *GameState) GetLevel() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Level
}

// CompleteLevel moves Playing to LevelComplete, awarding 100*level and incrementing level
// Returns the awarded bonus and false if the session was not Playing
func (gs *GameState) CompleteLevel(now time.Time) (int, bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.CurrentPhase != PhasePlaying {
		return 0, false
	}

	bonus := constants.LevelClearBonus * gs.Level
	gs.Score += bonus
	gs.Level++
	gs.LevelCompleteDuration = constants.LevelCompleteDuration
	gs.CurrentPhase = PhaseLevelComplete
	gs.PhaseStartTime = now
	return bonus, true
}

// GetLevelCompleteDuration returns how long the level-complete interstitial lasts
func (gs *GameState) GetLevelCompleteDuration() time.Duration {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.LevelCompleteDuration
}

// CountdownRemaining returns the level-complete time left, 0 outside LevelComplete
func (gs *GameState) CountdownRemaining(now time.Time) time.Duration {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.countdownLocked(now)
}

func (gs *GameState) countdownLocked(now time.Time) time.Duration {
	if gs.CurrentPhase != PhaseLevelComplete {
		return 0
	}
	remaining := gs.LevelCompleteDuration - now.Sub(gs.PhaseStartTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RecordAnomaly counts a repaired invariant drift
func (gs *GameState) RecordAnomaly() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.anomalies++
	return gs.anomalies
}

// Anomalies returns the number of repaired invariant drifts this process
func (gs *GameState) Anomalies() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.anomalies
}

// SessionSnapshot provides a consistent view of the session
type SessionSnapshot struct {
	Score              int
	Lives              int
	Level              int
	Phase              GamePhase
	PhaseStart         time.Time
	CountdownRemaining time.Duration
}

// ReadSession returns a consistent snapshot of the session
func (gs *GameState) ReadSession(now time.Time) SessionSnapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	return SessionSnapshot{
		Score:              gs.Score,
		Lives:              gs.Lives,
		Level:              gs.Level,
		Phase:              gs.CurrentPhase,
		PhaseStart:         gs.PhaseStartTime,
		CountdownRemaining: gs.countdownLocked(now),
	}
}
