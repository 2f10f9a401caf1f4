package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/events"
)

// HUDState is what the status line shows for one frame
type HUDState struct {
	Score  int
	Lives  int
	Level  int
	Banner string // Empty when no banner is active
}

// HUD keeps the status line counters current from game events
// Written by the dispatch goroutine, read by the render loop
type HUD struct {
	mu sync.RWMutex

	score int
	lives int
	level int

	banner      string
	bannerUntil time.Time
}

// NewHUD creates a HUD showing the starting session
func NewHUD() *HUD {
	return &HUD{
		lives: constants.StartingLives,
		level: constants.StartingLevel,
	}
}

// EventTypes implements events.Handler
func (h *HUD) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventScoreChanged,
		events.EventLivesChanged,
		events.EventLevelChanged,
		events.EventLevelComplete,
		events.EventLevelStarted,
		events.EventGameOver,
		events.EventWeaponUpgrade,
		events.EventBonusDestroyed,
	}
}

// HandleEvent implements events.Handler
func (h *HUD) HandleEvent(_ *engine.GameContext, ev events.GameEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch p := ev.Payload.(type) {
	case *events.ValuePayload:
		switch ev.Type {
		case events.EventScoreChanged:
			h.score = p.Value
		case events.EventLivesChanged:
			h.lives = p.Value
		case events.EventLevelChanged:
			h.level = p.Value
		}

	case *events.SessionPayload:
		h.score, h.lives, h.level = p.Score, p.Lives, p.Level
		switch ev.Type {
		case events.EventLevelComplete:
			// Level already points at the next wave
			h.setBanner(fmt.Sprintf(constants.TextLevelComplete, p.Level-1), ev.Timestamp)
		case events.EventLevelStarted:
			h.setBanner(fmt.Sprintf("LEVEL %d", p.Level), ev.Timestamp)
		case events.EventGameOver:
			// Held until the next level starts
			h.banner = constants.TextGameOver
			h.bannerUntil = time.Time{}
		}

	case *events.WeaponPayload:
		h.setBanner(fmt.Sprintf("%s WEAPON", p.Variant), ev.Timestamp)

	case *events.BonusPayload:
		h.setBanner(fmt.Sprintf("BONUS +%d", p.Score), ev.Timestamp)
	}
}

func (h *HUD) setBanner(text string, at time.Time) {
	h.banner = text
	h.bannerUntil = at.Add(constants.BannerDuration)
}

// State returns the counters and the banner active at now
func (h *HUD) State(now time.Time) HUDState {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s := HUDState{Score: h.score, Lives: h.lives, Level: h.level}
	if h.banner != "" && (h.bannerUntil.IsZero() || now.Before(h.bannerUntil)) {
		s.Banner = h.banner
	}
	return s
}

// String formats the counters for the status line
func (s HUDState) String() string {
	return fmt.Sprintf(" SCORE %d  LEVEL %d  LIVES %d ", s.Score, s.Level, s.Lives)
}
