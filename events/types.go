package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventShoot signals an accepted fire command
	// Trigger: WeaponSystem.Fire | Consumer: audio.Notifier | Payload: *ShootPayload
	EventShoot EventType = iota

	// EventExplosion signals an enemy, bonus or player explosion
	// Trigger: CollisionSystem | Consumer: audio.Notifier | Payload: *ExplosionPayload
	EventExplosion

	// EventGameOver signals the terminal session state
	// Trigger: LevelSystem | Consumer: audio.Notifier, render.HUD | Payload: *SessionPayload
	EventGameOver

	// EventBonusSpawned signals a bonus target entering the field
	// Trigger: BonusSystem | Consumer: audio.Notifier | Payload: *BonusPayload
	EventBonusSpawned

	// EventWeaponUpgrade signals a bonus drop being applied
	// Trigger: WeaponSystem.Upgrade | Consumer: audio.Notifier | Payload: *WeaponPayload
	EventWeaponUpgrade

	// EventAmbienceStart starts the background ambience loop
	// Trigger: StartGame | Consumer: audio.Notifier | Payload: nil
	EventAmbienceStart

	// EventAmbienceStop stops the background ambience loop
	// Trigger: GameOver | Consumer: audio.Notifier | Payload: nil
	EventAmbienceStop

	// EventScoreChanged carries the new score
	// Trigger: kills, bonus hits, level clear, reset | Consumer: render.HUD | Payload: *ValuePayload
	EventScoreChanged

	// EventLivesChanged carries the new life count
	// Trigger: player hit, reset | Consumer: render.HUD | Payload: *ValuePayload
	EventLivesChanged

	// EventLevelChanged carries the new level number
	// Trigger: level clear, reset | Consumer: render.HUD | Payload: *ValuePayload
	EventLevelChanged

	// EventBonusDestroyed signals a bonus target shot down
	// Trigger: CollisionSystem | Payload: *BonusPayload
	EventBonusDestroyed

	// EventLevelComplete signals entry into the level-complete interstitial
	// Trigger: LevelSystem | Consumer: render.HUD | Payload: *SessionPayload
	EventLevelComplete

	// EventLevelStarted signals a fresh grid for the current level
	// Trigger: StartGame, level advance | Consumer: render.HUD | Payload: *SessionPayload
	EventLevelStarted
)

var eventTypeNames = map[EventType]string{
	EventShoot:          "Shoot",
	EventExplosion:      "Explosion",
	EventGameOver:       "GameOver",
	EventBonusSpawned:   "BonusSpawned",
	EventWeaponUpgrade:  "WeaponUpgrade",
	EventAmbienceStart:  "AmbienceStart",
	EventAmbienceStop:   "AmbienceStop",
	EventScoreChanged:   "ScoreChanged",
	EventLivesChanged:   "LivesChanged",
	EventLevelChanged:   "LevelChanged",
	EventBonusDestroyed: "BonusDestroyed",
	EventLevelComplete:  "LevelComplete",
	EventLevelStarted:   "LevelStarted",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Tick that produced the event
	Timestamp time.Time
}
